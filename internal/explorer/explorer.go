// Package explorer is the interactive terminal front end: a scrollable
// catalog of analysis topics, each rendering a table or chart over the
// loaded dataset. The dataset loads asynchronously on startup.
package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cricsight/cricsight/internal/engine"
)

type screen int

const (
	screenLoading screen = iota
	screenList
	screenResult
	screenError
)

// datasetReadyMsg signals that the background dataset load finished.
type datasetReadyMsg struct {
	summary string
	err     error
}

// Model is the bubbletea model for the topic explorer.
type Model struct {
	eng    *engine.Engine
	topics []Topic

	screen  screen
	cursor  int
	output  string
	summary string
	err     error

	filterInput textinput.Model
	filtering   bool
	visibleIdxs []int

	spinner  spinner.Model
	width    int
	height   int
	quitting bool
}

// New builds an explorer over the given engine. The dataset is not
// loaded yet; Init kicks off the load.
func New(eng *engine.Engine) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	fi := textinput.New()
	fi.Placeholder = "type to filter"
	fi.CharLimit = 40
	fi.Width = 30

	m := Model{
		eng:         eng,
		topics:      Topics(),
		screen:      screenLoading,
		spinner:     s,
		filterInput: fi,
		width:       100,
		height:      24,
	}
	m.applyFilter()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadDataset())
}

func (m Model) loadDataset() tea.Cmd {
	return func() tea.Msg {
		ds, err := m.eng.Dataset()
		if err != nil {
			return datasetReadyMsg{err: err}
		}
		return datasetReadyMsg{summary: ds.Summary()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case datasetReadyMsg:
		if msg.err != nil {
			m.err = msg.err
			m.screen = screenError
			return m, nil
		}
		m.summary = msg.summary
		m.screen = screenList
		return m, nil

	case spinner.TickMsg:
		if m.screen == screenLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenLoading:
		return m, nil // ignore input while loading

	case screenError:
		m.quitting = true
		return m, tea.Quit

	case screenResult:
		switch msg.String() {
		case "esc", "q", "enter", "backspace":
			m.screen = screenList
			m.output = ""
		}
		return m, nil
	}

	if m.filtering {
		return m.updateFilter(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "home", "g":
		m.cursor = 0

	case "end", "G":
		if len(m.visibleIdxs) > 0 {
			m.cursor = len(m.visibleIdxs) - 1
		}

	case "/":
		m.filtering = true
		m.filterInput.SetValue("")
		m.applyFilter()
		return m, m.filterInput.Focus()

	case "enter":
		return m.openCurrent()
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.SetValue("")
		m.filterInput.Blur()
		m.applyFilter()
		return m, nil

	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	if len(m.visibleIdxs) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.visibleIdxs) {
		m.cursor = len(m.visibleIdxs) - 1
	}
}

// applyFilter recomputes visible topic indexes from the filter text and
// clamps the cursor to the new list.
func (m *Model) applyFilter() {
	filter := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	m.visibleIdxs = m.visibleIdxs[:0]
	for i, t := range m.topics {
		if filter == "" || strings.Contains(strings.ToLower(t.Title), filter) ||
			strings.Contains(t.ID, filter) {
			m.visibleIdxs = append(m.visibleIdxs, i)
		}
	}
	if m.cursor >= len(m.visibleIdxs) {
		m.cursor = 0
	}
}

func (m Model) openCurrent() (tea.Model, tea.Cmd) {
	if len(m.visibleIdxs) == 0 {
		return m, nil
	}
	topic := m.topics[m.visibleIdxs[m.cursor]]

	// The dataset is already resident once screenList is reached.
	ds, err := m.eng.Dataset()
	if err != nil {
		m.err = err
		m.screen = screenError
		return m, nil
	}
	m.output = topic.Render(ds, m.eng.Thresholds())
	m.screen = screenResult
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenLoading:
		return fmt.Sprintf("\n  %s Loading dataset...\n", m.spinner.View())

	case screenError:
		return errStyle.Render(fmt.Sprintf("\n  Error: %v\n", m.err)) +
			dimStyle.Render("\n  press any key to exit\n")

	case screenResult:
		return m.output + dimStyle.Render("\n  esc back · q quit\n")
	}

	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Cricsight Explorer") + "\n\n")
	if m.summary != "" {
		b.WriteString(dimStyle.Render("  "+m.summary) + "\n\n")
	}

	if m.filtering {
		b.WriteString("  " + m.filterInput.View() + "\n\n")
	} else if m.filterInput.Value() != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  Filter: %s (/ to change)", m.filterInput.Value())) + "\n\n")
	}

	if len(m.visibleIdxs) == 0 {
		b.WriteString(dimStyle.Render("  No topics match the filter\n"))
	}

	for vi, idx := range m.visibleIdxs {
		t := m.topics[idx]
		cursor := "  "
		line := t.Title
		if vi == m.cursor {
			cursor = highlightStyle.Render("> ")
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, line))
	}

	b.WriteString(dimStyle.Render("\n  ↑/↓ move · enter open · / filter · q quit\n"))
	return b.String()
}

// Run starts the explorer and blocks until the user quits.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(New(eng), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running explorer: %w", err)
	}
	return nil
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).BorderStyle(lipgloss.DoubleBorder()).BorderBottom(true).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)
