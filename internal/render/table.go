// Package render draws analysis results as terminal tables and charts.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	altBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// Table renders a fixed-width text table with a styled title and header row.
// Numeric-looking cells are right-aligned.
func Table(title string, headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	numeric := make([]bool, len(headers))
	for i := range headers {
		numeric[i] = colIsNumeric(rows, i)
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(titleStyle.Render(title) + "\n")
	}

	b.WriteString(headerStyle.Render(formatRow(headers, widths, numeric)) + "\n")

	sep := make([]string, len(headers))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	b.WriteString(dimStyle.Render(formatRow(sep, widths, numeric)) + "\n")

	for _, row := range rows {
		b.WriteString(formatRow(row, widths, numeric) + "\n")
	}
	return b.String()
}

func formatRow(cells []string, widths []int, numeric []bool) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		if i < len(numeric) && numeric[i] {
			parts[i] = fmt.Sprintf("%*s", w, cell)
		} else {
			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func colIsNumeric(rows [][]string, col int) bool {
	seen := false
	for _, row := range rows {
		if col >= len(row) || row[col] == "" {
			continue
		}
		seen = true
		for _, r := range row[col] {
			switch {
			case r >= '0' && r <= '9':
			case r == '.' || r == ',' || r == '%' || r == '-':
			default:
				return false
			}
		}
	}
	return seen
}

// Count formats an integer with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Rate formats a float with two decimals.
func Rate(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// Percent formats a percentage with one decimal.
func Percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f)
}
