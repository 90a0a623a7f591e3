package explorer

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cricsight/cricsight/internal/config"
	"github.com/cricsight/cricsight/internal/dataset"
	"github.com/cricsight/cricsight/internal/engine"
	"github.com/cricsight/cricsight/internal/logging"
)

func testModel() Model {
	cfg := &config.Config{}
	cfg.Thresholds.TopN = 10
	cfg.Thresholds.MinBallsFaced = 1
	cfg.Thresholds.MinBallsBowled = 1
	m := New(engine.New(cfg, logging.Discard()))
	m.screen = screenList
	return m
}

func testDataset() *dataset.Dataset {
	date := time.Date(2008, 4, 18, 0, 0, 0, 0, time.UTC)
	matches := []dataset.Match{
		{ID: 1, Season: "2008", Date: date, Venue: "Chinnaswamy", Team1: "KKR", Team2: "RCB",
			TossWinner: "RCB", TossDecision: "field", WinningTeam: "KKR", WonBy: "runs",
			Margin: 140, PlayerOfMatch: "BB McCullum"},
		{ID: 2, Season: "2009", Date: date.AddDate(1, 0, 0), Venue: "Newlands", Team1: "KKR", Team2: "RCB",
			TossWinner: "KKR", TossDecision: "bat", WinningTeam: "RCB", WonBy: "wickets",
			Margin: 5, PlayerOfMatch: "R Dravid"},
	}
	deliveries := []dataset.Delivery{
		{MatchID: 1, Innings: 1, Over: 0, Ball: 1, BattingTeam: "KKR", Batter: "BB McCullum",
			Bowler: "P Kumar", BatterRuns: 4, TotalRuns: 4},
		{MatchID: 1, Innings: 1, Over: 16, Ball: 2, BattingTeam: "KKR", Batter: "BB McCullum",
			Bowler: "Z Khan", BatterRuns: 6, TotalRuns: 6},
		{MatchID: 1, Innings: 2, Over: 7, Ball: 1, BattingTeam: "RCB", Batter: "R Dravid",
			Bowler: "I Sharma", BatterRuns: 0, TotalRuns: 0, IsWicket: true,
			PlayerOut: "R Dravid", Dismissal: "bowled"},
	}
	return dataset.New(matches, deliveries)
}

func TestCatalogCoversEveryTopic(t *testing.T) {
	ds := testDataset()
	th := config.ThresholdConfig{MinBallsFaced: 1, MinBallsBowled: 1, TopN: 10}

	seen := make(map[string]bool)
	for _, topic := range Topics() {
		if topic.ID == "" || topic.Title == "" {
			t.Errorf("topic with empty ID or title: %+v", topic)
		}
		if seen[topic.ID] {
			t.Errorf("duplicate topic ID %q", topic.ID)
		}
		seen[topic.ID] = true

		out := topic.Render(ds, th)
		if strings.TrimSpace(out) == "" {
			t.Errorf("topic %q rendered empty output", topic.ID)
		}
	}

	for _, want := range []string{"seasons", "toss-wins", "toss-decision", "toss-correlation",
		"top-scorers", "strike-rates", "boundaries", "highest-totals", "wicket-takers",
		"economy", "team-records", "margins", "phases", "venues", "awards"} {
		if !seen[want] {
			t.Errorf("catalog missing topic %q", want)
		}
	}
}

func TestTopicRenderContents(t *testing.T) {
	ds := testDataset()
	th := config.ThresholdConfig{MinBallsFaced: 1, MinBallsBowled: 1, TopN: 10}

	byID := make(map[string]Topic)
	for _, topic := range Topics() {
		byID[topic.ID] = topic
	}

	out := byID["top-scorers"].Render(ds, th)
	if !strings.Contains(out, "BB McCullum") {
		t.Errorf("top scorers output missing leading batter:\n%s", out)
	}

	out = byID["wicket-takers"].Render(ds, th)
	if !strings.Contains(out, "I Sharma") {
		t.Errorf("wicket takers output missing bowler:\n%s", out)
	}

	out = byID["margins"].Render(ds, th)
	if !strings.Contains(out, "140") {
		t.Errorf("margins output missing 140-run win:\n%s", out)
	}

	out = byID["venues"].Render(ds, th)
	if !strings.Contains(out, "Chinnaswamy") || !strings.Contains(out, "Newlands") {
		t.Errorf("venues output missing venue names:\n%s", out)
	}
}

func TestMoveCursorClamps(t *testing.T) {
	m := testModel()

	m.moveCursor(-1)
	if m.cursor != 0 {
		t.Errorf("cursor moved above top: %d", m.cursor)
	}

	m.moveCursor(len(m.topics) + 5)
	if m.cursor != len(m.visibleIdxs)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.visibleIdxs)-1)
	}
}

func TestFilterNarrowsList(t *testing.T) {
	m := testModel()
	total := len(m.visibleIdxs)

	m.filterInput.SetValue("toss")
	m.applyFilter()
	if len(m.visibleIdxs) == 0 || len(m.visibleIdxs) >= total {
		t.Errorf("filter %q left %d of %d topics visible", "toss", len(m.visibleIdxs), total)
	}
	for _, idx := range m.visibleIdxs {
		title := strings.ToLower(m.topics[idx].Title)
		if !strings.Contains(title, "toss") && !strings.Contains(m.topics[idx].ID, "toss") {
			t.Errorf("topic %q should be filtered out", m.topics[idx].Title)
		}
	}

	m.filterInput.SetValue("")
	m.applyFilter()
	if len(m.visibleIdxs) != total {
		t.Errorf("clearing filter restored %d of %d topics", len(m.visibleIdxs), total)
	}
}

func TestFilterCursorResetWhenOutOfRange(t *testing.T) {
	m := testModel()
	m.cursor = len(m.visibleIdxs) - 1

	m.filterInput.SetValue("season")
	m.applyFilter()
	if m.cursor >= len(m.visibleIdxs) {
		t.Errorf("cursor %d out of range for %d visible topics", m.cursor, len(m.visibleIdxs))
	}
}

func TestDatasetReadyTransitions(t *testing.T) {
	m := testModel()
	m.screen = screenLoading

	next, _ := m.Update(datasetReadyMsg{summary: "2 matches"})
	got := next.(Model)
	if got.screen != screenList {
		t.Errorf("screen = %d, want list after successful load", got.screen)
	}
	if got.summary != "2 matches" {
		t.Errorf("summary = %q", got.summary)
	}

	m = testModel()
	m.screen = screenLoading
	next, _ = m.Update(datasetReadyMsg{err: errors.New("no such file")})
	got = next.(Model)
	if got.screen != screenError {
		t.Errorf("screen = %d, want error screen after failed load", got.screen)
	}
}

func TestResultScreenEscReturnsToList(t *testing.T) {
	m := testModel()
	m.screen = screenResult
	m.output = "some table"

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got := next.(Model)
	if got.screen != screenList {
		t.Errorf("screen = %d, want list after esc", got.screen)
	}
	if got.output != "" {
		t.Errorf("output not cleared: %q", got.output)
	}
}

func TestQuitKeys(t *testing.T) {
	m := testModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	got := next.(Model)
	if !got.quitting {
		t.Error("q did not quit")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestViewListShowsTopics(t *testing.T) {
	m := testModel()
	out := m.View()
	if !strings.Contains(out, "Cricsight Explorer") {
		t.Errorf("view missing title:\n%s", out)
	}
	for _, topic := range m.topics {
		if !strings.Contains(out, topic.Title) {
			t.Errorf("view missing topic %q", topic.Title)
		}
	}
}
