package report

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/cricsight/cricsight/internal/config"
	"github.com/cricsight/cricsight/internal/dataset"
	"github.com/cricsight/cricsight/internal/validation"
)

func testDataset() *dataset.Dataset {
	return dataset.New(
		[]dataset.Match{
			{ID: 1, Season: "2008", Venue: "V1", Team1: "A", Team2: "B",
				TossWinner: "A", TossDecision: "bat",
				WinningTeam: "A", WonBy: "runs", Margin: 20, PlayerOfMatch: "p1"},
			{ID: 2, Season: "2009", Venue: "V2", Team1: "A", Team2: "B",
				TossWinner: "B", TossDecision: "field",
				WinningTeam: "B", WonBy: "wickets", Margin: 4, PlayerOfMatch: "p2"},
		},
		[]dataset.Delivery{
			{MatchID: 1, Innings: 1, Over: 0, Ball: 1, BattingTeam: "A", Batter: "p1", Bowler: "q1", BatterRuns: 4, TotalRuns: 4},
			{MatchID: 1, Innings: 2, Over: 0, Ball: 1, BattingTeam: "B", Batter: "p2", Bowler: "q2", BatterRuns: 1, TotalRuns: 1},
			{MatchID: 2, Innings: 1, Over: 0, Ball: 1, BattingTeam: "A", Batter: "p1", Bowler: "q2", BatterRuns: 6, TotalRuns: 6},
		},
	)
}

func thresholds() config.ThresholdConfig {
	return config.ThresholdConfig{MinBallsFaced: 1, MinBallsBowled: 1, TopN: 5}
}

func TestGenerate(t *testing.T) {
	r := Generate(testDataset(), thresholds())

	if r.Dataset.Matches != 2 || r.Dataset.Deliveries != 3 {
		t.Errorf("unexpected dataset summary: %+v", r.Dataset)
	}
	if r.Dataset.FirstSeason != "2008" || r.Dataset.LastSeason != "2009" {
		t.Errorf("unexpected season span: %+v", r.Dataset)
	}
	if len(r.Seasons) != 2 {
		t.Errorf("expected 2 season summaries, got %d", len(r.Seasons))
	}
	if len(r.Batting.TopScorers) == 0 || r.Batting.TopScorers[0].Name != "p1" {
		t.Errorf("unexpected top scorers: %+v", r.Batting.TopScorers)
	}
	if len(r.Teams.BiggestByRuns) != 1 || r.Teams.BiggestByRuns[0].Margin != 20 {
		t.Errorf("unexpected biggest wins: %+v", r.Teams.BiggestByRuns)
	}
	if r.Teams.BiggestByRuns[0].Loser != "B" {
		t.Errorf("expected loser B, got %s", r.Teams.BiggestByRuns[0].Loser)
	}
	if len(r.Venues) != 2 || len(r.Awards) != 2 {
		t.Errorf("unexpected venues/awards: %v / %v", r.Venues, r.Awards)
	}
}

func TestWriteAndReadJSON(t *testing.T) {
	r := Generate(testDataset(), thresholds())
	path := filepath.Join(t.TempDir(), "reports", "report.json")

	if err := WriteJSON(r, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Dataset.Matches != r.Dataset.Matches {
		t.Errorf("match count changed through JSON: %d vs %d", loaded.Dataset.Matches, r.Dataset.Matches)
	}
	if len(loaded.Batting.TopScorers) != len(r.Batting.TopScorers) {
		t.Errorf("top scorers changed through JSON")
	}
}

func TestReadJSONMissing(t *testing.T) {
	if _, err := ReadJSON(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Fatal("expected error for missing report")
	}
}

func TestFormatText(t *testing.T) {
	ds := testDataset()
	r := Generate(ds, thresholds())
	r.Validation = validation.Validate(ds)

	text := FormatText(r)

	for _, want := range []string{
		"=== Cricsight Analysis Report ===",
		"Dataset:",
		"Matches and runs per season:",
		"Top run scorers:",
		"Top wicket takers:",
		"Team records:",
		"Man of the Match leaders:",
		"Validation: PASS",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report text missing %q", want)
		}
	}
}

func TestWriteText(t *testing.T) {
	r := Generate(testDataset(), thresholds())
	path := filepath.Join(t.TempDir(), "reports", "report.txt")

	if err := WriteText(r, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
