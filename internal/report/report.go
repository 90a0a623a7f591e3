// Package report assembles every analysis topic into one document and
// renders it as JSON or human-readable text.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/cricsight/cricsight/internal/config"
	"github.com/cricsight/cricsight/internal/dataset"
	"github.com/cricsight/cricsight/internal/stats"
	"github.com/cricsight/cricsight/internal/validation"
)

// Report is the consolidated analysis output.
type Report struct {
	Version     string                `json:"version"`
	GeneratedAt time.Time             `json:"generated_at"`
	Dataset     DatasetSummary        `json:"dataset"`
	Seasons     []stats.SeasonSummary `json:"seasons"`
	Toss        TossReport            `json:"toss"`
	Batting     BattingReport         `json:"batting"`
	Bowling     BowlingReport         `json:"bowling"`
	Teams       TeamsReport           `json:"teams"`
	Phases      []stats.PhaseRates    `json:"phases"`
	Venues      []stats.Group         `json:"venues"`
	Awards      []stats.Group         `json:"awards"`
	Validation  *validation.Result    `json:"validation,omitempty"`
}

// DatasetSummary describes the loaded tables.
type DatasetSummary struct {
	Matches     int    `json:"matches"`
	Deliveries  int    `json:"deliveries"`
	FirstSeason string `json:"first_season,omitempty"`
	LastSeason  string `json:"last_season,omitempty"`
	Teams       int    `json:"teams"`
}

// TossReport groups the toss topics.
type TossReport struct {
	WinsByTeam  []stats.Group          `json:"wins_by_team"`
	Split       stats.DecisionSplit    `json:"decision_split"`
	BySeason    []stats.SeasonDecision `json:"decision_by_season"`
	Correlation stats.TossCorrelation  `json:"match_correlation"`
}

// BattingReport groups the batting topics.
type BattingReport struct {
	TopScorers    []stats.BatterStats `json:"top_scorers"`
	StrikeRates   []stats.BatterStats `json:"strike_rates"`
	MostSixes     []stats.BatterStats `json:"most_sixes"`
	MostFours     []stats.BatterStats `json:"most_fours"`
	HighestTotals []stats.TeamInnings `json:"highest_totals"`
}

// BowlingReport groups the bowling topics.
type BowlingReport struct {
	TopWicketTakers []stats.BowlerStats `json:"top_wicket_takers"`
	BestEconomy     []stats.BowlerStats `json:"best_economy"`
	MostDotBalls    []stats.BowlerStats `json:"most_dot_balls"`
}

// TeamsReport groups the team topics.
type TeamsReport struct {
	Records          []stats.TeamRecord `json:"records"`
	BiggestByRuns    []MatchResult      `json:"biggest_by_runs"`
	BiggestByWickets []MatchResult      `json:"biggest_by_wickets"`
}

// MatchResult is a compact match outcome for the margin rankings.
type MatchResult struct {
	MatchID int    `json:"match_id"`
	Season  string `json:"season"`
	Winner  string `json:"winner"`
	Loser   string `json:"loser"`
	WonBy   string `json:"won_by"`
	Margin  int    `json:"margin"`
}

// Generate runs the whole analysis catalog against the dataset.
func Generate(ds *dataset.Dataset, th config.ThresholdConfig) *Report {
	n := th.TopN

	byRuns, byWickets := stats.BiggestWins(ds, n)

	r := &Report{
		Version:     "1",
		GeneratedAt: time.Now(),
		Dataset: DatasetSummary{
			Matches:    len(ds.Matches),
			Deliveries: len(ds.Deliveries),
			Teams:      len(ds.Teams()),
		},
		Seasons: stats.SeasonSummaries(ds),
		Toss: TossReport{
			WinsByTeam:  stats.TossWinsByTeam(ds),
			Split:       stats.TossDecisionSplit(ds),
			BySeason:    stats.TossDecisionBySeason(ds),
			Correlation: stats.TossMatchCorrelation(ds),
		},
		Batting: BattingReport{
			TopScorers:    stats.TopRunScorers(ds, n),
			StrikeRates:   stats.StrikeRates(ds, n, th.MinBallsFaced),
			MostSixes:     stats.MostSixes(ds, n),
			MostFours:     stats.MostFours(ds, n),
			HighestTotals: stats.HighestTotals(ds, n),
		},
		Bowling: BowlingReport{
			TopWicketTakers: stats.TopWicketTakers(ds, n),
			BestEconomy:     stats.EconomyRates(ds, n, th.MinBallsBowled),
			MostDotBalls:    stats.MostDotBalls(ds, n),
		},
		Teams: TeamsReport{
			Records:          stats.TeamRecords(ds),
			BiggestByRuns:    toResults(ds, byRuns),
			BiggestByWickets: toResults(ds, byWickets),
		},
		Phases: stats.PhaseRunRates(ds),
		Venues: stats.MatchesPerVenue(ds, n),
		Awards: stats.PlayerOfMatchLeaders(ds, n),
	}

	if seasons := ds.Seasons(); len(seasons) > 0 {
		r.Dataset.FirstSeason = seasons[0]
		r.Dataset.LastSeason = seasons[len(seasons)-1]
	}
	return r
}

func toResults(ds *dataset.Dataset, matches []dataset.Match) []MatchResult {
	results := make([]MatchResult, 0, len(matches))
	for _, m := range matches {
		loser := m.Team1
		if loser == m.WinningTeam {
			loser = m.Team2
		}
		results = append(results, MatchResult{
			MatchID: m.ID,
			Season:  m.Season,
			Winner:  m.WinningTeam,
			Loser:   loser,
			WonBy:   m.WonBy,
			Margin:  m.Margin,
		})
	}
	return results
}

// WriteJSON writes the report as JSON.
func WriteJSON(r *Report, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON reads a report from a JSON file.
func ReadJSON(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	r := &Report{}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return r, nil
}

// WriteText writes the report as human-readable text.
func WriteText(r *Report, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	return os.WriteFile(path, []byte(FormatText(r)), 0o644)
}

// FormatText renders the report as human-readable text.
func FormatText(r *Report) string {
	var b strings.Builder

	b.WriteString("=== Cricsight Analysis Report ===\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	b.WriteString("Dataset:\n")
	b.WriteString(fmt.Sprintf("  Matches:    %s\n", humanize.Comma(int64(r.Dataset.Matches))))
	b.WriteString(fmt.Sprintf("  Deliveries: %s\n", humanize.Comma(int64(r.Dataset.Deliveries))))
	if r.Dataset.FirstSeason != "" {
		b.WriteString(fmt.Sprintf("  Seasons:    %s - %s\n", r.Dataset.FirstSeason, r.Dataset.LastSeason))
	}
	b.WriteString(fmt.Sprintf("  Teams:      %d\n\n", r.Dataset.Teams))

	b.WriteString("Matches and runs per season:\n")
	for _, s := range r.Seasons {
		b.WriteString(fmt.Sprintf("  %s: %d matches, %s runs (%.1f per match)\n",
			s.Season, s.Matches, humanize.Comma(int64(s.TotalRuns)), s.RunsPerMatch))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Toss: %.1f%% bat, %.1f%% field; toss winner won the match %.1f%% of the time\n\n",
		r.Toss.Split.BatPct, r.Toss.Split.FieldPct, r.Toss.Correlation.BothPct))

	b.WriteString("Top run scorers:\n")
	for i, bs := range r.Batting.TopScorers {
		b.WriteString(fmt.Sprintf("  %2d. %-20s %s runs (SR %.1f)\n",
			i+1, bs.Name, humanize.Comma(int64(bs.Runs)), bs.StrikeRate))
	}
	b.WriteString("\n")

	b.WriteString("Top wicket takers:\n")
	for i, bs := range r.Bowling.TopWicketTakers {
		b.WriteString(fmt.Sprintf("  %2d. %-20s %d wickets (econ %.2f)\n",
			i+1, bs.Name, bs.Wickets, bs.Economy))
	}
	b.WriteString("\n")

	b.WriteString("Team records:\n")
	for _, tr := range r.Teams.Records {
		b.WriteString(fmt.Sprintf("  %-30s %3d played, %3d won (%.1f%%)\n",
			tr.Team, tr.Played, tr.Won, tr.WinPct))
	}
	b.WriteString("\n")

	if len(r.Awards) > 0 {
		b.WriteString("Man of the Match leaders:\n")
		for i, g := range r.Awards {
			b.WriteString(fmt.Sprintf("  %2d. %-20s %d awards\n", i+1, g.Key, g.Count))
		}
		b.WriteString("\n")
	}

	if r.Validation != nil {
		b.WriteString(fmt.Sprintf("Validation: %s\n", r.Validation.Status))
		for _, c := range r.Validation.Checks {
			status := "PASS"
			if !c.Passed {
				status = "FAIL"
			}
			b.WriteString(fmt.Sprintf("  [%s] %s\n", status, c.Name))
		}
	}

	return b.String()
}
