package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cricsight/cricsight/internal/dataset"
	"github.com/cricsight/cricsight/internal/render"
	"github.com/cricsight/cricsight/internal/stats"
)

var (
	teamsTop    int
	teamsSeason string
	teamsJSON   bool
)

var teamsCmd = &cobra.Command{
	Use:   "teams [teamA teamB]",
	Short: "Team win records, biggest wins, and head-to-head",
	Long: `Win/loss records per team with no-result matches excluded from the
win percentage, plus the biggest victories by runs and by wickets.

With two team names, shows the head-to-head record instead.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected zero or two team names, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		ds, err := eng.Dataset()
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}
		if ds, err = seasonSlice(ds, teamsSeason); err != nil {
			return err
		}

		if len(args) == 2 {
			h2h := stats.HeadToHeadRecord(ds, args[0], args[1])
			if teamsJSON {
				return printJSON(h2h)
			}
			if h2h.Played == 0 {
				fmt.Printf("No matches between %s and %s\n", args[0], args[1])
				return nil
			}
			fmt.Printf("%s vs %s: %d matches\n", h2h.TeamA, h2h.TeamB, h2h.Played)
			fmt.Printf("  %s won %d, %s won %d", h2h.TeamA, h2h.WinsA, h2h.TeamB, h2h.WinsB)
			if h2h.NoResults > 0 {
				fmt.Printf(", %d no result", h2h.NoResults)
			}
			fmt.Println()
			return nil
		}

		th := eng.Thresholds()
		top := teamsTop
		if top == 0 {
			top = th.TopN
		}

		records := stats.TeamRecords(ds)
		byRuns, byWickets := stats.BiggestWins(ds, top)

		if teamsJSON {
			return printJSON(map[string]any{
				"records":                 records,
				"biggest_wins_by_runs":    matchRows(byRuns),
				"biggest_wins_by_wickets": matchRows(byWickets),
			})
		}

		rows := make([][]string, len(records))
		for i, tr := range records {
			rows[i] = []string{tr.Team, render.Count(tr.Played), render.Count(tr.Won),
				render.Count(tr.NoResults), render.Percent(tr.WinPct)}
		}
		fmt.Print(render.Table("Team records", []string{"Team", "Played", "Won", "NR", "Win %"}, rows))
		fmt.Println()

		rows = make([][]string, len(byRuns))
		for i, m := range byRuns {
			rows[i] = []string{m.WinningTeam, loserOf(m), m.Season, render.Count(m.Margin)}
		}
		fmt.Print(render.Table("Biggest wins by runs", []string{"Winner", "Against", "Season", "Runs"}, rows))
		fmt.Println()

		rows = make([][]string, len(byWickets))
		for i, m := range byWickets {
			rows[i] = []string{m.WinningTeam, loserOf(m), m.Season, render.Count(m.Margin)}
		}
		fmt.Print(render.Table("Biggest wins by wickets", []string{"Winner", "Against", "Season", "Wickets"}, rows))
		return nil
	},
}

func loserOf(m dataset.Match) string {
	if m.Team1 == m.WinningTeam {
		return m.Team2
	}
	return m.Team1
}

type winRow struct {
	MatchID int    `json:"match_id"`
	Season  string `json:"season"`
	Winner  string `json:"winner"`
	Loser   string `json:"loser"`
	WonBy   string `json:"won_by"`
	Margin  int    `json:"margin"`
}

func matchRows(matches []dataset.Match) []winRow {
	rows := make([]winRow, len(matches))
	for i, m := range matches {
		rows[i] = winRow{
			MatchID: m.ID,
			Season:  m.Season,
			Winner:  m.WinningTeam,
			Loser:   loserOf(m),
			WonBy:   m.WonBy,
			Margin:  m.Margin,
		}
	}
	return rows
}

func init() {
	rootCmd.AddCommand(teamsCmd)
	teamsCmd.Flags().IntVar(&teamsTop, "top", 0, "number of biggest wins to show (default from config)")
	teamsCmd.Flags().StringVar(&teamsSeason, "season", "", "restrict to one season")
	teamsCmd.Flags().BoolVar(&teamsJSON, "json", false, "emit JSON instead of tables")
}
