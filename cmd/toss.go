package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cricsight/cricsight/internal/render"
	"github.com/cricsight/cricsight/internal/stats"
)

var (
	tossSeason string
	tossJSON   bool
)

var tossCmd = &cobra.Command{
	Use:   "toss",
	Short: "Toss wins, decisions, and match outcome correlation",
	Long: `Tosses won per team, the bat/field decision split overall and per
season, and how often the toss winner went on to win the match.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		ds, err := eng.Dataset()
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}
		if ds, err = seasonSlice(ds, tossSeason); err != nil {
			return err
		}

		wins := stats.TossWinsByTeam(ds)
		split := stats.TossDecisionSplit(ds)
		bySeason := stats.TossDecisionBySeason(ds)
		corr := stats.TossMatchCorrelation(ds)

		if tossJSON {
			return printJSON(map[string]any{
				"wins_by_team":       wins,
				"decision_split":     split,
				"decision_by_season": bySeason,
				"match_correlation":  corr,
			})
		}

		points := make([]render.Point, len(wins))
		for i, g := range wins {
			points[i] = render.Point{Label: g.Key, Value: g.Value}
		}
		fmt.Print(render.BarChart("Tosses won", points, 0))
		fmt.Println()

		fmt.Print(render.SplitChart("Toss decision", "bat", split.BatPct, "field", split.FieldPct, 0))
		fmt.Println()

		rows := make([][]string, len(bySeason))
		for i, d := range bySeason {
			rows[i] = []string{d.Season, render.Count(d.Bat), render.Count(d.Field)}
		}
		fmt.Print(render.Table("Decision by season", []string{"Season", "Bat", "Field"}, rows))
		fmt.Println()

		fmt.Print(render.SplitChart("Toss winner won the match", "yes", corr.BothPct, "no", 100-corr.BothPct, 0))
		if corr.Excluded > 0 {
			fmt.Printf("  (%d no-result matches excluded)\n", corr.Excluded)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tossCmd)
	tossCmd.Flags().StringVar(&tossSeason, "season", "", "restrict to one season")
	tossCmd.Flags().BoolVar(&tossJSON, "json", false, "emit JSON instead of charts")
}
