package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cricsight/cricsight/internal/render"
	"github.com/cricsight/cricsight/internal/stats"
)

var (
	seasonsChart bool
	seasonsJSON  bool
)

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "Matches and runs per season",
	Long:  `Count matches per season and total runs scored, with runs per match, in chronological order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		ds, err := eng.Dataset()
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}

		summaries := stats.SeasonSummaries(ds)
		if seasonsJSON {
			return printJSON(summaries)
		}

		if seasonsChart {
			points := make([]render.Point, len(summaries))
			for i, s := range summaries {
				points[i] = render.Point{Label: s.Season, Value: float64(s.TotalRuns)}
			}
			fmt.Print(render.BarChart("Total runs per season", points, 0))
			return nil
		}

		rows := make([][]string, len(summaries))
		for i, s := range summaries {
			rows[i] = []string{s.Season, render.Count(s.Matches), render.Count(s.TotalRuns), render.Rate(s.RunsPerMatch)}
		}
		fmt.Print(render.Table("Seasons", []string{"Season", "Matches", "Runs", "Runs/Match"}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seasonsCmd)
	seasonsCmd.Flags().BoolVar(&seasonsChart, "chart", false, "render a bar chart instead of a table")
	seasonsCmd.Flags().BoolVar(&seasonsJSON, "json", false, "emit JSON instead of a table")
}
