package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cricsight/cricsight/internal/render"
	"github.com/cricsight/cricsight/internal/stats"
)

var (
	battingTop      int
	battingMinBalls int
	battingSeason   string
	battingChart    bool
	battingJSON     bool
)

var battingCmd = &cobra.Command{
	Use:   "batting",
	Short: "Run scorers, strike rates, boundary hitters, and top totals",
	Long: `Batting leaderboards: top run scorers, best strike rates above a
balls-faced floor, most sixes and fours, and the highest team totals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		ds, err := eng.Dataset()
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}
		if ds, err = seasonSlice(ds, battingSeason); err != nil {
			return err
		}

		th := eng.Thresholds()
		top := battingTop
		if top == 0 {
			top = th.TopN
		}
		minBalls := battingMinBalls
		if minBalls == 0 {
			minBalls = th.MinBallsFaced
		}

		scorers := stats.TopRunScorers(ds, top)
		rates := stats.StrikeRates(ds, top, minBalls)
		sixes := stats.MostSixes(ds, top)
		fours := stats.MostFours(ds, top)
		totals := stats.HighestTotals(ds, top)

		if battingJSON {
			return printJSON(map[string]any{
				"top_scorers":    scorers,
				"strike_rates":   rates,
				"most_sixes":     sixes,
				"most_fours":     fours,
				"highest_totals": totals,
			})
		}

		if battingChart {
			points := make([]render.Point, len(scorers))
			for i, bs := range scorers {
				points[i] = render.Point{Label: bs.Name, Value: float64(bs.Runs)}
			}
			fmt.Print(render.BarChart("Top run scorers", points, 0))
			return nil
		}

		rows := make([][]string, len(scorers))
		for i, bs := range scorers {
			rows[i] = []string{bs.Name, render.Count(bs.Runs), render.Count(bs.BallsFaced), render.Rate(bs.StrikeRate)}
		}
		fmt.Print(render.Table("Top run scorers", []string{"Batter", "Runs", "Balls", "SR"}, rows))
		fmt.Println()

		rows = make([][]string, len(rates))
		for i, bs := range rates {
			rows[i] = []string{bs.Name, render.Rate(bs.StrikeRate), render.Count(bs.Runs), render.Count(bs.BallsFaced)}
		}
		fmt.Print(render.Table(fmt.Sprintf("Best strike rates (min %d balls)", minBalls),
			[]string{"Batter", "SR", "Runs", "Balls"}, rows))
		fmt.Println()

		rows = make([][]string, len(sixes))
		for i, bs := range sixes {
			rows[i] = []string{bs.Name, render.Count(bs.Sixes)}
		}
		fmt.Print(render.Table("Most sixes", []string{"Batter", "Sixes"}, rows))
		fmt.Println()

		rows = make([][]string, len(fours))
		for i, bs := range fours {
			rows[i] = []string{bs.Name, render.Count(bs.Fours)}
		}
		fmt.Print(render.Table("Most fours", []string{"Batter", "Fours"}, rows))
		fmt.Println()

		rows = make([][]string, len(totals))
		for i, ti := range totals {
			rows[i] = []string{ti.Team, ti.Season, render.Count(ti.Runs)}
		}
		fmt.Print(render.Table("Highest team totals", []string{"Team", "Season", "Runs"}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(battingCmd)
	battingCmd.Flags().IntVar(&battingTop, "top", 0, "number of entries per leaderboard (default from config)")
	battingCmd.Flags().IntVar(&battingMinBalls, "min-balls", 0, "balls-faced floor for strike rates (default from config)")
	battingCmd.Flags().StringVar(&battingSeason, "season", "", "restrict to one season")
	battingCmd.Flags().BoolVar(&battingChart, "chart", false, "render the run scorers as a bar chart")
	battingCmd.Flags().BoolVar(&battingJSON, "json", false, "emit JSON instead of tables")
}
