package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cricsight/cricsight/internal/render"
	"github.com/cricsight/cricsight/internal/stats"
)

var (
	bowlingTop      int
	bowlingMinBalls int
	bowlingSeason   string
	bowlingChart    bool
	bowlingJSON     bool
)

var bowlingCmd = &cobra.Command{
	Use:   "bowling",
	Short: "Wicket takers, economy rates, and dot balls",
	Long: `Bowling leaderboards: top wicket takers, best economy rates above a
balls-bowled floor, and most dot balls. Byes, leg byes, and penalty
runs are not charged to the bowler; run outs are not bowler wickets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		ds, err := eng.Dataset()
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}
		if ds, err = seasonSlice(ds, bowlingSeason); err != nil {
			return err
		}

		th := eng.Thresholds()
		top := bowlingTop
		if top == 0 {
			top = th.TopN
		}
		minBalls := bowlingMinBalls
		if minBalls == 0 {
			minBalls = th.MinBallsBowled
		}

		takers := stats.TopWicketTakers(ds, top)
		economies := stats.EconomyRates(ds, top, minBalls)
		dots := stats.MostDotBalls(ds, top)

		if bowlingJSON {
			return printJSON(map[string]any{
				"top_wicket_takers": takers,
				"economy_rates":     economies,
				"most_dot_balls":    dots,
			})
		}

		if bowlingChart {
			points := make([]render.Point, len(takers))
			for i, bs := range takers {
				points[i] = render.Point{Label: bs.Name, Value: float64(bs.Wickets)}
			}
			fmt.Print(render.BarChart("Top wicket takers", points, 0))
			return nil
		}

		rows := make([][]string, len(takers))
		for i, bs := range takers {
			rows[i] = []string{bs.Name, render.Count(bs.Wickets), render.Rate(bs.Economy)}
		}
		fmt.Print(render.Table("Top wicket takers", []string{"Bowler", "Wickets", "Econ"}, rows))
		fmt.Println()

		rows = make([][]string, len(economies))
		for i, bs := range economies {
			rows[i] = []string{bs.Name, render.Rate(bs.Economy), render.Count(bs.Wickets), render.Count(bs.LegalBalls)}
		}
		fmt.Print(render.Table(fmt.Sprintf("Best economy (min %d balls)", minBalls),
			[]string{"Bowler", "Econ", "Wickets", "Balls"}, rows))
		fmt.Println()

		rows = make([][]string, len(dots))
		for i, bs := range dots {
			rows[i] = []string{bs.Name, render.Count(bs.DotBalls), render.Count(bs.LegalBalls)}
		}
		fmt.Print(render.Table("Most dot balls", []string{"Bowler", "Dots", "Balls"}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bowlingCmd)
	bowlingCmd.Flags().IntVar(&bowlingTop, "top", 0, "number of entries per leaderboard (default from config)")
	bowlingCmd.Flags().IntVar(&bowlingMinBalls, "min-balls", 0, "balls-bowled floor for economy rates (default from config)")
	bowlingCmd.Flags().StringVar(&bowlingSeason, "season", "", "restrict to one season")
	bowlingCmd.Flags().BoolVar(&bowlingChart, "chart", false, "render the wicket takers as a bar chart")
	bowlingCmd.Flags().BoolVar(&bowlingJSON, "json", false, "emit JSON instead of tables")
}
