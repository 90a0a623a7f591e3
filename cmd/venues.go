package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cricsight/cricsight/internal/render"
	"github.com/cricsight/cricsight/internal/stats"
)

var (
	venuesTop    int
	venuesSeason string
	venuesJSON   bool
)

var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "Matches hosted per venue",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		ds, err := eng.Dataset()
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}
		if ds, err = seasonSlice(ds, venuesSeason); err != nil {
			return err
		}

		top := venuesTop
		if top == 0 {
			top = eng.Thresholds().TopN
		}

		venues := stats.MatchesPerVenue(ds, top)
		if venuesJSON {
			return printJSON(venues)
		}

		points := make([]render.Point, len(venues))
		for i, g := range venues {
			points[i] = render.Point{Label: g.Key, Value: g.Value}
		}
		fmt.Print(render.BarChart("Matches per venue", points, 0))
		return nil
	},
}

var (
	awardsTop    int
	awardsSeason string
	awardsJSON   bool
)

var awardsCmd = &cobra.Command{
	Use:   "awards",
	Short: "Man of the Match leaders",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		ds, err := eng.Dataset()
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}
		if ds, err = seasonSlice(ds, awardsSeason); err != nil {
			return err
		}

		top := awardsTop
		if top == 0 {
			top = eng.Thresholds().TopN
		}

		leaders := stats.PlayerOfMatchLeaders(ds, top)
		if awardsJSON {
			return printJSON(leaders)
		}

		points := make([]render.Point, len(leaders))
		for i, g := range leaders {
			points[i] = render.Point{Label: g.Key, Value: g.Value}
		}
		fmt.Print(render.BarChart("Man of the Match awards", points, 0))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(venuesCmd)
	venuesCmd.Flags().IntVar(&venuesTop, "top", 0, "number of venues to show (default from config)")
	venuesCmd.Flags().StringVar(&venuesSeason, "season", "", "restrict to one season")
	venuesCmd.Flags().BoolVar(&venuesJSON, "json", false, "emit JSON instead of a chart")

	rootCmd.AddCommand(awardsCmd)
	awardsCmd.Flags().IntVar(&awardsTop, "top", 0, "number of players to show (default from config)")
	awardsCmd.Flags().StringVar(&awardsSeason, "season", "", "restrict to one season")
	awardsCmd.Flags().BoolVar(&awardsJSON, "json", false, "emit JSON instead of a chart")
}
