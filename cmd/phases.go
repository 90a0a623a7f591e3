package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cricsight/cricsight/internal/render"
	"github.com/cricsight/cricsight/internal/stats"
)

var (
	phasesSeason string
	phasesJSON   bool
)

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Run rates by innings phase per team",
	Long: `Runs per over for each team across the powerplay (overs 1-6), middle
overs (7-15), and death overs (16-20). Super-over innings are excluded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		ds, err := eng.Dataset()
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}
		if ds, err = seasonSlice(ds, phasesSeason); err != nil {
			return err
		}

		rates := stats.PhaseRunRates(ds)
		if phasesJSON {
			return printJSON(rates)
		}

		rows := make([][]string, len(rates))
		for i, pr := range rates {
			rows[i] = []string{pr.Team, render.Rate(pr.PowerplayRate), render.Rate(pr.MiddleRate), render.Rate(pr.DeathRate)}
		}
		fmt.Print(render.Table("Run rate per over by phase",
			[]string{"Team", "Powerplay", "Middle", "Death"}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(phasesCmd)
	phasesCmd.Flags().StringVar(&phasesSeason, "season", "", "restrict to one season")
	phasesCmd.Flags().BoolVar(&phasesJSON, "json", false, "emit JSON instead of a table")
}
