package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize the loaded dataset",
	Long:  `Load both CSV files and print row counts, the season range, team names, and how many malformed rows were skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		ds, err := eng.Dataset()
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}

		fmt.Println(ds.Summary())
		fmt.Println()

		seasons := ds.Seasons()
		if len(seasons) > 0 {
			fmt.Printf("Seasons: %s to %s (%d)\n", seasons[0], seasons[len(seasons)-1], len(seasons))
		}

		teams := ds.Teams()
		fmt.Printf("Teams (%d):\n", len(teams))
		fmt.Printf("  %s\n", strings.Join(teams, "\n  "))

		if ds.SkippedMatches > 0 || ds.SkippedDeliveries > 0 {
			fmt.Println()
			fmt.Printf("Skipped rows: %d matches, %d deliveries\n", ds.SkippedMatches, ds.SkippedDeliveries)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
