package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cricsight/cricsight/internal/explorer"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse the analysis catalog interactively",
	Long:  `Open the terminal explorer: scroll through the analysis topics and view each as a table or chart. Same as running with no subcommand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		return explorer.Run(eng)
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
