package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check dataset integrity",
	Long: `Run consistency checks over the loaded dataset: every delivery links
to a match, every match names two distinct teams, winners played in
their matches, and innings numbers are in range.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Validate()
		if err != nil {
			return fmt.Errorf("validating dataset: %w", err)
		}

		if validateJSON {
			return printJSON(result)
		}

		fmt.Printf("Validation: %s\n\n", result.Status)
		for _, c := range result.Checks {
			mark := "OK"
			if !c.Passed {
				mark = "!!"
			}
			fmt.Printf("  [%s] %s", mark, c.Name)
			if c.Detail != "" {
				fmt.Printf(" (%s)", c.Detail)
			}
			fmt.Println()
		}

		if result.Status != "PASS" {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "emit JSON instead of text")
}
