package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cricsight/cricsight/internal/config"
	"github.com/cricsight/cricsight/internal/report"
)

var (
	reportOutput string
	reportStdout bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full analysis catalog and write a report",
	Long: `Run every analysis against the dataset and write the results as JSON
and plain text into the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		r, err := eng.Report()
		if err != nil {
			return fmt.Errorf("generating report: %w", err)
		}

		if reportStdout {
			fmt.Print(report.FormatText(r))
			return nil
		}

		outDir := reportOutput
		if outDir == "" {
			outDir = config.ExpandHome(eng.Config.Output.Directory)
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		jsonPath := filepath.Join(outDir, "report.json")
		if err := report.WriteJSON(r, jsonPath); err != nil {
			return fmt.Errorf("writing JSON report: %w", err)
		}

		textPath := filepath.Join(outDir, "report.txt")
		if err := report.WriteText(r, textPath); err != nil {
			return fmt.Errorf("writing text report: %w", err)
		}

		fmt.Printf("Report written to %s and %s\n", jsonPath, textPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output directory (default from config)")
	reportCmd.Flags().BoolVar(&reportStdout, "stdout", false, "print the text report instead of writing files")
}
