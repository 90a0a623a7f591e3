package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cricsight/cricsight/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file interactively",
	Long:  `Walk through prompts to create a Cricsight configuration file at ~/.cricsight/cricsight.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		fmt.Println("Cricsight Configuration Setup")
		fmt.Println("=============================")
		fmt.Println()

		fmt.Println("Data Files")
		fmt.Println("----------")
		matches := prompt(reader, "Matches CSV path", "matches.csv")
		deliveries := prompt(reader, "Deliveries CSV path", "deliveries.csv")
		fmt.Println()

		fmt.Println("Output")
		fmt.Println("------")
		outDir := prompt(reader, "Report output directory", "output")
		fmt.Println()

		cfg := &config.Config{
			Version: config.CurrentVersion,
			Data: config.DataConfig{
				MatchesPath:    matches,
				DeliveriesPath: deliveries,
			},
			Output: config.OutputConfig{
				Directory: outDir,
			},
		}

		cfgPath := config.ExpandHome(config.DefaultPath)
		if cfgFile != "" {
			cfgPath = cfgFile
		}

		if err := cfg.Save(cfgPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Printf("Config written to %s\n", cfgPath)
		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Println("  cricsight inspect   — Summarize the dataset")
		fmt.Println("  cricsight           — Launch the interactive explorer")
		fmt.Println("  cricsight report    — Write the full analysis report")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func prompt(reader *bufio.Reader, label, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("  %s [%s]: ", label, defaultVal)
	} else {
		fmt.Printf("  %s: ", label)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	return input
}
