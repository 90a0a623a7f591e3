package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cricsight/cricsight/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and edit the Cricsight configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		fmt.Println("Current configuration:")
		fmt.Println()
		fmt.Printf("  Data:\n")
		fmt.Printf("    Matches:          %s\n", cfg.Data.MatchesPath)
		fmt.Printf("    Deliveries:       %s\n", cfg.Data.DeliveriesPath)
		fmt.Println()
		fmt.Printf("  Output:\n")
		fmt.Printf("    Directory:        %s\n", cfg.Output.Directory)
		fmt.Println()
		fmt.Printf("  Thresholds:\n")
		fmt.Printf("    Min balls faced:  %d\n", cfg.Thresholds.MinBallsFaced)
		fmt.Printf("    Min balls bowled: %d\n", cfg.Thresholds.MinBallsBowled)
		fmt.Printf("    Top N:            %d\n", cfg.Thresholds.TopN)
		fmt.Println()
		fmt.Printf("  Logging:\n")
		fmt.Printf("    Level:            %s\n", cfg.Logging.Level)
		fmt.Printf("    Directory:        %s\n", cfg.Logging.Directory)

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save",
	Long: `Set one configuration key and write the file back. Keys:

  data.matches, data.deliveries, output.directory,
  thresholds.min_balls_faced, thresholds.min_balls_bowled,
  thresholds.top_n, logging.level, logging.directory`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		path := config.ExpandHome(config.DefaultPath)
		if cfgFile != "" {
			path = cfgFile
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if err := setConfigKey(cfg, key, value); err != nil {
			return err
		}

		if err := cfg.Save(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Set %s and wrote %s\n", key, path)
		return nil
	},
}

func setConfigKey(cfg *config.Config, key, value string) error {
	switch key {
	case "data.matches":
		cfg.Data.MatchesPath = value
	case "data.deliveries":
		cfg.Data.DeliveriesPath = value
	case "output.directory":
		cfg.Output.Directory = value
	case "logging.level":
		cfg.Logging.Level = value
	case "logging.directory":
		cfg.Logging.Directory = value
	case "thresholds.min_balls_faced", "thresholds.min_balls_bowled", "thresholds.top_n":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s needs an integer, got %q", key, value)
		}
		switch key {
		case "thresholds.min_balls_faced":
			cfg.Thresholds.MinBallsFaced = n
		case "thresholds.min_balls_bowled":
			cfg.Thresholds.MinBallsBowled = n
		default:
			cfg.Thresholds.TopN = n
		}
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
