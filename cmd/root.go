package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cricsight/cricsight/internal/config"
	"github.com/cricsight/cricsight/internal/dataset"
	"github.com/cricsight/cricsight/internal/engine"
	"github.com/cricsight/cricsight/internal/explorer"
	"github.com/cricsight/cricsight/internal/logging"
)

var (
	cfgFile  string
	logLevel string
	version  = "dev"
	commit   = "none"
	date     = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cricsight",
	Short: "Cricsight — IPL match and ball-by-ball analytics",
	Long: `Cricsight loads IPL match summaries and ball-by-ball deliveries from
CSV files and answers a fixed catalog of questions about seasons, the
toss, batting, bowling, teams, venues, and awards.

Running without a subcommand launches the interactive explorer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		return explorer.Run(eng)
	},
}

func Execute() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.cricsight/cricsight.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// newEngine loads the config and builds an engine with logging wired up.
// Shared by every data-touching subcommand.
func newEngine() (*engine.Engine, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := logLevel
	if level == "" {
		level = cfg.Logging.Level
	}
	logger, err := logging.Setup(level, config.ExpandHome(cfg.Logging.Directory))
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}

	return engine.New(cfg, logger), nil
}

// seasonSlice narrows the dataset to one season when --season was given.
func seasonSlice(ds *dataset.Dataset, season string) (*dataset.Dataset, error) {
	if season == "" {
		return ds, nil
	}
	slice := ds.SeasonSlice(season)
	if len(slice.Matches) == 0 {
		return nil, fmt.Errorf("no matches in season %q (have: %s)",
			season, strings.Join(ds.Seasons(), ", "))
	}
	return slice, nil
}

// printJSON writes v to stdout as indented JSON, for topic commands
// invoked with --json.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
