package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	CurrentVersion = 1
	DefaultPath    = "~/.cricsight/cricsight.yaml"
)

// Config is the top-level configuration.
type Config struct {
	Version    int             `yaml:"version"`
	Data       DataConfig      `yaml:"data"`
	Output     OutputConfig    `yaml:"output,omitempty"`
	Thresholds ThresholdConfig `yaml:"thresholds,omitempty"`
	Logging    LogConfig       `yaml:"logging,omitempty"`
}

// DataConfig locates the two dataset files.
type DataConfig struct {
	MatchesPath    string `yaml:"matches_path"`
	DeliveriesPath string `yaml:"deliveries_path"`
}

// OutputConfig defines where reports are written.
type OutputConfig struct {
	Directory string `yaml:"directory,omitempty"` // default output/
}

// ThresholdConfig defines qualification cutoffs for rate rankings.
type ThresholdConfig struct {
	MinBallsFaced  int `yaml:"min_balls_faced,omitempty"`  // strike rate, default 250
	MinBallsBowled int `yaml:"min_balls_bowled,omitempty"` // economy, default 300
	TopN           int `yaml:"top_n,omitempty"`            // default 10
}

// LogConfig defines logging settings.
type LogConfig struct {
	Level     string `yaml:"level,omitempty"`     // debug, info, warn, error
	Directory string `yaml:"directory,omitempty"` // default ~/.cricsight/logs/
}

// Load reads and parses the config file from the given path.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ExpandHome(DefaultPath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version %d (expected %d)", cfg.Version, CurrentVersion)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, fmt.Errorf("resolving paths: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to the given path.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ExpandHome(DefaultPath)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyDefaults() {
	if c.Output.Directory == "" {
		c.Output.Directory = "output"
	}
	if c.Thresholds.MinBallsFaced == 0 {
		c.Thresholds.MinBallsFaced = 250
	}
	if c.Thresholds.MinBallsBowled == 0 {
		c.Thresholds.MinBallsBowled = 300
	}
	if c.Thresholds.TopN == 0 {
		c.Thresholds.TopN = 10
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Directory == "" {
		c.Logging.Directory = ExpandHome("~/.cricsight/logs/")
	}
}

var refPattern = regexp.MustCompile(`\$\{ENV:([^}]+)\}`)

func (c *Config) resolvePaths() error {
	var err error
	c.Data.MatchesPath, err = ResolveValue(c.Data.MatchesPath)
	if err != nil {
		return fmt.Errorf("matches path: %w", err)
	}
	c.Data.DeliveriesPath, err = ResolveValue(c.Data.DeliveriesPath)
	if err != nil {
		return fmt.Errorf("deliveries path: %w", err)
	}
	c.Data.MatchesPath = ExpandHome(c.Data.MatchesPath)
	c.Data.DeliveriesPath = ExpandHome(c.Data.DeliveriesPath)
	return nil
}

// ResolveValue resolves ${ENV:NAME} references in a string value.
func ResolveValue(val string) (string, error) {
	matches := refPattern.FindStringSubmatch(val)
	if matches == nil {
		return val, nil
	}

	v := os.Getenv(matches[1])
	if v == "" {
		return "", fmt.Errorf("environment variable %s not set", matches[1])
	}
	return v, nil
}

// ExpandHome expands ~ to the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
