// Package engine glues config, dataset, and the analysis catalog together
// for the CLI commands and the interactive explorer.
package engine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/cricsight/cricsight/internal/config"
	"github.com/cricsight/cricsight/internal/dataset"
	"github.com/cricsight/cricsight/internal/report"
	"github.com/cricsight/cricsight/internal/validation"
)

// Engine is the shared entry point for running analyses.
type Engine struct {
	Config *config.Config
	Logger *slog.Logger

	// The dataset is loaded once and cached; the explorer triggers the
	// load from a background command.
	mu sync.Mutex
	ds *dataset.Dataset
}

// New creates an Engine with the given config and logger.
func New(cfg *config.Config, logger *slog.Logger) *Engine {
	return &Engine{Config: cfg, Logger: logger}
}

// Dataset returns the loaded dataset, reading the CSV files on first use.
func (e *Engine) Dataset() (*dataset.Dataset, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ds != nil {
		return e.ds, nil
	}

	if e.Config.Data.MatchesPath == "" || e.Config.Data.DeliveriesPath == "" {
		return nil, fmt.Errorf("dataset paths not configured (set data.matches_path and data.deliveries_path)")
	}

	ds, err := dataset.Load(e.Config.Data.MatchesPath, e.Config.Data.DeliveriesPath, e.Logger)
	if err != nil {
		return nil, err
	}
	e.ds = ds
	return ds, nil
}

// Thresholds returns the configured qualification cutoffs.
func (e *Engine) Thresholds() config.ThresholdConfig {
	return e.Config.Thresholds
}

// Validate loads the dataset and runs the integrity checks.
func (e *Engine) Validate() (*validation.Result, error) {
	ds, err := e.Dataset()
	if err != nil {
		return nil, err
	}
	return validation.Validate(ds), nil
}

// Report runs the whole catalog plus validation and returns the document.
func (e *Engine) Report() (*report.Report, error) {
	ds, err := e.Dataset()
	if err != nil {
		return nil, err
	}

	r := report.Generate(ds, e.Config.Thresholds)
	r.Validation = validation.Validate(ds)
	return r, nil
}
