// Package cli implements the a11ycheck command tree. Commands operate on
// the project in the working directory (or --root) and talk to the record
// store directly; only serve exposes it over HTTP.
package cli

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"a11ycheck/internal/checklist/service"
	"a11ycheck/internal/checklist/store"
	"a11ycheck/internal/platform/config"
	"a11ycheck/internal/platform/logger"
)

var projectRoot string

var rootCmd = &cobra.Command{
	Use:           "a11ycheck",
	Short:         "Accessibility checklist management",
	Long:          "Tracks per-component accessibility audits as hash-stamped records and detects when they go stale.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectRoot, "root", ".", "project root directory")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// buildService loads the project configuration and assembles the checklist
// service over the configured storage strategy.
func buildService() (*service.Service, *config.Config, *slog.Logger, error) {
	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger.New(cfg.LogLevel)

	var resolver store.Resolver
	switch cfg.Storage.Strategy {
	case config.StrategyPooled:
		resolver = store.PooledResolver{Dir: cfg.Storage.PoolDir}
	default:
		resolver = store.ColocatedResolver{}
	}

	st := store.New(root, resolver, log, store.WithIgnorePatterns(cfg.Storage.IgnorePatterns))
	svc := service.New(st, log, cfg.WCAGVersion)
	return svc, cfg, log, nil
}
