// Package cli wires the cobra command tree: serve, stats and submit.
// Commands build the service stack from environment configuration and
// call the same driving ports the HTTP transport uses.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/teampulse/internal/adapters/driven/storage/github"
	"github.com/custodia-labs/teampulse/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/teampulse/internal/config"
	"github.com/custodia-labs/teampulse/internal/core/ports/driven"
	"github.com/custodia-labs/teampulse/internal/core/services"
	"github.com/custodia-labs/teampulse/internal/csvlog"
	"github.com/custodia-labs/teampulse/internal/logger"
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "teampulse",
	Short: "Daily team culture ratings over a versioned CSV log",
	Long: `TeamPulse collects one culture rating (1-5) per team member per day
and reports rolling averages. The log is a CSV file in a versioned
backing store: a GitHub repository in production, or a local SQLite
database.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verboseFlag {
			logger.SetVerbose(true)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// stack bundles everything a command needs.
type stack struct {
	cfg    *config.Config
	submit *services.Submit
	query  *services.Query
	close  func() error
}

// buildStack loads configuration and constructs the store, codec and
// services.
func buildStack(ctx context.Context) (*stack, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		logger.SetVerbose(true)
	}

	loc := cfg.Location()
	codec, err := csvlog.New(cfg.Schema, loc)
	if err != nil {
		return nil, err
	}

	var store driven.FileStore
	closeStore := func() error { return nil }
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := sqlite.NewStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		store = s
		closeStore = s.Close
	default:
		s, err := github.NewStore(ctx, github.Config{
			Owner:  cfg.GitHubOwner,
			Repo:   cfg.GitHubRepo,
			Branch: cfg.GitHubBranch,
			Token:  cfg.GitHubToken,
		})
		if err != nil {
			return nil, fmt.Errorf("open github store: %w", err)
		}
		store = s
	}

	opts := services.SubmitOptions{
		ReasonRequired:  cfg.ReasonRequired,
		ConflictRetries: cfg.ConflictRetries,
	}
	var clock driven.Clock = time.Now

	return &stack{
		cfg:    cfg,
		submit: services.NewSubmit(store, codec, cfg.CSVPath, loc, clock, opts),
		query:  services.NewQuery(store, codec, cfg.CSVPath, cfg.RosterPath, loc, clock),
		close:  closeStore,
	}, nil
}
