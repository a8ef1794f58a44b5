// Package config loads the service configuration from the environment.
// A local .env file is honoured when present. The loaded struct is
// passed explicitly into the store and service constructors; nothing
// downstream reads ambient environment state.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/custodia-labs/teampulse/internal/core/domain"
	"github.com/custodia-labs/teampulse/internal/csvlog"
)

// Backend selects the FileStore implementation.
type Backend string

// Available backends.
const (
	// BackendGitHub stores the log as a file in a GitHub repository.
	BackendGitHub Backend = "github"

	// BackendSQLite stores the log in a local SQLite database.
	BackendSQLite Backend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b Backend) IsValid() bool {
	return b == BackendGitHub || b == BackendSQLite
}

// Config is the full service configuration.
type Config struct {
	Port    int  `env:"PORT" envDefault:"8080"`
	Verbose bool `env:"TEAMPULSE_VERBOSE"`

	// Store selection
	Backend Backend `env:"BACKEND" envDefault:"github"`

	// GitHub backend
	GitHubToken  string `env:"GITHUB_TOKEN"`
	GitHubOwner  string `env:"GITHUB_USER"`
	GitHubRepo   string `env:"GITHUB_REPO"`
	GitHubBranch string `env:"GITHUB_BRANCH"`

	// SQLite backend
	DataDir string `env:"DATA_DIR"`

	// Log layout
	CSVPath    string        `env:"CSV_PATH" envDefault:"data/data.csv"`
	RosterPath string        `env:"ROSTER_PATH"`
	Schema     csvlog.Schema `env:"CSV_SCHEMA" envDefault:"timestamp"`

	// Timezone is the single civil calendar used for duplicate-day
	// checks and window math, regardless of how instants are stored.
	Timezone string `env:"TIMEZONE" envDefault:"Australia/Sydney"`

	// Submission policy
	ReasonRequired  bool `env:"REASON_REQUIRED"`
	ConflictRetries int  `env:"CONFLICT_RETRIES" envDefault:"0"`
}

// Load reads configuration from the environment, after loading a .env
// file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !c.Backend.IsValid() {
		return fmt.Errorf("unknown backend %q: %w", c.Backend, domain.ErrInvalidInput)
	}
	if !c.Schema.IsValid() {
		return fmt.Errorf("unknown CSV schema %q: %w", c.Schema, domain.ErrInvalidInput)
	}
	if c.Backend == BackendGitHub {
		if c.GitHubToken == "" || c.GitHubOwner == "" || c.GitHubRepo == "" {
			return fmt.Errorf("GITHUB_TOKEN, GITHUB_USER and GITHUB_REPO are required for the github backend: %w", domain.ErrAuthFailed)
		}
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", c.Timezone, domain.ErrInvalidInput)
	}
	return nil
}

// Location returns the configured civil timezone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		// validate() already vetted the name.
		return time.UTC
	}
	return loc
}
