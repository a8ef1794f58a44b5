package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setGitHubEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITHUB_TOKEN", "tok")
	t.Setenv("GITHUB_USER", "acme")
	t.Setenv("GITHUB_REPO", "pulse")
}

func TestLoad_Defaults(t *testing.T) {
	setGitHubEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, BackendGitHub, cfg.Backend)
	assert.Equal(t, "data/data.csv", cfg.CSVPath)
	assert.Equal(t, "Australia/Sydney", cfg.Timezone)
	assert.Equal(t, 0, cfg.ConflictRetries)
	assert.NotNil(t, cfg.Location())
}

func TestLoad_GitHubBackendRequiresCredentials(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_USER", "")
	t.Setenv("GITHUB_REPO", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_SQLiteBackendNeedsNoCredentials(t *testing.T) {
	t.Setenv("BACKEND", "sqlite")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_USER", "")
	t.Setenv("GITHUB_REPO", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
}

func TestLoad_RejectsUnknownValues(t *testing.T) {
	setGitHubEnv(t)

	t.Run("backend", func(t *testing.T) {
		t.Setenv("BACKEND", "dynamo")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("schema", func(t *testing.T) {
		t.Setenv("CSV_SCHEMA", "xml")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("timezone", func(t *testing.T) {
		t.Setenv("TIMEZONE", "Mars/Olympus")
		_, err := Load()
		assert.Error(t, err)
	})
}
