package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ccerrors "github.com/alexisbeaulieu97/contentcards/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONTENTCARDS_FEED", "/tmp/feed.yaml")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"), nil)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/feed.yaml", cfg.Feed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogHuman)
	assert.True(t, cfg.OpenURLs)
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, "degrade", cfg.Policy)
	assert.Equal(t, 10*time.Second, cfg.ImageTimeout)
	assert.Zero(t, cfg.Capacity)
	assert.Contains(t, cfg.CacheDir, "contentcards")
	assert.Equal(t, "read-status.json", filepath.Base(cfg.ReadStatusPath))
	assert.Equal(t, "events.jsonl", filepath.Base(cfg.JournalPath))
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
feed: /srv/cards.yaml
log-level: debug
log-human: false
capacity: 5
open-urls: false
theme: dark
policy: propagate
refresh-interval: 30s
image-width: 20
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "/srv/cards.yaml", cfg.Feed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogHuman)
	assert.Equal(t, 5, cfg.Capacity)
	assert.False(t, cfg.OpenURLs)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "propagate", cfg.Policy)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 20, cfg.ImageWidth)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "feed: /from/file.yaml\nlog-level: warn\ntheme: light\n")
	t.Setenv("CONTENTCARDS_LOG_LEVEL", "error")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("theme", "default", "")
	flags.String("feed", "", "")
	require.NoError(t, flags.Parse([]string{"--theme", "dark"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "/from/file.yaml", cfg.Feed, "unchanged flags do not override the file")
	assert.Equal(t, "error", cfg.LogLevel, "env overrides the file")
	assert.Equal(t, "dark", cfg.Theme, "changed flags override everything")
}

func TestLoadExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Load(writeConfig(t, "feed: ~/cards/feed.yaml\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "cards", "feed.yaml"), cfg.Feed)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing feed", body: "theme: dark\n", field: "feed"},
		{name: "unknown theme", body: "feed: f.yaml\ntheme: neon\n", field: "theme"},
		{name: "unknown policy", body: "feed: f.yaml\npolicy: retry\n", field: "policy"},
		{name: "negative capacity", body: "feed: f.yaml\ncapacity: -1\n", field: "capacity"},
		{name: "bad log level", body: "feed: f.yaml\nlog-level: loud\n", field: "log-level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), nil)
			require.Error(t, err)

			var cfgErr *ccerrors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "feed: [unterminated\n"), nil)
	require.Error(t, err)

	var cfgErr *ccerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "config", cfgErr.Field)
}

func TestValidatorIsShared(t *testing.T) {
	assert.Same(t, validatorInstance(), validatorInstance())
	assert.NoError(t, convertValidationError(nil))
}

func TestLoadPathsDoesNotRequireFeed(t *testing.T) {
	path := writeConfig(t, "journal-path: /var/cards/events.jsonl\n")

	cfg, err := LoadPaths(path, nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Feed)
	assert.Equal(t, "/var/cards/events.jsonl", cfg.JournalPath)

	_, err = LoadPaths(writeConfig(t, "theme: neon\n"), nil)
	var cfgErr *ccerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "theme", cfgErr.Field)
}
