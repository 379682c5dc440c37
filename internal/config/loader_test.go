package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternlab/internal/config"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, 10, cfg.History.Limit)
	assert.Equal(t, []string{"User1", "User2"}, cfg.Observer.Subscribers)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
history:
  enabled: false
observer:
  subscribers: [Ana, Ben, Cho]
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.History.Enabled)
	// Untouched keys keep their defaults.
	assert.Equal(t, 10, cfg.History.Limit)
	assert.Equal(t, []string{"Ana", "Ben", "Cho"}, cfg.Observer.Subscribers)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o600))

	t.Setenv("PATTERNLAB_LOGGING_LEVEL", "error")
	t.Setenv("PATTERNLAB_HISTORY_LIMIT", "3")
	t.Setenv("PATTERNLAB_OBSERVER_SUBSCRIBERS", "Ops, Dev")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 3, cfg.History.Limit)
	assert.Equal(t, []string{"Ops", "Dev"}, cfg.Observer.Subscribers)
}

func TestLoad_BadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: ["), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}
