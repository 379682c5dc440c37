package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternlab/internal/config"
	"patternlab/internal/logging"
)

func TestSetup_WritesToLogFile(t *testing.T) {
	home := t.TempDir()

	log, cleanup, err := logging.Setup(home, config.Logging{Level: "info", Format: "json"}, false)
	require.NoError(t, err)

	log.Info("hello")
	cleanup()

	b, err := os.ReadFile(filepath.Join(home, "logs", "patternlab.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}

func TestSetup_BadLevelFallsBackToInfo(t *testing.T) {
	home := t.TempDir()

	log, cleanup, err := logging.Setup(home, config.Logging{Level: "loud", Format: "json"}, false)
	require.NoError(t, err)
	defer cleanup()

	assert.False(t, log.Core().Enabled(-1), "debug must stay disabled")
	assert.True(t, log.Core().Enabled(0), "info must be enabled")
}
