package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastillo/studia/internal/config"
)

func TestSetupLoggerWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "studia.log")
	logger, err := SetupLogger(&config.LoggingConfig{File: path, Level: "debug"})
	require.NoError(t, err)

	logger.Info("hello", "career", "systems")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "systems", entry["career"])
	assert.Equal(t, "studia", entry["app"])
}

func TestSetupLoggerUnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studia.log")
	logger, err := SetupLogger(&config.LoggingConfig{File: path, Level: "loud"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandHome("~/logs/studia.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "studia.log"), got)

	got, err = expandHome("/var/log/studia.log")
	require.NoError(t, err)
	assert.Equal(t, "/var/log/studia.log", got)
}

func TestNullLoggerDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		NullLogger().Error("ignored")
	})
}
