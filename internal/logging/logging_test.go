package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bhiohub/bhiohub/internal/config"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{}, true)
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(-1))
}

func TestNewWritesToFileAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bhiohub.log")
	logger, err := New(config.LogConfig{Path: path, Level: "warn"}, false)
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Warn("tab change rejected")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "tab change rejected"))
	require.False(t, strings.Contains(string(data), "dropped"))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.LogConfig{Path: filepath.Join(t.TempDir(), "x.log"), Level: "chatty"}, false)
	require.Error(t, err)
}
