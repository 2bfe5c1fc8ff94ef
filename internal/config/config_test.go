package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "touchline.db", cfg.DBPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.TeamName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TOUCHLINE_DB_PATH", "/tmp/other.db")
	t.Setenv("TOUCHLINE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/other.db", cfg.DBPath)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: from-file.db\nteam_name: Harriers\n"), 0o644))

	t.Setenv("TOUCHLINE_CONFIG", path)
	t.Setenv("TOUCHLINE_DB_PATH", "from-env.db")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "from-env.db", cfg.DBPath)
	require.Equal(t, "Harriers", cfg.TeamName)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("TOUCHLINE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("TOUCHLINE_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("trace")
	require.Error(t, err)
}
