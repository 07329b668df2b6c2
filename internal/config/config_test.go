package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_PATH", "SERVER_PORT", "LOG_LEVEL", "DATASET_BASE_URL", "RECALC_SCHEDULE", "TUNABLES_PATH", "RANKING_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "ufc-elo.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 500, cfg.RankingLimit)
	assert.Empty(t, cfg.RecalcSchedule)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("RANKING_LIMIT", "25")
	t.Setenv("RECALC_SCHEDULE", "@daily")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, 25, cfg.RankingLimit)
	assert.Equal(t, "@daily", cfg.RecalcSchedule)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("RANKING_LIMIT", "-3")
	_, err := Load(zerolog.Nop())
	assert.Error(t, err)

	t.Setenv("RANKING_LIMIT", "")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = Load(zerolog.Nop())
	assert.Error(t, err)
}

func TestTunablesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_k: 40\n"), 0o600))

	tun, err := Tunables(&Config{TunablesPath: path}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 40.0, tun.BaseK)
	assert.Equal(t, 1000.0, tun.InitialRating)

	_, err = Tunables(&Config{TunablesPath: filepath.Join(t.TempDir(), "missing.yaml")}, zerolog.Nop())
	assert.Error(t, err)
}
