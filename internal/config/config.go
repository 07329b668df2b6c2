package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"ufc-elo/internal/constants"
	"ufc-elo/internal/elo"
)

type Config struct {
	DBPath         string
	ServerPort     string
	LogLevel       string
	DatasetBaseURL string
	RecalcSchedule string
	TunablesPath   string
	RankingLimit   int
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	limit, err := getEnvInt("RANKING_LIMIT", constants.DefaultRankingLimit)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:         getEnv("DB_PATH", "ufc-elo.db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DatasetBaseURL: getEnv("DATASET_BASE_URL", ""),
		RecalcSchedule: getEnv("RECALC_SCHEDULE", ""),
		TunablesPath:   getEnv("TUNABLES_PATH", ""),
		RankingLimit:   limit,
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("dataset_base_url", cfg.DatasetBaseURL).
		Str("recalc_schedule", cfg.RecalcSchedule).
		Int("ranking_limit", cfg.RankingLimit).
		Msg("configuration loaded")

	return cfg, nil
}

// Tunables reads the rating constants, falling back to the defaults when no
// file is configured.
func Tunables(cfg *Config, logger zerolog.Logger) (elo.Tunables, error) {
	t, err := elo.LoadTunables(cfg.TunablesPath)
	if err != nil {
		return elo.Tunables{}, fmt.Errorf("failed to load tunables: %w", err)
	}
	logger.Info().
		Str("path", cfg.TunablesPath).
		Float64("base_k", t.BaseK).
		Float64("initial_rating", t.InitialRating).
		Msg("rating tunables loaded")
	return t, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

var Module = fx.Provide(Load, Tunables)
