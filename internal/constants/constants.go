package constants

import "time"

const (
	ExternalAPITimeout = 30 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
	RecalcTimeout      = 30 * time.Minute
)

const (
	DBMaxOpenConns    = 10
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
	CORSMaxAge      = 10 * time.Minute
)

const (
	DefaultRankingLimit = 500
	RecentFightsLimit   = 5
	FighterLookupLimit  = 8
)

const (
	FightsDatasetPath   = "/fights.csv"
	FightersDatasetPath = "/fighters.csv"
	MetricsPath         = "/metrics"
	HealthPath          = "/healthz"
)
