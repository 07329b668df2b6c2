package fx

import (
	"database/sql"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"ufc-elo/internal/api"
	"ufc-elo/internal/config"
	"ufc-elo/internal/database"
	"ufc-elo/internal/db"
	"ufc-elo/internal/elo"
	"ufc-elo/internal/logger"
	"ufc-elo/internal/metrics"
	"ufc-elo/internal/repository"
	"ufc-elo/internal/scheduler"
	"ufc-elo/internal/server"
	"ufc-elo/internal/service"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

func levelled(l zerolog.Logger, cfg *config.Config) zerolog.Logger {
	return logger.SetLevel(l, cfg.LogLevel)
}

// Module wires the application. Extra options (invokes) join the inner
// module so they see the logger filtered at LOG_LEVEL.
func Module(opts ...fx.Option) fx.Option {
	app := []fx.Option{
		fx.Decorate(levelled),
		fx.Provide(database.New),
		fx.Provide(ProvideQueries),
		fx.Provide(elo.New),
		// repos
		fx.Provide(repository.NewFighterRepository),
		fx.Provide(repository.NewFightRepository),
		fx.Provide(repository.NewRatingRepository),
		// dataset client
		fx.Provide(api.NewDatasetClient),
		// svc
		fx.Provide(fx.Annotate(
			service.NewRecalculationService,
			fx.From(new(*repository.FightRepository), new(*repository.FighterRepository), new(*repository.RatingRepository)),
		)),
		fx.Provide(fx.Annotate(
			service.NewRankingService,
			fx.From(new(*repository.RatingRepository), new(*repository.FightRepository), new(*repository.FighterRepository)),
		)),
		fx.Provide(fx.Annotate(
			service.NewImportService,
			fx.From(new(*repository.FightRepository), new(*repository.FighterRepository), new(*api.DatasetClient)),
		)),
		// server
		fx.Provide(server.NewEloServer),
		fx.Provide(scheduler.New),
	}

	return fx.Options(
		logger.Module,
		config.Module,
		metrics.Module,
		fx.Module("ufc-elo", append(app, opts...)...),
	)
}
