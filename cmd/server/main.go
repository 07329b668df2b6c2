package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"ufc-elo/internal/config"
	"ufc-elo/internal/constants"
	fxmodules "ufc-elo/internal/fx"
	"ufc-elo/internal/metrics"
	"ufc-elo/internal/middleware"
	"ufc-elo/internal/scheduler"
	"ufc-elo/internal/server"
)

func main() {
	fx.New(
		fxmodules.Module(fx.Invoke(runServer)),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	eloServer *server.EloServer,
	sched *scheduler.Scheduler,
	reg *prometheus.Registry,
	cfg *config.Config,
	db *sql.DB,
	logger zerolog.Logger,
) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: routes(eloServer, reg, db, logger),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			sched.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := sched.Stop(shutdownCtx); err != nil {
				logger.Warn().Err(err).Msg("scheduled recalculation still running")
			}

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}

			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}

// routes mounts the RPC service behind cors and request ids, next to the
// metrics and health endpoints.
func routes(eloServer *server.EloServer, reg *prometheus.Registry, db *sql.DB, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	path, handler := server.NewHandler(eloServer)
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         int(constants.CORSMaxAge.Seconds()),
	})
	mux.Handle(path, c.Handler(middleware.RequestID(logger)(handler)))

	mux.Handle(constants.MetricsPath, metrics.Handler(reg))
	mux.HandleFunc(constants.HealthPath, func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), constants.DatabaseTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.Warn().Err(err).Msg("health check failed")
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}
