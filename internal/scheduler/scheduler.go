// Package scheduler runs the full recalculation on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"ufc-elo/internal/config"
	"ufc-elo/internal/constants"
	"ufc-elo/internal/service"
)

type Recalculator interface {
	RecalculateAll(ctx context.Context, opts ...service.RecalcOption) (*service.Summary, error)
}

type Importer interface {
	ImportRemote(ctx context.Context) (*service.ImportResult, error)
}

type Scheduler struct {
	cron     *cron.Cron
	spec     string
	recalc   Recalculator
	importer Importer
	logger   zerolog.Logger

	mu      sync.Mutex
	entryID cron.EntryID
	started bool
}

// New builds a scheduler for cfg.RecalcSchedule. When a dataset URL is
// configured each run refreshes the dataset before recalculating. An empty
// schedule yields a scheduler whose Start is a no-op.
func New(cfg *config.Config, recalc *service.RecalculationService, importer *service.ImportService, logger zerolog.Logger) (*Scheduler, error) {
	var imp Importer
	if cfg.DatasetBaseURL != "" {
		imp = importer
	}
	return newScheduler(cfg.RecalcSchedule, recalc, imp, logger)
}

func newScheduler(spec string, recalc Recalculator, importer Importer, logger zerolog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.SkipIfStillRunning(cron.DiscardLogger),
		)),
		spec:     spec,
		recalc:   recalc,
		importer: importer,
		logger:   logger.With().Str("component", "scheduler").Logger(),
	}
	if spec == "" {
		return s, nil
	}

	id, err := s.cron.AddFunc(spec, s.Run)
	if err != nil {
		return nil, fmt.Errorf("invalid RECALC_SCHEDULE %q: %w", spec, err)
	}
	s.entryID = id
	return s, nil
}

func (s *Scheduler) Enabled() bool {
	return s.entryID != 0
}

// Run performs one scheduled cycle.
func (s *Scheduler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), constants.RecalcTimeout)
	defer cancel()

	if s.importer != nil {
		res, err := s.importer.ImportRemote(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("scheduled import failed, recalculating with stored data")
		} else {
			s.logger.Info().Int("fights", res.Fights).Int("fighters", res.Fighters).Msg("scheduled import completed")
		}
	}

	summary, err := s.recalc.RecalculateAll(ctx)
	if errors.Is(err, service.ErrRecalculationRunning) {
		s.logger.Info().Msg("recalculation already running, skipping scheduled run")
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("scheduled recalculation failed")
		return
	}
	s.logger.Info().
		Str("run_id", summary.RunID).
		Int("processed", summary.Processed).
		Dur("duration", summary.Duration).
		Msg("scheduled recalculation completed")
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Enabled() || s.started {
		return
	}
	s.cron.Start()
	s.started = true
	s.logger.Info().Str("schedule", s.spec).Time("next", s.cron.Entry(s.entryID).Schedule.Next(time.Now())).Msg("scheduler started")
}

// Stop halts the scheduler and waits for a running job until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}
	s.started = false

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
