package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ufc-elo/internal/domain"
	"ufc-elo/internal/elo"
	"ufc-elo/internal/history"
	"ufc-elo/internal/metrics"
)

var ErrRecalculationRunning = errors.New("recalculation already running")

type FightStore interface {
	FindAllByDate(ctx context.Context) ([]domain.Fight, error)
	Stats(ctx context.Context) (domain.FightStats, error)
}

type FighterNameStore interface {
	ListNames(ctx context.Context) ([]string, error)
}

type RatingWriter interface {
	DeleteAll(ctx context.Context) error
	CreateBatch(ctx context.Context, ratings []*domain.EloRating) error
	UpdateBatch(ctx context.Context, ratings []*domain.EloRating) error
}

// Summary describes one completed recalculation.
type Summary struct {
	RunID     string
	Processed int
	Skipped   int
	Fighters  int
	Stats     domain.FightStats
	Duration  time.Duration
}

// ProgressFunc is called after every replayed fight.
type ProgressFunc func(done, total int)

type RecalcOption func(*recalcOptions)

type recalcOptions struct {
	progress ProgressFunc
}

func WithProgress(fn ProgressFunc) RecalcOption {
	return func(o *recalcOptions) { o.progress = fn }
}

type RecalculationService struct {
	fights   FightStore
	fighters FighterNameStore
	ratings  RatingWriter
	calc     *elo.Calculator
	metrics  *metrics.Recalculation
	logger   zerolog.Logger

	mu sync.Mutex
}

func NewRecalculationService(
	fights FightStore,
	fighters FighterNameStore,
	ratings RatingWriter,
	calc *elo.Calculator,
	m *metrics.Recalculation,
	logger zerolog.Logger,
) *RecalculationService {
	return &RecalculationService{
		fights:   fights,
		fighters: fighters,
		ratings:  ratings,
		calc:     calc,
		metrics:  m,
		logger:   logger,
	}
}

// RecalculateAll rebuilds every rating from scratch: reset, seed, replay all
// fights in date order, then clean the history series. Only one run may be in
// flight; a concurrent caller gets ErrRecalculationRunning.
func (s *RecalculationService) RecalculateAll(ctx context.Context, opts ...RecalcOption) (*Summary, error) {
	if !s.mu.TryLock() {
		s.metrics.ObserveOutcome(metrics.OutcomeBusy)
		return nil, ErrRecalculationRunning
	}
	defer s.mu.Unlock()

	var o recalcOptions
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	runID := uuid.New().String()
	logger := s.logger.With().Str("run_id", runID).Logger()

	summary, err := s.run(ctx, logger, o)
	if err != nil {
		s.metrics.ObserveOutcome(metrics.OutcomeFailure)
		logger.Error().Err(err).Msg("recalculation failed")
		return nil, err
	}

	summary.RunID = runID
	summary.Duration = time.Since(start)
	s.metrics.ObserveSuccess(summary.Duration, summary.Processed, summary.Skipped)

	logger.Info().
		Int("processed", summary.Processed).
		Int("skipped", summary.Skipped).
		Int("fighters", summary.Fighters).
		Dur("duration", summary.Duration).
		Msg("recalculation completed")

	return summary, nil
}

func (s *RecalculationService) run(ctx context.Context, logger zerolog.Logger, o recalcOptions) (*Summary, error) {
	stats, err := s.fights.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read fight stats: %w", err)
	}
	logger.Info().
		Int("total_fights", stats.TotalFights).
		Int("unique_fighters", stats.UniqueFighters).
		Float64("average_fights", stats.AverageFights).
		Msg("starting recalculation")

	if err := s.ratings.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset ratings: %w", err)
	}

	working, err := s.seed(ctx)
	if err != nil {
		return nil, err
	}

	fights, err := s.fights.FindAllByDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fights: %w", err)
	}
	slices.SortStableFunc(fights, func(a, b domain.Fight) int { return a.Date.Compare(b.Date) })

	summary := &Summary{Fighters: len(working), Stats: stats}
	for i, fight := range fights {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		a, okA := working[fight.RedFighter]
		b, okB := working[fight.BlueFighter]
		switch {
		case fight.RedFighter == fight.BlueFighter:
			logger.Warn().
				Str("fighter", fight.RedFighter).
				Time("date", fight.Date).
				Msg("skipping fight against self")
			summary.Skipped++
		case !okA || !okB:
			logger.Warn().
				Str("red", fight.RedFighter).
				Str("blue", fight.BlueFighter).
				Time("date", fight.Date).
				Msg("skipping fight, rating not found")
			summary.Skipped++
		default:
			s.apply(fight, fights, a, b)
			if err := s.ratings.UpdateBatch(ctx, []*domain.EloRating{a, b}); err != nil {
				return nil, fmt.Errorf("failed to persist ratings after fight %d: %w", fight.ID, err)
			}
			summary.Processed++
		}

		if o.progress != nil {
			o.progress(i+1, len(fights))
		}
	}

	if err := s.finalize(ctx, working, fights); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *RecalculationService) seed(ctx context.Context) (map[string]*domain.EloRating, error) {
	names, err := s.fighters.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fighters: %w", err)
	}

	initial := s.calc.Tunables().InitialRating
	working := make(map[string]*domain.EloRating, len(names))
	seeded := make([]*domain.EloRating, 0, len(names))
	for _, name := range names {
		if _, dup := working[name]; dup {
			continue
		}
		r := domain.NewEloRating(name, initial)
		working[name] = r
		seeded = append(seeded, r)
	}

	if err := s.ratings.CreateBatch(ctx, seeded); err != nil {
		return nil, fmt.Errorf("failed to seed ratings: %w", err)
	}
	return working, nil
}

// apply runs every transform for one fight against the two records as they
// stood before it, then writes the results back.
func (s *RecalculationService) apply(fight domain.Fight, all []domain.Fight, a, b *domain.EloRating) {
	c := s.calc
	bout := elo.NewBout(fight)
	score := bout.ScoreA

	title := c.TitleFight(a.TitleFight, b.TitleFight, score, fight.FightType)
	bout.IsTitleFight = title.IsTitleFight

	basic := c.Basic(a.Basic, b.Basic, score)
	experience := c.Experience(a.Experience, b.Experience, score, a.FightCount, b.FightCount)
	winType := c.WinType(a.WinType, b.WinType, bout)
	striking := c.Striking(a.Striking, b.Striking, bout)
	ground := c.Ground(a.Ground, b.Ground, bout)
	activity := c.Activity(a.Activity, b.Activity, score,
		elo.CareerDates(all, a.FighterName, fight.Date),
		elo.CareerDates(all, b.FighterName, fight.Date))
	streak := c.WinStreak(a.WinStreak, b.WinStreak, score,
		elo.PriorWinStreak(all, a.FighterName, fight.Date),
		elo.PriorWinStreak(all, b.FighterName, fight.Date),
		a.CurrentWinStreak, b.CurrentWinStreak)
	category := c.Category(a.Category, b.Category, score, fight.FightType, a.TitleWeightClasses, b.TitleWeightClasses)
	combined := c.Combined(a, b, score)

	a.Basic, b.Basic = basic.NewA, basic.NewB
	a.Experience, b.Experience = experience.NewA, experience.NewB
	a.TitleFight, b.TitleFight = title.NewA, title.NewB
	a.WinType, b.WinType = winType.NewA, winType.NewB
	a.Striking, b.Striking = striking.NewA, striking.NewB
	a.Ground, b.Ground = ground.NewA, ground.NewB
	a.Activity, b.Activity = activity.NewA, activity.NewB
	a.WinStreak, b.WinStreak = streak.NewA, streak.NewB
	a.Category, b.Category = category.NewA, category.NewB
	a.Combined, b.Combined = combined.NewA, combined.NewB

	a.TitleWeightClasses, b.TitleWeightClasses = category.TitlesA, category.TitlesB
	if category.IsDoubleChampA {
		a.DoubleChampAchievements = append(a.DoubleChampAchievements, achievement(fight.Date, category.TitlesA))
	}
	if category.IsDoubleChampB {
		b.DoubleChampAchievements = append(b.DoubleChampAchievements, achievement(fight.Date, category.TitlesB))
	}

	a.CurrentWinStreak, b.CurrentWinStreak = streak.NewCurrentStreakA, streak.NewCurrentStreakB

	for _, r := range []*domain.EloRating{a, b} {
		r.FightCount++
		if title.IsTitleFight {
			r.TitleFightCount++
		}
		date := fight.Date
		r.LastUpdated = &date
		r.HighestWinStreak = max(r.HighestWinStreak, r.CurrentWinStreak)

		if peak, ok := elo.Peak(r.Peak, r.Combined, fight.Date, r.CurrentWinStreak); ok {
			r.Peak = peak.Peak
			r.PeakDate = &peak.Date
			r.PeakWinStreak = peak.WinStreak
		}
		r.History = history.Upsert(r.History, domain.HistoryEntry{Elo: r.Combined, Date: fight.Date})
	}

	s.logger.Debug().
		Str("red", a.FighterName).
		Str("blue", b.FighterName).
		Float64("score", score).
		Bool("title", title.IsTitleFight).
		Float64("win_type_bonus", winType.BonusFactor).
		Float64("combined_red", a.Combined).
		Float64("combined_blue", b.Combined).
		Msg("fight applied")
}

func (s *RecalculationService) finalize(ctx context.Context, working map[string]*domain.EloRating, fights []domain.Fight) error {
	dates := make([]time.Time, len(fights))
	for i, f := range fights {
		dates[i] = f.Date
	}

	batch := make([]*domain.EloRating, 0, len(working))
	for _, r := range working {
		if len(r.History) == 0 {
			continue
		}
		r.History = history.Clean(r.History, dates)
		batch = append(batch, r)
	}
	slices.SortFunc(batch, func(x, y *domain.EloRating) int { return cmp.Compare(x.FighterName, y.FighterName) })

	if err := s.ratings.UpdateBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to persist cleaned history: %w", err)
	}
	return nil
}

func achievement(date time.Time, titles []string) domain.Achievement {
	return domain.Achievement{Date: date, WeightClasses: slices.Clone(titles)}
}
