package service

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"ufc-elo/internal/domain"
	"ufc-elo/internal/metrics"
	"ufc-elo/internal/repository"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func bout(date time.Time, red, blue, winner string) domain.Fight {
	return domain.Fight{Date: date, RedFighter: red, BlueFighter: blue, Winner: winner, FightType: "UFC Lightweight Bout", WinBy: "Decision - Split", LastRound: 3, LastRoundTime: "5:00"}
}

func newMetrics() *metrics.Recalculation {
	return metrics.NewRecalculation(prometheus.NewRegistry())
}

type fakeFightStore struct {
	mu     sync.Mutex
	fights []domain.Fight
	err    error
}

func (f *fakeFightStore) FindAllByDate(ctx context.Context) ([]domain.Fight, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := slices.Clone(f.fights)
	slices.SortStableFunc(out, func(a, b domain.Fight) int { return a.Date.Compare(b.Date) })
	return out, nil
}

func (f *fakeFightStore) FindByFighter(ctx context.Context, name string) ([]domain.Fight, error) {
	var out []domain.Fight
	for _, fight := range f.fights {
		if fight.Involves(name) {
			out = append(out, fight)
		}
	}
	return out, nil
}

func (f *fakeFightStore) Stats(ctx context.Context) (domain.FightStats, error) {
	names := map[string]struct{}{}
	for _, fight := range f.fights {
		names[fight.RedFighter] = struct{}{}
		names[fight.BlueFighter] = struct{}{}
	}
	stats := domain.FightStats{TotalFights: len(f.fights), UniqueFighters: len(names), AverageFights: 1}
	if len(names) > 0 {
		stats.AverageFights = float64(len(f.fights)*2) / float64(len(names))
	}
	return stats, nil
}

func (f *fakeFightStore) UpsertBatch(ctx context.Context, fights []domain.Fight) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fights = append(f.fights, fights...)
	return nil
}

type fakeFighterStore struct {
	names    []string
	profiles map[string]*domain.Fighter
	upserted []domain.Fighter
}

func (f *fakeFighterStore) ListNames(ctx context.Context) ([]string, error) {
	return slices.Clone(f.names), nil
}

func (f *fakeFighterStore) GetByName(ctx context.Context, name string) (*domain.Fighter, error) {
	if p, ok := f.profiles[name]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeFighterStore) UpsertBatch(ctx context.Context, fighters []domain.Fighter) error {
	f.upserted = append(f.upserted, fighters...)
	return nil
}

type fakeRatingStore struct {
	mu        sync.Mutex
	records   map[string]*domain.EloRating
	deleteErr error
	updates   int
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{records: map[string]*domain.EloRating{}}
}

func cloneRating(r *domain.EloRating) *domain.EloRating {
	c := *r
	c.History = slices.Clone(r.History)
	c.TitleWeightClasses = slices.Clone(r.TitleWeightClasses)
	c.DoubleChampAchievements = slices.Clone(r.DoubleChampAchievements)
	return &c
}

func (s *fakeRatingStore) DeleteAll(ctx context.Context) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = map[string]*domain.EloRating{}
	return nil
}

func (s *fakeRatingStore) CreateBatch(ctx context.Context, ratings []*domain.EloRating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range ratings {
		if _, ok := s.records[r.FighterName]; ok {
			return errors.New("duplicate rating")
		}
		s.records[r.FighterName] = cloneRating(r)
	}
	return nil
}

func (s *fakeRatingStore) UpdateBatch(ctx context.Context, ratings []*domain.EloRating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range ratings {
		if _, ok := s.records[r.FighterName]; !ok {
			return repository.ErrNotFound
		}
		s.records[r.FighterName] = cloneRating(r)
	}
	s.updates++
	return nil
}

func (s *fakeRatingStore) get(name string) *domain.EloRating {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[name]
}

func (s *fakeRatingStore) FindByName(ctx context.Context, name string) (*domain.EloRating, error) {
	if r := s.get(name); r != nil {
		return cloneRating(r), nil
	}
	return nil, repository.ErrNotFound
}

func (s *fakeRatingStore) FindHistory(ctx context.Context, name string) ([]domain.HistoryEntry, error) {
	if r := s.get(name); r != nil {
		return slices.Clone(r.History), nil
	}
	return nil, nil
}

func (s *fakeRatingStore) FindAllSortedBy(ctx context.Context, dimension domain.Dimension, limit int) ([]*domain.EloRating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.EloRating
	for _, r := range s.records {
		out = append(out, cloneRating(r))
	}
	slices.SortFunc(out, func(a, b *domain.EloRating) int {
		if c := cmp.Compare(dimension.Value(b), dimension.Value(a)); c != 0 {
			return c
		}
		return cmp.Compare(a.FighterName, b.FighterName)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
