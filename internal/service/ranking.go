package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"ufc-elo/internal/config"
	"ufc-elo/internal/constants"
	"ufc-elo/internal/domain"
	"ufc-elo/internal/history"
	"ufc-elo/internal/repository"
)

const (
	ResultWon  = "won"
	ResultLost = "lost"
	ResultDraw = "draw"
)

type RatingReader interface {
	FindByName(ctx context.Context, name string) (*domain.EloRating, error)
	FindAllSortedBy(ctx context.Context, dimension domain.Dimension, limit int) ([]*domain.EloRating, error)
	FindHistory(ctx context.Context, name string) ([]domain.HistoryEntry, error)
}

type FightFinder interface {
	FindByFighter(ctx context.Context, name string) ([]domain.Fight, error)
}

type FighterFinder interface {
	GetByName(ctx context.Context, name string) (*domain.Fighter, error)
}

// RecentFight is one line of a fighter's recent form.
type RecentFight struct {
	Date      time.Time
	Opponent  string
	Result    string
	EloChange float64
}

func (f RecentFight) String() string {
	return fmt.Sprintf("%s vs %s (%s, ELO change: %.2f)", f.Date.UTC().Format(time.DateOnly), f.Opponent, f.Result, f.EloChange)
}

type CombinedRanking struct {
	Rating     *domain.EloRating
	LastFights []RecentFight
}

type FighterDetail struct {
	// Profile is nil when the fighter has a rating but no profile row.
	Profile *domain.Fighter
	Rating  *domain.EloRating
}

type RankingService struct {
	ratings  RatingReader
	fights   FightFinder
	fighters FighterFinder
	limit    int
	logger   zerolog.Logger
}

func NewRankingService(ratings RatingReader, fights FightFinder, fighters FighterFinder, cfg *config.Config, logger zerolog.Logger) *RankingService {
	limit := cfg.RankingLimit
	if limit <= 0 {
		limit = constants.DefaultRankingLimit
	}
	return &RankingService{ratings: ratings, fights: fights, fighters: fighters, limit: limit, logger: logger}
}

func (s *RankingService) pageSize(limit int) int {
	if limit <= 0 || limit > s.limit {
		return s.limit
	}
	return limit
}

// GetRankings returns the current records ordered by one dimension, highest
// first. It reads whatever is persisted; an empty store yields an empty list.
func (s *RankingService) GetRankings(ctx context.Context, dimension domain.Dimension, limit int) ([]*domain.EloRating, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	ratings, err := s.ratings.FindAllSortedBy(ctx, dimension, s.pageSize(limit))
	if err != nil {
		s.logger.Error().Err(err).Str("dimension", string(dimension)).Msg("failed to load rankings")
		return nil, fmt.Errorf("failed to load %s rankings: %w", dimension, err)
	}
	return ratings, nil
}

// GetCombinedRankings is the combined ranking with each fighter's last five
// fights attached.
func (s *RankingService) GetCombinedRankings(ctx context.Context, limit int) ([]CombinedRanking, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	ratings, err := s.ratings.FindAllSortedBy(ctx, domain.DimensionCombined, s.pageSize(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to load combined rankings: %w", err)
	}

	out := make([]CombinedRanking, len(ratings))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(constants.FighterLookupLimit)

	for i, rating := range ratings {
		g.Go(func() error {
			recent, err := s.recentFights(gCtx, rating.FighterName, constants.RecentFightsLimit)
			if err != nil {
				return err
			}
			out[i] = CombinedRanking{Rating: rating, LastFights: recent}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to build combined rankings")
		return nil, err
	}
	return out, nil
}

func (s *RankingService) recentFights(ctx context.Context, name string, n int) ([]RecentFight, error) {
	fights, err := s.fights.FindByFighter(ctx, name)
	if err != nil {
		return nil, err
	}
	entries, err := s.ratings.FindHistory(ctx, name)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(fights, func(a, b domain.Fight) int { return b.Date.Compare(a.Date) })
	if len(fights) > n {
		fights = fights[:n]
	}

	recent := make([]RecentFight, len(fights))
	for i, f := range fights {
		recent[i] = RecentFight{
			Date:      f.Date,
			Opponent:  f.Opponent(name),
			Result:    result(f, name),
			EloChange: history.ChangeOn(entries, f.Date),
		}
	}
	return recent, nil
}

func result(f domain.Fight, name string) string {
	switch f.Winner {
	case name:
		return ResultWon
	case f.Opponent(name):
		return ResultLost
	}
	return ResultDraw
}

func (s *RankingService) GetFighter(ctx context.Context, name string) (*FighterDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	var detail FighterDetail
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rating, err := s.ratings.FindByName(gCtx, name)
		if err != nil {
			return err
		}
		detail.Rating = rating
		return nil
	})

	g.Go(func() error {
		profile, err := s.fighters.GetByName(gCtx, name)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		detail.Profile = profile
		return nil
	})

	if err := g.Wait(); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().Err(err).Str("fighter", name).Msg("failed to load fighter")
		}
		return nil, fmt.Errorf("failed to load fighter %q: %w", name, err)
	}
	return &detail, nil
}

// ListFights returns name's fights, oldest first.
func (s *RankingService) ListFights(ctx context.Context, name string) ([]domain.Fight, error) {
	fights, err := s.fights.FindByFighter(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to list fights for %q: %w", name, err)
	}
	slices.SortStableFunc(fights, func(a, b domain.Fight) int { return a.Date.Compare(b.Date) })
	return fights, nil
}
