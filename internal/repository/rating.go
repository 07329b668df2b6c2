package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"ufc-elo/internal/db"
	"ufc-elo/internal/domain"
)

var dimensionColumns = map[domain.Dimension]string{
	domain.DimensionBasic:      "basic_elo",
	domain.DimensionExperience: "experience_elo",
	domain.DimensionTitleFight: "title_fight_elo",
	domain.DimensionWinType:    "win_type_elo",
	domain.DimensionStriking:   "striking_elo",
	domain.DimensionGround:     "ground_elo",
	domain.DimensionActivity:   "activity_elo",
	domain.DimensionWinStreak:  "win_streak_elo",
	domain.DimensionCategory:   "category_elo",
	domain.DimensionCombined:   "combined_elo",
	domain.DimensionPeak:       "peak_elo",
}

type RatingRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewRatingRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *RatingRepository {
	return &RatingRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// DeleteAll removes every rating together with its history and achievements.
func (r *RatingRepository) DeleteAll(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	if err := qtx.DeleteAllEloHistory(ctx); err != nil {
		return fmt.Errorf("failed to delete elo history: %w", err)
	}
	if err := qtx.DeleteAllAchievements(ctx); err != nil {
		return fmt.Errorf("failed to delete achievements: %w", err)
	}
	if err := qtx.DeleteAllEloRatings(ctx); err != nil {
		return fmt.Errorf("failed to delete elo ratings: %w", err)
	}

	return tx.Commit()
}

// CreateBatch inserts fresh records. Only the dimension values are written;
// counters and series start empty.
func (r *RatingRepository) CreateBatch(ctx context.Context, ratings []*domain.EloRating) error {
	if len(ratings) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	for _, rating := range ratings {
		err := qtx.CreateEloRating(ctx, db.CreateEloRatingParams{
			FighterName:   rating.FighterName,
			BasicElo:      rating.Basic,
			ExperienceElo: rating.Experience,
			TitleFightElo: rating.TitleFight,
			WinTypeElo:    rating.WinType,
			StrikingElo:   rating.Striking,
			GroundElo:     rating.Ground,
			ActivityElo:   rating.Activity,
			WinStreakElo:  rating.WinStreak,
			CategoryElo:   rating.Category,
			CombinedElo:   rating.Combined,
			PeakElo:       rating.Peak,
		})
		if err != nil {
			return fmt.Errorf("failed to create rating for %q: %w", rating.FighterName, err)
		}
	}

	return tx.Commit()
}

// FindByName loads the full record including history and achievements.
func (r *RatingRepository) FindByName(ctx context.Context, name string) (*domain.EloRating, error) {
	row, err := r.queries.GetEloRatingByName(ctx, name)
	if err != nil {
		return nil, notFound(err)
	}

	rating, err := toRating(row)
	if err != nil {
		return nil, err
	}
	if rating.History, err = r.FindHistory(ctx, name); err != nil {
		return nil, err
	}

	achievements, err := r.queries.ListAchievementsByFighter(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	for _, a := range achievements {
		var classes []string
		if err := json.Unmarshal([]byte(a.WeightClasses), &classes); err != nil {
			return nil, fmt.Errorf("failed to decode achievement %s: %w", a.ID, err)
		}
		rating.DoubleChampAchievements = append(rating.DoubleChampAchievements, domain.Achievement{
			ID:            a.ID,
			Date:          a.Date,
			WeightClasses: classes,
		})
	}

	return rating, nil
}

func (r *RatingRepository) FindHistory(ctx context.Context, name string) ([]domain.HistoryEntry, error) {
	rows, err := r.queries.ListEloHistoryByFighter(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to list elo history: %w", err)
	}
	entries := make([]domain.HistoryEntry, len(rows))
	for i, h := range rows {
		entries[i] = domain.HistoryEntry{ID: h.ID, Elo: h.Elo, Date: h.Date}
	}
	return entries, nil
}

// FindAll returns every record without its history series.
func (r *RatingRepository) FindAll(ctx context.Context) ([]*domain.EloRating, error) {
	rows, err := r.queries.ListEloRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return toRatings(rows)
}

// FindAllSortedBy returns the top limit records for a dimension, highest
// first, ties broken by name.
func (r *RatingRepository) FindAllSortedBy(ctx context.Context, dimension domain.Dimension, limit int) ([]*domain.EloRating, error) {
	column, ok := dimensionColumns[dimension]
	if !ok {
		return nil, fmt.Errorf("unknown rating dimension %q", dimension)
	}
	rows, err := r.queries.ListEloRatingsOrderedBy(ctx, column, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings by %s: %w", dimension, err)
	}
	return toRatings(rows)
}

func (r *RatingRepository) Update(ctx context.Context, rating *domain.EloRating) error {
	return r.UpdateBatch(ctx, []*domain.EloRating{rating})
}

// UpdateBatch writes scalars and replaces each record's history and
// achievements in one transaction. Entries without an ID get a nanoid,
// which is written back to the record.
func (r *RatingRepository) UpdateBatch(ctx context.Context, ratings []*domain.EloRating) error {
	if len(ratings) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	for _, rating := range ratings {
		if err := r.update(ctx, qtx, rating); err != nil {
			r.logger.Error().Err(err).Str("fighter", rating.FighterName).Msg("failed to update rating")
			return err
		}
	}

	return tx.Commit()
}

func (r *RatingRepository) update(ctx context.Context, qtx *db.Queries, rating *domain.EloRating) error {
	titles, err := json.Marshal(nonNil(rating.TitleWeightClasses))
	if err != nil {
		return fmt.Errorf("failed to encode title weight classes: %w", err)
	}

	err = qtx.UpdateEloRating(ctx, db.UpdateEloRatingParams{
		BasicElo:           rating.Basic,
		ExperienceElo:      rating.Experience,
		TitleFightElo:      rating.TitleFight,
		WinTypeElo:         rating.WinType,
		StrikingElo:        rating.Striking,
		GroundElo:          rating.Ground,
		ActivityElo:        rating.Activity,
		WinStreakElo:       rating.WinStreak,
		CategoryElo:        rating.Category,
		CombinedElo:        rating.Combined,
		PeakElo:            rating.Peak,
		FightCount:         int64(rating.FightCount),
		TitleFightCount:    int64(rating.TitleFightCount),
		CurrentWinStreak:   int64(rating.CurrentWinStreak),
		HighestWinStreak:   int64(rating.HighestWinStreak),
		PeakEloDate:        rating.PeakDate,
		PeakEloWinStreak:   int64(rating.PeakWinStreak),
		TitleWeightClasses: string(titles),
		LastUpdated:        rating.LastUpdated,
		FighterName:        rating.FighterName,
	})
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}

	if err := qtx.DeleteEloHistoryByFighter(ctx, rating.FighterName); err != nil {
		return fmt.Errorf("failed to clear elo history: %w", err)
	}
	for i := range rating.History {
		entry := &rating.History[i]
		if entry.ID == "" {
			if entry.ID, err = gonanoid.New(); err != nil {
				return fmt.Errorf("failed to generate nanoid: %w", err)
			}
		}
		err := qtx.InsertEloHistory(ctx, db.InsertEloHistoryParams{
			ID:          entry.ID,
			FighterName: rating.FighterName,
			Elo:         entry.Elo,
			Date:        entry.Date,
		})
		if err != nil {
			return fmt.Errorf("failed to insert elo history: %w", err)
		}
	}

	if err := qtx.DeleteAchievementsByFighter(ctx, rating.FighterName); err != nil {
		return fmt.Errorf("failed to clear achievements: %w", err)
	}
	for i := range rating.DoubleChampAchievements {
		a := &rating.DoubleChampAchievements[i]
		if a.ID == "" {
			if a.ID, err = gonanoid.New(); err != nil {
				return fmt.Errorf("failed to generate nanoid: %w", err)
			}
		}
		classes, err := json.Marshal(nonNil(a.WeightClasses))
		if err != nil {
			return fmt.Errorf("failed to encode achievement: %w", err)
		}
		err = qtx.InsertAchievement(ctx, db.InsertAchievementParams{
			ID:            a.ID,
			FighterName:   rating.FighterName,
			Date:          a.Date,
			WeightClasses: string(classes),
		})
		if err != nil {
			return fmt.Errorf("failed to insert achievement: %w", err)
		}
	}

	return nil
}

func toRatings(rows []db.EloRating) ([]*domain.EloRating, error) {
	ratings := make([]*domain.EloRating, 0, len(rows))
	for _, row := range rows {
		rating, err := toRating(row)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}

func toRating(row db.EloRating) (*domain.EloRating, error) {
	var titles []string
	if err := json.Unmarshal([]byte(row.TitleWeightClasses), &titles); err != nil {
		return nil, fmt.Errorf("failed to decode title weight classes for %q: %w", row.FighterName, err)
	}

	return &domain.EloRating{
		FighterName:        row.FighterName,
		Basic:              row.BasicElo,
		Experience:         row.ExperienceElo,
		TitleFight:         row.TitleFightElo,
		WinType:            row.WinTypeElo,
		Striking:           row.StrikingElo,
		Ground:             row.GroundElo,
		Activity:           row.ActivityElo,
		WinStreak:          row.WinStreakElo,
		Category:           row.CategoryElo,
		Combined:           row.CombinedElo,
		Peak:               row.PeakElo,
		FightCount:         int(row.FightCount),
		TitleFightCount:    int(row.TitleFightCount),
		CurrentWinStreak:   int(row.CurrentWinStreak),
		HighestWinStreak:   int(row.HighestWinStreak),
		PeakDate:           row.PeakEloDate,
		PeakWinStreak:      int(row.PeakEloWinStreak),
		TitleWeightClasses: titles,
		LastUpdated:        row.LastUpdated,
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
