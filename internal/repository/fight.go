package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"ufc-elo/internal/constants"
	"ufc-elo/internal/db"
	"ufc-elo/internal/domain"
)

type FightRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewFightRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *FightRepository {
	return &FightRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// FindAllByDate returns every recorded bout, oldest first.
func (r *FightRepository) FindAllByDate(ctx context.Context) ([]domain.Fight, error) {
	rows, err := r.queries.ListFightsByDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fights: %w", err)
	}
	return toFights(rows), nil
}

func (r *FightRepository) FindByFighter(ctx context.Context, name string) ([]domain.Fight, error) {
	rows, err := r.queries.ListFightsByFighter(ctx, db.ListFightsByFighterParams{
		RFighter: name,
		BFighter: name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list fights for %q: %w", name, err)
	}
	return toFights(rows), nil
}

// Stats reports dataset size. AverageFights is appearances per distinct
// fighter, 1 for an empty dataset.
func (r *FightRepository) Stats(ctx context.Context) (domain.FightStats, error) {
	total, err := r.queries.CountFights(ctx)
	if err != nil {
		return domain.FightStats{}, fmt.Errorf("failed to count fights: %w", err)
	}
	distinct, err := r.queries.CountDistinctFighters(ctx)
	if err != nil {
		return domain.FightStats{}, fmt.Errorf("failed to count fighters: %w", err)
	}

	stats := domain.FightStats{TotalFights: int(total), UniqueFighters: int(distinct), AverageFights: 1}
	if distinct > 0 {
		stats.AverageFights = float64(total*2) / float64(distinct)
	}
	return stats, nil
}

func (r *FightRepository) UpsertBatch(ctx context.Context, fights []domain.Fight) error {
	if len(fights) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now().UTC()

	for i := 0; i < len(fights); i += constants.DBBatchSize {
		end := min(i+constants.DBBatchSize, len(fights))

		for _, f := range fights[i:end] {
			createdAt := f.CreatedAt
			if createdAt.IsZero() {
				createdAt = now
			}
			err := qtx.UpsertFight(ctx, db.UpsertFightParams{
				RFighter:      f.RedFighter,
				BFighter:      f.BlueFighter,
				Date:          f.Date,
				Winner:        f.Winner,
				FightType:     f.FightType,
				WinBy:         f.WinBy,
				LastRound:     int64(f.LastRound),
				LastRoundTime: f.LastRoundTime,
				RKd:           int64(f.RedKD),
				BKd:           int64(f.BlueKD),
				RSigStr:       f.RedSigStr,
				BSigStr:       f.BlueSigStr,
				RTotalStr:     f.RedTotalStr,
				BTotalStr:     f.BlueTotalStr,
				RTd:           f.RedTD,
				BTd:           f.BlueTD,
				RCtrl:         f.RedCtrl,
				BCtrl:         f.BlueCtrl,
				RGround:       f.RedGround,
				BGround:       f.BlueGround,
				CreatedAt:     createdAt,
				UpdatedAt:     now,
			})
			if err != nil {
				r.logger.Error().Err(err).
					Str("red", f.RedFighter).
					Str("blue", f.BlueFighter).
					Time("date", f.Date).
					Msg("failed to upsert fight")
				return fmt.Errorf("failed to upsert fight: %w", err)
			}
		}

		r.logger.Debug().Int("batch_start", i).Int("batch_end", end).Msg("fight batch upserted")
	}

	return tx.Commit()
}

func toFights(rows []db.Fight) []domain.Fight {
	fights := make([]domain.Fight, len(rows))
	for i, f := range rows {
		fights[i] = domain.Fight{
			ID:            f.ID,
			RedFighter:    f.RFighter,
			BlueFighter:   f.BFighter,
			Date:          f.Date,
			Winner:        f.Winner,
			FightType:     f.FightType,
			WinBy:         f.WinBy,
			LastRound:     int(f.LastRound),
			LastRoundTime: f.LastRoundTime,
			RedKD:         int(f.RKd),
			BlueKD:        int(f.BKd),
			RedSigStr:     f.RSigStr,
			BlueSigStr:    f.BSigStr,
			RedTotalStr:   f.RTotalStr,
			BlueTotalStr:  f.BTotalStr,
			RedTD:         f.RTd,
			BlueTD:        f.BTd,
			RedCtrl:       f.RCtrl,
			BlueCtrl:      f.BCtrl,
			RedGround:     f.RGround,
			BlueGround:    f.BGround,
			CreatedAt:     f.CreatedAt,
			UpdatedAt:     f.UpdatedAt,
		}
	}
	return fights
}
