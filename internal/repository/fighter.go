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

type FighterRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewFighterRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *FighterRepository {
	return &FighterRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *FighterRepository) GetByName(ctx context.Context, name string) (*domain.Fighter, error) {
	f, err := r.queries.GetFighterByName(ctx, name)
	if err != nil {
		return nil, notFound(err)
	}

	return &domain.Fighter{
		Name:      f.Name,
		Height:    f.Height,
		Weight:    f.Weight,
		Reach:     f.Reach,
		Stance:    f.Stance,
		DOB:       f.Dob,
		SLpM:      f.Slpm,
		StrAcc:    f.StrAcc,
		SApM:      f.Sapm,
		StrDef:    f.StrDef,
		TDAvg:     f.TdAvg,
		TDAcc:     f.TdAcc,
		TDDef:     f.TdDef,
		SubAvg:    f.SubAvg,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}, nil
}

func (r *FighterRepository) ListNames(ctx context.Context) ([]string, error) {
	return r.queries.ListFighterNames(ctx)
}

func (r *FighterRepository) UpsertBatch(ctx context.Context, fighters []domain.Fighter) error {
	if len(fighters) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now().UTC()

	for i := 0; i < len(fighters); i += constants.DBBatchSize {
		end := min(i+constants.DBBatchSize, len(fighters))

		for _, f := range fighters[i:end] {
			createdAt := f.CreatedAt
			if createdAt.IsZero() {
				createdAt = now
			}
			err := qtx.UpsertFighter(ctx, db.UpsertFighterParams{
				Name:      f.Name,
				Height:    f.Height,
				Weight:    f.Weight,
				Reach:     f.Reach,
				Stance:    f.Stance,
				Dob:       f.DOB,
				Slpm:      f.SLpM,
				StrAcc:    f.StrAcc,
				Sapm:      f.SApM,
				StrDef:    f.StrDef,
				TdAvg:     f.TDAvg,
				TdAcc:     f.TDAcc,
				TdDef:     f.TDDef,
				SubAvg:    f.SubAvg,
				CreatedAt: createdAt,
				UpdatedAt: now,
			})
			if err != nil {
				r.logger.Error().Err(err).Str("fighter", f.Name).Msg("failed to upsert fighter")
				return fmt.Errorf("failed to upsert fighter %q: %w", f.Name, err)
			}
		}

		r.logger.Debug().Int("batch_start", i).Int("batch_end", end).Msg("fighter batch upserted")
	}

	return tx.Commit()
}
