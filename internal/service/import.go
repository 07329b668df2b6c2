package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"ufc-elo/internal/constants"
	"ufc-elo/internal/domain"
	"ufc-elo/internal/normalize"
)

type FightUpserter interface {
	UpsertBatch(ctx context.Context, fights []domain.Fight) error
}

type FighterUpserter interface {
	UpsertBatch(ctx context.Context, fighters []domain.Fighter) error
}

type DatasetFetcher interface {
	FetchFights(ctx context.Context) ([]byte, error)
	FetchFighters(ctx context.Context) ([]byte, error)
}

type ImportResult struct {
	Fights           int
	Fighters         int
	RejectedFights   int
	RejectedFighters int
}

type ImportService struct {
	fights   FightUpserter
	fighters FighterUpserter
	dataset  DatasetFetcher
	logger   zerolog.Logger
}

func NewImportService(fights FightUpserter, fighters FighterUpserter, dataset DatasetFetcher, logger zerolog.Logger) *ImportService {
	return &ImportService{fights: fights, fighters: fighters, dataset: dataset, logger: logger}
}

// ImportRemote downloads both CSV files concurrently and imports them.
func (s *ImportService) ImportRemote(ctx context.Context) (*ImportResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*constants.ExternalAPITimeout)
	defer cancel()

	var fightsCSV, fightersCSV []byte
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		fightsCSV, err = s.dataset.FetchFights(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		fightersCSV, err = s.dataset.FetchFighters(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to download dataset")
		return nil, fmt.Errorf("failed to download dataset: %w", err)
	}

	return s.Import(ctx, bytes.NewReader(fightsCSV), bytes.NewReader(fightersCSV))
}

// Import upserts fighters first, then fights. Either reader may be nil.
func (s *ImportService) Import(ctx context.Context, fightsCSV, fightersCSV io.Reader) (*ImportResult, error) {
	var res ImportResult

	if fightersCSV != nil {
		fighters, rejected, err := ParseFighters(fightersCSV)
		if err != nil {
			return nil, err
		}
		if err := s.fighters.UpsertBatch(ctx, fighters); err != nil {
			return nil, fmt.Errorf("failed to store fighters: %w", err)
		}
		res.Fighters, res.RejectedFighters = len(fighters), rejected
	}

	if fightsCSV != nil {
		fights, rejected, err := ParseFights(fightsCSV)
		if err != nil {
			return nil, err
		}
		if err := s.fights.UpsertBatch(ctx, fights); err != nil {
			return nil, fmt.Errorf("failed to store fights: %w", err)
		}
		res.Fights, res.RejectedFights = len(fights), rejected
	}

	s.logger.Info().
		Int("fights", res.Fights).
		Int("fighters", res.Fighters).
		Int("rejected_fights", res.RejectedFights).
		Int("rejected_fighters", res.RejectedFighters).
		Msg("dataset imported")

	return &res, nil
}

// ParseFights reads the fights CSV. Rows without both fighter names or a
// parseable date are rejected and counted; statistic columns are kept as text.
func ParseFights(r io.Reader) ([]domain.Fight, int, error) {
	rows, err := readTable(r, "R_fighter", "B_fighter", "date")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read fights csv: %w", err)
	}

	var fights []domain.Fight
	rejected := 0
	for _, row := range rows {
		red, blue := row.get("R_fighter"), row.get("B_fighter")
		date, err := parseDate(row.get("date"))
		if red == "" || blue == "" || err != nil {
			rejected++
			continue
		}

		fights = append(fights, domain.Fight{
			RedFighter:    red,
			BlueFighter:   blue,
			Date:          date,
			Winner:        row.get("Winner"),
			FightType:     row.get("Fight_type"),
			WinBy:         row.get("win_by"),
			LastRound:     normalize.Count(row.get("last_round")),
			LastRoundTime: row.get("last_round_time"),
			RedKD:         normalize.Count(row.get("R_KD")),
			BlueKD:        normalize.Count(row.get("B_KD")),
			RedSigStr:     row.get("R_SIG_STR."),
			BlueSigStr:    row.get("B_SIG_STR."),
			RedTotalStr:   row.get("R_TOTAL_STR."),
			BlueTotalStr:  row.get("B_TOTAL_STR."),
			RedTD:         row.get("R_TD"),
			BlueTD:        row.get("B_TD"),
			RedCtrl:       row.get("R_CTRL"),
			BlueCtrl:      row.get("B_CTRL"),
			RedGround:     row.get("R_GROUND"),
			BlueGround:    row.get("B_GROUND"),
		})
	}
	return fights, rejected, nil
}

// ParseFighters reads the fighters CSV. Rows without a name are rejected.
// Later rows for the same name replace earlier ones.
func ParseFighters(r io.Reader) ([]domain.Fighter, int, error) {
	rows, err := readTable(r, "fighter_name")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read fighters csv: %w", err)
	}

	index := make(map[string]int)
	var fighters []domain.Fighter
	rejected := 0
	for _, row := range rows {
		name := row.get("fighter_name")
		if name == "" {
			rejected++
			continue
		}

		f := domain.Fighter{
			Name:   name,
			Height: row.get("Height"),
			Weight: row.get("Weight"),
			Reach:  number(row.get("Reach")),
			Stance: row.get("Stance"),
			SLpM:   number(row.get("SLpM")),
			StrAcc: row.get("Str_Acc"),
			SApM:   number(row.get("SApM")),
			StrDef: row.get("Str_Def"),
			TDAvg:  number(row.get("TD_Avg")),
			TDAcc:  row.get("TD_Acc"),
			TDDef:  row.get("TD_Def"),
			SubAvg: number(row.get("Sub_Avg")),
		}
		if dob, err := parseDate(row.get("DOB")); err == nil {
			f.DOB = &dob
		}

		if i, seen := index[name]; seen {
			fighters[i] = f
			continue
		}
		index[name] = len(fighters)
		fighters = append(fighters, f)
	}
	return fighters, rejected, nil
}

type record struct {
	header map[string]int
	fields []string
}

func (r record) get(col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

// readTable reads a CSV with a header row and checks the required columns.
func readTable(r io.Reader, required ...string) ([]record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	header := make(map[string]int, len(head))
	for i, h := range head {
		header[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range required {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var rows []record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record{header: header, fields: fields})
	}
	return rows, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" || strings.EqualFold(s, "--") {
		return time.Time{}, errors.New("empty date")
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// number parses fields like `72.0`, `84"` or `3.29`; anything else is 0.
func number(s string) float64 {
	s = strings.TrimSpace(strings.TrimRight(s, `"%`))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
