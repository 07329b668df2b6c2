package server

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"

	"ufc-elo/internal/domain"
	"ufc-elo/internal/repository"
	"ufc-elo/internal/service"
)

const (
	ServiceName = "elo.v1.EloService"
	ServicePath = "/" + ServiceName + "/"

	RecalculateProcedure         = ServicePath + "Recalculate"
	GetRankingsProcedure         = ServicePath + "GetRankings"
	GetCombinedRankingsProcedure = ServicePath + "GetCombinedRankings"
	GetFighterProcedure          = ServicePath + "GetFighter"
	ListFightsProcedure          = ServicePath + "ListFights"
)

type Recalculator interface {
	RecalculateAll(ctx context.Context, opts ...service.RecalcOption) (*service.Summary, error)
}

type RankingReader interface {
	GetRankings(ctx context.Context, dimension domain.Dimension, limit int) ([]*domain.EloRating, error)
	GetCombinedRankings(ctx context.Context, limit int) ([]service.CombinedRanking, error)
	GetFighter(ctx context.Context, name string) (*service.FighterDetail, error)
	ListFights(ctx context.Context, name string) ([]domain.Fight, error)
}

type EloServer struct {
	recalc   Recalculator
	rankings RankingReader
	logger   zerolog.Logger
}

func NewEloServer(recalc *service.RecalculationService, rankings *service.RankingService, logger zerolog.Logger) *EloServer {
	return &EloServer{recalc: recalc, rankings: rankings, logger: logger}
}

func (s *EloServer) Recalculate(ctx context.Context, req *connect.Request[RecalculateRequest]) (*connect.Response[RecalculateResponse], error) {
	summary, err := s.recalc.RecalculateAll(ctx)
	if err != nil {
		return nil, s.toConnectError(ctx, err)
	}

	return connect.NewResponse(&RecalculateResponse{
		RunID:      summary.RunID,
		Processed:  summary.Processed,
		Skipped:    summary.Skipped,
		Fighters:   summary.Fighters,
		DurationMs: summary.Duration.Milliseconds(),
	}), nil
}

func (s *EloServer) GetRankings(ctx context.Context, req *connect.Request[RankingsRequest]) (*connect.Response[RankingsResponse], error) {
	dimension, err := domain.ParseDimension(req.Msg.Dimension)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	ratings, err := s.rankings.GetRankings(ctx, dimension, req.Msg.Limit)
	if err != nil {
		return nil, s.toConnectError(ctx, err)
	}

	resp := &RankingsResponse{Dimension: string(dimension), Entries: make([]RankingEntry, len(ratings))}
	for i, r := range ratings {
		resp.Entries[i] = rankingEntry(i+1, r, dimension)
	}
	return connect.NewResponse(resp), nil
}

func (s *EloServer) GetCombinedRankings(ctx context.Context, req *connect.Request[CombinedRankingsRequest]) (*connect.Response[CombinedRankingsResponse], error) {
	ranked, err := s.rankings.GetCombinedRankings(ctx, req.Msg.Limit)
	if err != nil {
		return nil, s.toConnectError(ctx, err)
	}

	resp := &CombinedRankingsResponse{Entries: make([]CombinedRankingEntry, len(ranked))}
	for i, r := range ranked {
		resp.Entries[i] = CombinedRankingEntry{
			RankingEntry:   rankingEntry(i+1, r.Rating, domain.DimensionCombined),
			LastFiveFights: recentFights(r.LastFights),
		}
	}
	return connect.NewResponse(resp), nil
}

func (s *EloServer) GetFighter(ctx context.Context, req *connect.Request[FighterRequest]) (*connect.Response[FighterResponse], error) {
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("name is required"))
	}

	detail, err := s.rankings.GetFighter(ctx, req.Msg.Name)
	if err != nil {
		return nil, s.toConnectError(ctx, err)
	}
	return connect.NewResponse(fighterResponse(detail)), nil
}

func (s *EloServer) ListFights(ctx context.Context, req *connect.Request[FightsRequest]) (*connect.Response[FightsResponse], error) {
	if req.Msg.Fighter == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("fighter is required"))
	}

	fights, err := s.rankings.ListFights(ctx, req.Msg.Fighter)
	if err != nil {
		return nil, s.toConnectError(ctx, err)
	}

	resp := &FightsResponse{Fights: make([]Fight, len(fights))}
	for i, f := range fights {
		resp.Fights[i] = fight(f)
	}
	return connect.NewResponse(resp), nil
}

func (s *EloServer) toConnectError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, service.ErrRecalculationRunning):
		return connect.NewError(connect.CodeAborted, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &s.logger
	}
	logger.Error().Err(err).Msg("request failed")
	return connect.NewError(connect.CodeInternal, err)
}

// NewHandler mounts every procedure under ServicePath, the way generated
// connect code does.
func NewHandler(s *EloServer, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	recalculate := connect.NewUnaryHandler(RecalculateProcedure, s.Recalculate, opts...)
	rankings := connect.NewUnaryHandler(GetRankingsProcedure, s.GetRankings, opts...)
	combined := connect.NewUnaryHandler(GetCombinedRankingsProcedure, s.GetCombinedRankings, opts...)
	fighter := connect.NewUnaryHandler(GetFighterProcedure, s.GetFighter, opts...)
	fights := connect.NewUnaryHandler(ListFightsProcedure, s.ListFights, opts...)

	return ServicePath, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RecalculateProcedure:
			recalculate.ServeHTTP(w, r)
		case GetRankingsProcedure:
			rankings.ServeHTTP(w, r)
		case GetCombinedRankingsProcedure:
			combined.ServeHTTP(w, r)
		case GetFighterProcedure:
			fighter.ServeHTTP(w, r)
		case ListFightsProcedure:
			fights.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
