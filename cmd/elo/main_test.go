package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ufc-elo/internal/api"
	"ufc-elo/internal/config"
	"ufc-elo/internal/database"
	"ufc-elo/internal/db"
	"ufc-elo/internal/elo"
	"ufc-elo/internal/metrics"
	"ufc-elo/internal/repository"
	"ufc-elo/internal/service"
)

const testFights = `R_fighter,B_fighter,win_by,last_round,last_round_time,date,Fight_type,Winner
Alpha,Bravo,KO/TKO,1,1:00,2020-01-01,UFC Lightweight Bout,Alpha
Bravo,Charlie,Decision - Split,3,5:00,2020-06-01,UFC Lightweight Bout,Bravo
`

const testFighters = `fighter_name,Height,Weight,Stance
Alpha,"5' 10""",155 lbs.,Orthodox
Bravo,"5' 9""",155 lbs.,Southpaw
Charlie,"5' 11""",155 lbs.,Orthodox
`

func newTestApp(t *testing.T) *app {
	t.Helper()
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "elo.db"), RankingLimit: 500}
	logger := zerolog.Nop()

	sqlDB, err := database.New(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	q := db.New(sqlDB)
	fights := repository.NewFightRepository(sqlDB, q, logger)
	fighters := repository.NewFighterRepository(sqlDB, q, logger)
	ratings := repository.NewRatingRepository(sqlDB, q, logger)

	return &app{
		recalc: service.NewRecalculationService(fights, fighters, ratings,
			elo.New(elo.DefaultTunables()), metrics.NewRecalculation(prometheus.NewRegistry()), logger),
		rankings: service.NewRankingService(ratings, fights, fighters, cfg, logger),
		importer: service.NewImportService(fights, fighters, api.NewDatasetClient(cfg), logger),
		db:       sqlDB,
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestCommands(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)
	var out bytes.Buffer

	err := a.importCmd(ctx, &out, []string{
		"--fights", writeFile(t, "fights.csv", testFights),
		"--fighters", writeFile(t, "fighters.csv", testFighters),
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Imported 2 fights (0 rejected) and 3 fighters (0 rejected)")

	out.Reset()
	require.NoError(t, a.recalculateCmd(ctx, &out, []string{"--quiet"}))
	assert.Contains(t, out.String(), "2 fights processed, 0 skipped, 3 fighters rated")

	out.Reset()
	require.NoError(t, a.rankingsCmd(ctx, &out, []string{"-n", "3"}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "LAST FIGHT")
	assert.Contains(t, lines[1], "Alpha")
	assert.Contains(t, lines[1], "2020-01-01 vs Bravo (won")
	assert.Contains(t, lines[3], "Charlie")

	out.Reset()
	require.NoError(t, a.rankingsCmd(ctx, &out, []string{"--dimension", "basic"}))
	assert.Contains(t, out.String(), "Alpha")

	out.Reset()
	require.NoError(t, a.fighterCmd(ctx, &out, []string{"Bravo"}))
	assert.Contains(t, out.String(), "Southpaw stance")
	assert.Contains(t, out.String(), "2 fights (0 title fights), win streak 1 (best 1)")
	assert.Contains(t, out.String(), "2020-06-01 vs Charlie, Decision - Split")
}

func TestCommandErrors(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)
	var out bytes.Buffer

	assert.Error(t, a.importCmd(ctx, &out, nil))
	assert.ErrorIs(t, a.importCmd(ctx, &out, []string{"--remote"}), api.ErrNoDatasetURL)
	assert.Error(t, a.rankingsCmd(ctx, &out, []string{"--dimension", "reach"}))
	assert.Error(t, a.fighterCmd(ctx, &out, nil))
	assert.ErrorIs(t, a.fighterCmd(ctx, &out, []string{"Nobody"}), repository.ErrNotFound)
}
