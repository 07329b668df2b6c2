package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ufc-elo/internal/service"
)

type countingRecalc struct {
	calls atomic.Int32
	err   error
}

func (c *countingRecalc) RecalculateAll(ctx context.Context, opts ...service.RecalcOption) (*service.Summary, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return &service.Summary{RunID: "r"}, nil
}

type countingImporter struct {
	calls atomic.Int32
	err   error
}

func (c *countingImporter) ImportRemote(ctx context.Context) (*service.ImportResult, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return &service.ImportResult{}, nil
}

func TestDisabledWithoutSchedule(t *testing.T) {
	s, err := newScheduler("", &countingRecalc{}, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, s.Enabled())

	s.Start()
	assert.Empty(t, s.cron.Entries())
	assert.NoError(t, s.Stop(context.Background()))
}

func TestInvalidSchedule(t *testing.T) {
	_, err := newScheduler("every tuesday", &countingRecalc{}, nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestScheduleAndStop(t *testing.T) {
	s, err := newScheduler("@daily", &countingRecalc{}, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, s.Enabled())

	s.Start()
	entries := s.cron.Entries()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Next.After(time.Now()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestRunImportsThenRecalculates(t *testing.T) {
	recalc := &countingRecalc{}
	imp := &countingImporter{err: errors.New("feed down")}
	s, err := newScheduler("@hourly", recalc, imp, zerolog.Nop())
	require.NoError(t, err)

	s.Run()
	assert.Equal(t, int32(1), imp.calls.Load())
	assert.Equal(t, int32(1), recalc.calls.Load(), "a failed import still recalculates")

	recalc.err = service.ErrRecalculationRunning
	s.Run()
	assert.Equal(t, int32(2), recalc.calls.Load())
}
