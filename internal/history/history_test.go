package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ufc-elo/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUpsert(t *testing.T) {
	var h []domain.HistoryEntry
	h = Upsert(h, domain.HistoryEntry{ID: "a", Elo: 1010, Date: day(2020, 1, 1)})
	h = Upsert(h, domain.HistoryEntry{Elo: 1020, Date: day(2020, 2, 1)})
	assert.Len(t, h, 2)

	before := h
	h = Upsert(h, domain.HistoryEntry{Elo: 1005, Date: day(2020, 1, 1)})
	assert.Len(t, h, 2)
	assert.Equal(t, 1005.0, h[0].Elo)
	assert.Equal(t, "a", h[0].ID, "overwrite keeps the stored id")
	assert.Equal(t, 1010.0, before[0].Elo, "input slice is not modified")
}

func TestClean(t *testing.T) {
	fightDates := []time.Time{day(2020, 1, 1), day(2020, 2, 1), day(2020, 3, 1)}
	h := []domain.HistoryEntry{
		{Elo: 1030, Date: day(2020, 3, 1)},
		{Elo: 1010, Date: day(2020, 1, 1)},
		{Elo: 999, Date: day(2019, 12, 31)},
		{Elo: 1020, Date: day(2020, 2, 1)},
		{Elo: 1025, Date: day(2020, 2, 1)},
	}

	cleaned := Clean(h, fightDates)
	assert.Equal(t, []domain.HistoryEntry{
		{Elo: 1010, Date: day(2020, 1, 1)},
		{Elo: 1025, Date: day(2020, 2, 1)},
		{Elo: 1030, Date: day(2020, 3, 1)},
	}, cleaned)

	assert.Equal(t, cleaned, Clean(cleaned, fightDates), "cleaning a clean history is a no-op")
	assert.Empty(t, Clean(nil, fightDates))
	assert.Empty(t, Clean(h, nil))
}

func TestChangeOn(t *testing.T) {
	h := []domain.HistoryEntry{
		{Elo: 1010, Date: day(2020, 1, 1)},
		{Elo: 1025.5, Date: day(2020, 2, 1)},
	}
	assert.Equal(t, 0.0, ChangeOn(h, day(2020, 1, 1)))
	assert.Equal(t, 15.5, ChangeOn(h, day(2020, 2, 1).Add(3*time.Hour)))
	assert.Equal(t, 0.0, ChangeOn(h, day(2021, 1, 1)))
}
