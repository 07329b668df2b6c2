// Package history maintains the per-fighter series of combined ratings, one
// entry per fight date.
package history

import (
	"slices"
	"time"

	"ufc-elo/internal/domain"
)

// Upsert replaces the entry recorded on the same date, or appends entry.
func Upsert(entries []domain.HistoryEntry, entry domain.HistoryEntry) []domain.HistoryEntry {
	out := slices.Clone(entries)
	for i := range out {
		if out[i].Date.Equal(entry.Date) {
			if entry.ID == "" {
				entry.ID = out[i].ID
			}
			out[i] = entry
			return out
		}
	}
	return append(out, entry)
}

// Clean drops entries whose date is not a known fight date, keeps the last
// entry for each date and sorts ascending.
func Clean(entries []domain.HistoryEntry, fightDates []time.Time) []domain.HistoryEntry {
	known := make(map[int64]struct{}, len(fightDates))
	for _, d := range fightDates {
		known[d.UnixNano()] = struct{}{}
	}

	index := make(map[int64]int, len(entries))
	out := make([]domain.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		key := e.Date.UnixNano()
		if _, ok := known[key]; !ok {
			continue
		}
		if i, seen := index[key]; seen {
			out[i] = e
			continue
		}
		index[key] = len(out)
		out = append(out, e)
	}

	slices.SortStableFunc(out, func(a, b domain.HistoryEntry) int { return a.Date.Compare(b.Date) })
	return out
}

// ChangeOn is the combined-rating change recorded on date: the entry's value
// minus the previous entry's. The first entry and unknown dates report 0.
func ChangeOn(entries []domain.HistoryEntry, date time.Time) float64 {
	y, m, d := date.UTC().Date()
	for i, e := range entries {
		ey, em, ed := e.Date.UTC().Date()
		if ey == y && em == m && ed == d {
			if i == 0 {
				return 0
			}
			return e.Elo - entries[i-1].Elo
		}
	}
	return 0
}
