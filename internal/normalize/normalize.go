// Package normalize turns the free-text statistic fields of the stats feed
// into numbers. Nothing here returns an error: malformed input degrades to
// the documented neutral value so a bad row never aborts a recalculation.
package normalize

import (
	"math"
	"strconv"
	"strings"
)

// ParseOf splits an "X of Y" statistic. Either side falls back to 0.
func ParseOf(s string) (landed, attempted int) {
	left, right, found := strings.Cut(strings.TrimSpace(s), " of ")
	landed = Count(left)
	if found {
		attempted = Count(right)
	}
	return landed, attempted
}

// Landed is the X of an "X of Y" statistic, 0 when malformed.
func Landed(s string) int {
	landed, _ := ParseOf(s)
	return landed
}

// Count parses a non-negative integer count. Fractional values are truncated
// ("1.0" from spreadsheet exports); anything else is 0.
func Count(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return int(f)
}

// ClockSeconds converts "MM:SS" to seconds. Each component that fails to
// parse counts as 0, so "5:xx" is 300 and "" is 0.
func ClockSeconds(s string) int {
	mins, secs, _ := strings.Cut(strings.TrimSpace(s), ":")
	return Count(mins)*60 + Count(secs)
}

// ParseClock is the strict form of ClockSeconds: ok is false unless both
// components are present and numeric.
func ParseClock(s string) (seconds int, ok bool) {
	mins, secs, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(mins))
	if err != nil || m < 0 {
		return 0, false
	}
	sec, err := strconv.Atoi(strings.TrimSpace(secs))
	if err != nil || sec < 0 {
		return 0, false
	}
	return m*60 + sec, true
}
