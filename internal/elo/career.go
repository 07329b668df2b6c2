package elo

import (
	"math"
	"slices"
	"sort"
	"time"

	"ufc-elo/internal/domain"
	"ufc-elo/internal/normalize"
)

const maxActivityBonus = 2.0

// MonthsBetween counts whole calendar months from a to b in UTC, one less
// when b's day of month is earlier than a's.
func MonthsBetween(a, b time.Time) int {
	a, b = a.UTC(), b.UTC()
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}

// GapBonus maps the layoff between two consecutive fights to a bonus.
func GapBonus(months int) float64 {
	switch {
	case months < 1:
		return 3
	case months < 2:
		return 2.5
	case months < 3:
		return 2
	case months < 6:
		return 1.5
	case months < 12:
		return 1.1
	}
	return 1
}

// ActivityBonus averages the gap bonuses over a career, capped at 2. Fewer
// than two fights earn the neutral 1.
func ActivityBonus(dates []time.Time) float64 {
	if len(dates) < 2 {
		return 1
	}
	sorted := slices.Clone(dates)
	slices.SortFunc(sorted, func(a, b time.Time) int { return a.Compare(b) })

	var sum float64
	for i := 1; i < len(sorted); i++ {
		sum += GapBonus(MonthsBetween(sorted[i-1], sorted[i]))
	}
	return math.Min(sum/float64(len(sorted)-1), maxActivityBonus)
}

// CareerDates returns the dates of name's fights up to and including until.
func CareerDates(fights []domain.Fight, name string, until time.Time) []time.Time {
	var dates []time.Time
	for _, f := range fights {
		if f.Involves(name) && !f.Date.After(until) {
			dates = append(dates, f.Date)
		}
	}
	return dates
}

type ActivityResult struct {
	Result
	BonusA float64
	BonusB float64
	KA     float64
	KB     float64
}

// Activity boosts only the winner's K by their career activity bonus.
// datesA and datesB are each side's fight dates up to the current bout.
func (c *Calculator) Activity(ra, rb, score float64, datesA, datesB []time.Time) ActivityResult {
	ra, rb, score = c.inputs(ra, rb, score)

	bonusA, bonusB := 1.0, 1.0
	switch score {
	case 1:
		bonusA = ActivityBonus(datesA)
	case 0:
		bonusB = ActivityBonus(datesB)
	}
	kA, kB := c.t.BaseK*bonusA, c.t.BaseK*bonusB

	changeA, changeB := sides(ra, rb, score, kA, kB)
	return ActivityResult{Result: pair(ra, rb, changeA, changeB), BonusA: bonusA, BonusB: bonusB, KA: kA, KB: kB}
}

// PriorWinStreak counts the consecutive wins ending at name's most recent
// fight strictly before the given date.
func PriorWinStreak(fights []domain.Fight, name string, before time.Time) int {
	prior := make([]domain.Fight, 0)
	for _, f := range fights {
		if f.Involves(name) && f.Date.Before(before) {
			prior = append(prior, f)
		}
	}
	sort.SliceStable(prior, func(i, j int) bool { return prior[i].Date.Before(prior[j].Date) })

	streak := 0
	for _, f := range prior {
		if f.Winner == name {
			streak++
		} else {
			streak = 0
		}
	}
	return streak
}

// StreakBonus is the piecewise-linear bonus for a win streak length.
func StreakBonus(streak int) float64 {
	s := float64(max(streak, 0))
	switch {
	case streak < 5:
		return s * 0.2
	case streak < 10:
		return 1 + (s-5)*0.3
	case streak < 15:
		return 2.5 + (s-10)*0.4
	}
	return 4.5 + (s-15)*0.5
}

type WinStreakResult struct {
	Result
	StreakA           int
	StreakB           int
	BonusA            float64
	BonusB            float64
	KA                float64
	KB                float64
	NewCurrentStreakA int
	NewCurrentStreakB int
}

// WinStreak weights each side by the streak it brought into the bout and
// advances the running streak counters.
func (c *Calculator) WinStreak(ra, rb, score float64, streakA, streakB, currentA, currentB int) WinStreakResult {
	ra, rb, score = c.inputs(ra, rb, score)

	bonusA, bonusB := StreakBonus(streakA), StreakBonus(streakB)
	kA, kB := c.t.BaseK*(1+bonusA), c.t.BaseK*(1+bonusB)
	changeA, changeB := sides(ra, rb, score, kA, kB)

	nextA, nextB := 0, 0
	switch score {
	case 1:
		nextA = max(currentA, 0) + 1
	case 0:
		nextB = max(currentB, 0) + 1
	}

	return WinStreakResult{
		Result:            pair(ra, rb, changeA, changeB),
		StreakA:           streakA,
		StreakB:           streakB,
		BonusA:            bonusA,
		BonusB:            bonusB,
		KA:                kA,
		KB:                kB,
		NewCurrentStreakA: nextA,
		NewCurrentStreakB: nextB,
	}
}

type CategoryResult struct {
	Result
	Official       bool
	WeightClass    string
	IsDoubleChampA bool
	IsDoubleChampB bool
	KA             float64
	KB             float64
	// TitlesA and TitlesB are the title weight classes after this bout.
	TitlesA []string
	TitlesB []string
}

// Category rewards winning an official title in a second, distinct weight
// class. The title sets are inputs and the updated sets are returned; the
// caller's slices are never modified.
func (c *Calculator) Category(ra, rb, score float64, fightType string, titlesA, titlesB []string) CategoryResult {
	ra, rb, score = c.inputs(ra, rb, score)

	official := normalize.IsOfficialTitleBout(fightType, c.t.LeaguePrefix)
	weightClass := normalize.WeightClass(fightType)

	nextA, doubleA := c.claimTitle(titlesA, official, score == 1, weightClass)
	nextB, doubleB := c.claimTitle(titlesB, official, score == 0, weightClass)

	kA, kB := c.t.BaseK, c.t.BaseK
	if doubleA {
		kA *= c.t.DoubleChampMultiplier
	}
	if doubleB {
		kB *= c.t.DoubleChampMultiplier
	}

	changeA, changeB := sides(ra, rb, score, kA, kB)
	changeA = math.Max(changeA, -c.t.CategoryMaxLoss)
	changeB = math.Max(changeB, -c.t.CategoryMaxLoss)

	return CategoryResult{
		Result:         pair(ra, rb, changeA, changeB),
		Official:       official,
		WeightClass:    weightClass,
		IsDoubleChampA: doubleA,
		IsDoubleChampB: doubleB,
		KA:             kA,
		KB:             kB,
		TitlesA:        nextA,
		TitlesB:        nextB,
	}
}

func (c *Calculator) claimTitle(titles []string, official, won bool, weightClass string) ([]string, bool) {
	next := slices.Clone(titles)
	if !official || !won || weightClass == "" || slices.Contains(titles, weightClass) {
		return next, false
	}
	return append(next, weightClass), len(titles) > 0
}
