// Package elo implements the rating transforms applied to every bout during
// a recalculation. All transforms are pure: they read the two current
// ratings plus the facts of the bout and return new ratings with the
// diagnostics that produced them. Side A is the red corner.
package elo

import (
	"math"
	"time"

	"ufc-elo/internal/domain"
	"ufc-elo/internal/normalize"
)

const (
	neutralScore = 0.5
	eloSpread    = 400.0
)

type Calculator struct {
	t Tunables
}

func New(t Tunables) *Calculator {
	return &Calculator{t: t}
}

func (c *Calculator) Tunables() Tunables {
	return c.t
}

// Result is the common part of every transform output.
type Result struct {
	NewA    float64
	NewB    float64
	ChangeA float64
	ChangeB float64
}

// Bout carries the per-match facts shared by all transforms. IsTitleFight is
// filled from the title-fight transform before the dependent transforms run.
type Bout struct {
	Date          time.Time
	ScoreA        float64
	IsTitleFight  bool
	FightType     string
	Method        normalize.FinishMethod
	LastRound     int
	LastRoundTime string

	KnockdownsA    int
	KnockdownsB    int
	SigStrikesA    int
	SigStrikesB    int
	TotalStrikesA  int
	TotalStrikesB  int
	TakedownsA     int
	TakedownsB     int
	ControlA       int // seconds
	ControlB       int
	GroundStrikesA int
	GroundStrikesB int
}

// NewBout parses the free-text statistics of f.
func NewBout(f domain.Fight) Bout {
	return Bout{
		Date:           f.Date,
		ScoreA:         Score(f),
		FightType:      f.FightType,
		Method:         normalize.Method(f.WinBy),
		LastRound:      f.LastRound,
		LastRoundTime:  f.LastRoundTime,
		KnockdownsA:    max(f.RedKD, 0),
		KnockdownsB:    max(f.BlueKD, 0),
		SigStrikesA:    normalize.Landed(f.RedSigStr),
		SigStrikesB:    normalize.Landed(f.BlueSigStr),
		TotalStrikesA:  normalize.Landed(f.RedTotalStr),
		TotalStrikesB:  normalize.Landed(f.BlueTotalStr),
		TakedownsA:     normalize.Landed(f.RedTD),
		TakedownsB:     normalize.Landed(f.BlueTD),
		ControlA:       normalize.ClockSeconds(f.RedCtrl),
		ControlB:       normalize.ClockSeconds(f.BlueCtrl),
		GroundStrikesA: normalize.Landed(f.RedGround),
		GroundStrikesB: normalize.Landed(f.BlueGround),
	}
}

// Score is side A's result: 1 win, 0 loss, 0.5 for anything else.
func Score(f domain.Fight) float64 {
	switch f.Winner {
	case f.RedFighter:
		return 1
	case f.BlueFighter:
		return 0
	}
	return neutralScore
}

// Expected is the logistic expectation of A against B.
func Expected(ratingA, ratingB float64) float64 {
	return 1 / (1 + math.Pow(10, (ratingB-ratingA)/eloSpread))
}

func Delta(k, score, expected float64) float64 {
	return k * (score - expected)
}

func finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func isFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// inputs replaces non-numeric ratings and scores with their neutral values.
func (c *Calculator) inputs(ra, rb, score float64) (float64, float64, float64) {
	return finite(ra, c.t.InitialRating), finite(rb, c.t.InitialRating), finite(score, neutralScore)
}

// pair applies the two changes, keeps both ratings non-negative and reports
// the change actually applied.
func pair(ra, rb, changeA, changeB float64) Result {
	newA := math.Max(ra+finite(changeA, 0), 0)
	newB := math.Max(rb+finite(changeB, 0), 0)
	return Result{NewA: newA, NewB: newB, ChangeA: newA - ra, ChangeB: newB - rb}
}

// sides computes each side's change from its own K and the shared expectation.
func sides(ra, rb, score, kA, kB float64) (float64, float64) {
	e := Expected(ra, rb)
	return Delta(kA, score, e), Delta(kB, 1-score, 1-e)
}

// Dominance rewards out-landing the opponent on a log scale. A shutout
// (opponent 0, subject > 0) earns the cap.
func Dominance(landed, opponent int, multiplier, limit float64) float64 {
	if opponent <= 0 {
		if landed > 0 {
			return limit
		}
		return 0
	}
	ratio := float64(landed) / float64(opponent)
	if ratio <= 1 {
		return 0
	}
	return math.Min(math.Log10(ratio)*multiplier, limit)
}
