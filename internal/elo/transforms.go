package elo

import (
	"math"

	"ufc-elo/internal/normalize"
)

func (c *Calculator) Basic(ra, rb, score float64) Result {
	ra, rb, score = c.inputs(ra, rb, score)
	change := Delta(c.t.BaseK, score, Expected(ra, rb))
	return pair(ra, rb, change, -change)
}

type ExperienceResult struct {
	Result
	KA float64
	KB float64
}

// Experience scales each side's K by the imbalance in fight counts so the
// less experienced fighter moves faster.
func (c *Calculator) Experience(ra, rb, score float64, countA, countB int) ExperienceResult {
	k := c.t.BaseK
	if !isFinite(ra, rb, score) {
		ra, rb, _ = c.inputs(ra, rb, score)
		return ExperienceResult{Result: Result{NewA: ra, NewB: rb}, KA: k, KB: k}
	}

	countA, countB = max(countA, 0), max(countB, 0)
	expDiff := float64(countB-countA) / float64(max(countA+countB, 1))
	kA := k * (1 + c.t.ExperienceAdjustment*expDiff)
	kB := k * (1 - c.t.ExperienceAdjustment*expDiff)

	changeA, changeB := sides(ra, rb, score, kA, kB)
	if !isFinite(changeA, changeB) {
		return ExperienceResult{Result: Result{NewA: ra, NewB: rb}, KA: k, KB: k}
	}
	return ExperienceResult{Result: pair(ra, rb, changeA, changeB), KA: kA, KB: kB}
}

type TitleFightResult struct {
	Result
	IsTitleFight bool
	K            float64
}

func (c *Calculator) TitleFight(ra, rb, score float64, fightType string) TitleFightResult {
	ra, rb, score = c.inputs(ra, rb, score)
	isTitle := normalize.IsTitleFight(fightType)
	k := c.t.BaseK
	if isTitle {
		k *= c.t.TitleFightMultiplier
	}
	change := Delta(k, score, Expected(ra, rb))
	return TitleFightResult{Result: pair(ra, rb, change, -change), IsTitleFight: isTitle, K: k}
}

type WinTypeResult struct {
	Result
	BonusFactor float64
	EffectiveK  float64
}

// WinTypeBonus is the finish-quality factor: method, round, first-round
// clock, then the title multiplier over the whole sum.
func (c *Calculator) WinTypeBonus(b Bout) float64 {
	bonus := 1.0

	switch b.Method {
	case normalize.FinishKOTKO, normalize.FinishSubmission:
		bonus += 1.0
	case normalize.FinishUnanimousDecision:
		bonus += 0.3
	}

	switch b.LastRound {
	case 1:
		bonus += 0.5
	case 2:
		bonus += 0.2
	}

	if b.LastRound == 1 {
		if secs, ok := normalize.ParseClock(b.LastRoundTime); ok {
			switch {
			case secs <= 30:
				bonus += 1.0
			case secs <= 60:
				bonus += 0.5
			case secs <= 120:
				bonus += 0.2
			case secs <= 180:
				bonus += 0.1
			}
		}
	}

	if b.IsTitleFight {
		bonus *= c.t.WinTypeTitleMultiplier
	}
	return bonus
}

func (c *Calculator) WinType(ra, rb float64, b Bout) WinTypeResult {
	ra, rb, score := c.inputs(ra, rb, b.ScoreA)
	bonus := c.WinTypeBonus(b)
	k := c.t.BaseK * bonus
	change := Delta(k, score, Expected(ra, rb))
	return WinTypeResult{Result: pair(ra, rb, change, -change), BonusFactor: bonus, EffectiveK: k}
}

type StrikingResult struct {
	Result
	BonusFactor      float64
	EffectiveK       float64
	SigStrikeBonus   float64
	TotalStrikeBonus float64
}

func (c *Calculator) Striking(ra, rb float64, b Bout) StrikingResult {
	ra, rb, score := c.inputs(ra, rb, b.ScoreA)

	bonus := 1.0
	if b.Method == normalize.FinishKOTKO {
		bonus *= 1.5
	}
	bonus += 0.75 * float64(max(b.KnockdownsA, 0)+max(b.KnockdownsB, 0))

	sig := Dominance(b.SigStrikesA, b.SigStrikesB, 1.2, 2.5)
	total := Dominance(b.TotalStrikesA, b.TotalStrikesB, 1.2, 2.5)
	bonus += sig + total

	k := math.Min(c.t.BaseK*bonus, c.t.BaseK*c.t.StrikingMaxMultiplier)
	change := Delta(k, score, Expected(ra, rb))
	return StrikingResult{
		Result:           pair(ra, rb, change, -change),
		BonusFactor:      bonus,
		EffectiveK:       k,
		SigStrikeBonus:   sig,
		TotalStrikeBonus: total,
	}
}

type GroundResult struct {
	Result
	BonusFactor        float64
	EffectiveK         float64
	TakedownBonus      float64
	ControlTimeBonus   float64
	GroundStrikesBonus float64
}

func (c *Calculator) Ground(ra, rb float64, b Bout) GroundResult {
	ra, rb, score := c.inputs(ra, rb, b.ScoreA)

	bonus := 1.0
	if b.Method == normalize.FinishSubmission {
		bonus *= 1.5
	}

	var winnerTakedowns int
	switch score {
	case 1:
		winnerTakedowns = b.TakedownsA
	case 0:
		winnerTakedowns = b.TakedownsB
	}
	takedown := math.Min(float64(max(winnerTakedowns, 0))*0.2, 1.5)
	control := math.Min(math.Abs(float64(b.ControlA-b.ControlB))/600, 1)
	groundStrikes := Dominance(b.GroundStrikesA, b.GroundStrikesB, 0.3, 0.5)
	bonus += takedown + control + groundStrikes

	k := c.t.BaseK * bonus
	change := Delta(k, score, Expected(ra, rb))
	return GroundResult{
		Result:             pair(ra, rb, change, -change),
		BonusFactor:        bonus,
		EffectiveK:         k,
		TakedownBonus:      takedown,
		ControlTimeBonus:   control,
		GroundStrikesBonus: groundStrikes,
	}
}
