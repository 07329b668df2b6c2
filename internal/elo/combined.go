package elo

import (
	"time"

	"ufc-elo/internal/domain"
)

// CombinedWeights weights each dimension in the composite average.
var CombinedWeights = []struct {
	Dimension domain.Dimension
	Weight    float64
}{
	{domain.DimensionBasic, 0.8},
	{domain.DimensionExperience, 0.8},
	{domain.DimensionTitleFight, 1.4},
	{domain.DimensionActivity, 1.2},
	{domain.DimensionWinType, 1.4},
	{domain.DimensionStriking, 1.2},
	{domain.DimensionGround, 1.2},
	{domain.DimensionWinStreak, 1.4},
	{domain.DimensionCategory, 1.4},
}

// WeightedAverage blends r's dimensions. A zero or non-numeric dimension is
// left out of both sums; with nothing left the stored combined value is used.
func (c *Calculator) WeightedAverage(r *domain.EloRating) float64 {
	var sum, weights float64
	for _, w := range CombinedWeights {
		v := w.Dimension.Value(r)
		if v == 0 || !isFinite(v) {
			continue
		}
		sum += v * w.Weight
		weights += w.Weight
	}
	if weights == 0 {
		return finite(r.Combined, c.t.InitialRating)
	}
	return sum / weights
}

type CombinedResult struct {
	Result
	AverageA float64
	AverageB float64
}

// Combined plays the two weighted averages against each other with the base
// K. a and b are the records as they stood before the bout.
func (c *Calculator) Combined(a, b *domain.EloRating, score float64) CombinedResult {
	avgA, avgB := c.WeightedAverage(a), c.WeightedAverage(b)
	avgA, avgB, score = c.inputs(avgA, avgB, score)
	change := Delta(c.t.BaseK, score, Expected(avgA, avgB))
	return CombinedResult{Result: pair(avgA, avgB, change, -change), AverageA: avgA, AverageB: avgB}
}

type PeakResult struct {
	Peak      float64
	Date      time.Time
	WinStreak int
}

// Peak reports a new peak only when combined strictly exceeds the current one.
func Peak(current, combined float64, date time.Time, winStreak int) (PeakResult, bool) {
	if !isFinite(combined) || (isFinite(current) && combined <= current) {
		return PeakResult{}, false
	}
	return PeakResult{Peak: combined, Date: date, WinStreak: winStreak}, true
}
