package domain

import "fmt"

// Dimension names one of the eleven rating facets. Values match the ranking route names.
type Dimension string

const (
	DimensionBasic      Dimension = "basic"
	DimensionExperience Dimension = "experience"
	DimensionTitleFight Dimension = "title"
	DimensionWinType    Dimension = "winType"
	DimensionStriking   Dimension = "striking"
	DimensionGround     Dimension = "ground"
	DimensionActivity   Dimension = "activity"
	DimensionWinStreak  Dimension = "winStreak"
	DimensionCategory   Dimension = "category"
	DimensionCombined   Dimension = "combined"
	DimensionPeak       Dimension = "peak"
)

var Dimensions = []Dimension{
	DimensionBasic,
	DimensionExperience,
	DimensionTitleFight,
	DimensionWinType,
	DimensionStriking,
	DimensionGround,
	DimensionActivity,
	DimensionWinStreak,
	DimensionCategory,
	DimensionCombined,
	DimensionPeak,
}

func ParseDimension(s string) (Dimension, error) {
	for _, d := range Dimensions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown rating dimension %q", s)
}

// Value reads the dimension's current rating from r.
func (d Dimension) Value(r *EloRating) float64 {
	switch d {
	case DimensionBasic:
		return r.Basic
	case DimensionExperience:
		return r.Experience
	case DimensionTitleFight:
		return r.TitleFight
	case DimensionWinType:
		return r.WinType
	case DimensionStriking:
		return r.Striking
	case DimensionGround:
		return r.Ground
	case DimensionActivity:
		return r.Activity
	case DimensionWinStreak:
		return r.WinStreak
	case DimensionCategory:
		return r.Category
	case DimensionCombined:
		return r.Combined
	case DimensionPeak:
		return r.Peak
	}
	return 0
}
