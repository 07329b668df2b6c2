package domain

import (
	"math"
	"time"
)

type Fighter struct {
	Name      string
	Height    string
	Weight    string
	Reach     float64
	Stance    string
	DOB       *time.Time
	SLpM      float64 // significant strikes landed per minute
	StrAcc    string
	SApM      float64 // significant strikes absorbed per minute
	StrDef    string
	TDAvg     float64 // takedowns per 15 minutes
	TDAcc     string
	TDDef     string
	SubAvg    float64 // submission attempts per 15 minutes
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fight is one bout as recorded by the stats feed. Red is side A, blue is side B.
type Fight struct {
	ID            int64
	RedFighter    string
	BlueFighter   string
	Date          time.Time
	Winner        string // a fighter name, or anything else for draw / no contest
	FightType     string // "UFC Lightweight Title Bout"
	WinBy         string // "KO/TKO", "Submission", "Decision - Unanimous", ...
	LastRound     int
	LastRoundTime string // "MM:SS"
	RedKD         int
	BlueKD        int
	RedSigStr     string // "X of Y"
	BlueSigStr    string
	RedTotalStr   string
	BlueTotalStr  string
	RedTD         string
	BlueTD        string
	RedCtrl       string // "MM:SS"
	BlueCtrl      string
	RedGround     string
	BlueGround    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (f Fight) Involves(name string) bool {
	return f.RedFighter == name || f.BlueFighter == name
}

// Opponent returns the other side of the bout, or "" if name did not fight.
func (f Fight) Opponent(name string) string {
	switch name {
	case f.RedFighter:
		return f.BlueFighter
	case f.BlueFighter:
		return f.RedFighter
	}
	return ""
}

type FightStats struct {
	TotalFights    int
	UniqueFighters int
	AverageFights  float64
}

type HistoryEntry struct {
	ID   string // nanoid
	Elo  float64
	Date time.Time
}

type Achievement struct {
	ID            string // nanoid
	Date          time.Time
	WeightClasses []string
}

// EloRating is the per-fighter rating record rebuilt by every recalculation.
type EloRating struct {
	FighterName string

	Basic      float64
	Experience float64
	TitleFight float64
	WinType    float64
	Striking   float64
	Ground     float64
	Activity   float64
	WinStreak  float64
	Category   float64
	Combined   float64
	Peak       float64

	FightCount       int
	TitleFightCount  int
	CurrentWinStreak int
	HighestWinStreak int

	PeakDate      *time.Time
	PeakWinStreak int

	History                 []HistoryEntry
	TitleWeightClasses      []string
	DoubleChampAchievements []Achievement

	LastUpdated *time.Time
}

// NewEloRating seeds a record with every dimension at initial and all counters at zero.
func NewEloRating(name string, initial float64) *EloRating {
	return &EloRating{
		FighterName: name,
		Basic:       initial,
		Experience:  initial,
		TitleFight:  initial,
		WinType:     initial,
		Striking:    initial,
		Ground:      initial,
		Activity:    initial,
		WinStreak:   initial,
		Category:    initial,
		Combined:    initial,
		Peak:        initial,
	}
}

// Round is the presentation rounding applied to every rating leaving the service.
func Round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
