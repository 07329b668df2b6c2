package server

import (
	"math"
	"time"

	"ufc-elo/internal/domain"
	"ufc-elo/internal/service"
)

type RecalculateRequest struct{}

type RecalculateResponse struct {
	RunID      string `json:"run_id"`
	Processed  int    `json:"processed"`
	Skipped    int    `json:"skipped"`
	Fighters   int    `json:"fighters"`
	DurationMs int64  `json:"duration_ms"`
}

type RankingsRequest struct {
	Dimension string `json:"dimension"`
	Limit     int    `json:"limit"`
}

type RankingEntry struct {
	Rank             int    `json:"rank"`
	FighterName      string `json:"fighter_name"`
	Elo              int    `json:"elo"`
	FightCount       int    `json:"fight_count"`
	CurrentWinStreak int    `json:"current_win_streak"`
	HighestWinStreak int    `json:"highest_win_streak"`
}

type RankingsResponse struct {
	Dimension string         `json:"dimension"`
	Entries   []RankingEntry `json:"entries"`
}

type CombinedRankingsRequest struct {
	Limit int `json:"limit"`
}

type RecentFight struct {
	Date      string  `json:"date"`
	Opponent  string  `json:"opponent"`
	Result    string  `json:"result"`
	EloChange float64 `json:"elo_change"`
	Summary   string  `json:"summary"`
}

type CombinedRankingEntry struct {
	RankingEntry
	LastFiveFights []RecentFight `json:"last_five_fights"`
}

type CombinedRankingsResponse struct {
	Entries []CombinedRankingEntry `json:"entries"`
}

type FighterRequest struct {
	Name string `json:"name"`
}

type Profile struct {
	Height string  `json:"height"`
	Weight string  `json:"weight"`
	Reach  float64 `json:"reach"`
	Stance string  `json:"stance"`
	DOB    string  `json:"dob,omitempty"`
	SLpM   float64 `json:"slpm"`
	StrAcc string  `json:"str_acc"`
	SApM   float64 `json:"sapm"`
	StrDef string  `json:"str_def"`
	TDAvg  float64 `json:"td_avg"`
	TDAcc  string  `json:"td_acc"`
	TDDef  string  `json:"td_def"`
	SubAvg float64 `json:"sub_avg"`
}

type Ratings struct {
	Basic              int      `json:"basic"`
	Experience         int      `json:"experience"`
	TitleFight         int      `json:"title"`
	WinType            int      `json:"win_type"`
	Striking           int      `json:"striking"`
	Ground             int      `json:"ground"`
	Activity           int      `json:"activity"`
	WinStreak          int      `json:"win_streak"`
	Category           int      `json:"category"`
	Combined           int      `json:"combined"`
	Peak               int      `json:"peak"`
	PeakDate           string   `json:"peak_date,omitempty"`
	PeakWinStreak      int      `json:"peak_win_streak"`
	FightCount         int      `json:"fight_count"`
	TitleFightCount    int      `json:"title_fight_count"`
	CurrentWinStreak   int      `json:"current_win_streak"`
	HighestWinStreak   int      `json:"highest_win_streak"`
	TitleWeightClasses []string `json:"title_weight_classes"`
	LastUpdated        string   `json:"last_updated,omitempty"`
}

type HistoryPoint struct {
	Date string `json:"date"`
	Elo  int    `json:"elo"`
}

type Achievement struct {
	Date          string   `json:"date"`
	WeightClasses []string `json:"weight_classes"`
}

type FighterResponse struct {
	Name         string         `json:"name"`
	Profile      *Profile       `json:"profile,omitempty"`
	Ratings      Ratings        `json:"ratings"`
	History      []HistoryPoint `json:"history"`
	Achievements []Achievement  `json:"double_champ_achievements"`
}

type FightsRequest struct {
	Fighter string `json:"fighter"`
}

type Fight struct {
	Date          string `json:"date"`
	RedFighter    string `json:"red_fighter"`
	BlueFighter   string `json:"blue_fighter"`
	Winner        string `json:"winner"`
	FightType     string `json:"fight_type"`
	WinBy         string `json:"win_by"`
	LastRound     int    `json:"last_round"`
	LastRoundTime string `json:"last_round_time"`
}

type FightsResponse struct {
	Fights []Fight `json:"fights"`
}

func date(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return date(*t)
}

func rankingEntry(rank int, r *domain.EloRating, d domain.Dimension) RankingEntry {
	return RankingEntry{
		Rank:             rank,
		FighterName:      r.FighterName,
		Elo:              domain.Round(d.Value(r)),
		FightCount:       r.FightCount,
		CurrentWinStreak: r.CurrentWinStreak,
		HighestWinStreak: r.HighestWinStreak,
	}
}

func recentFights(fights []service.RecentFight) []RecentFight {
	out := make([]RecentFight, len(fights))
	for i, f := range fights {
		out[i] = RecentFight{
			Date:      date(f.Date),
			Opponent:  f.Opponent,
			Result:    f.Result,
			EloChange: math.Round(f.EloChange*100) / 100,
			Summary:   f.String(),
		}
	}
	return out
}

func ratings(r *domain.EloRating) Ratings {
	titles := r.TitleWeightClasses
	if titles == nil {
		titles = []string{}
	}
	return Ratings{
		Basic:              domain.Round(r.Basic),
		Experience:         domain.Round(r.Experience),
		TitleFight:         domain.Round(r.TitleFight),
		WinType:            domain.Round(r.WinType),
		Striking:           domain.Round(r.Striking),
		Ground:             domain.Round(r.Ground),
		Activity:           domain.Round(r.Activity),
		WinStreak:          domain.Round(r.WinStreak),
		Category:           domain.Round(r.Category),
		Combined:           domain.Round(r.Combined),
		Peak:               domain.Round(r.Peak),
		PeakDate:           optionalDate(r.PeakDate),
		PeakWinStreak:      r.PeakWinStreak,
		FightCount:         r.FightCount,
		TitleFightCount:    r.TitleFightCount,
		CurrentWinStreak:   r.CurrentWinStreak,
		HighestWinStreak:   r.HighestWinStreak,
		TitleWeightClasses: titles,
		LastUpdated:        optionalDate(r.LastUpdated),
	}
}

func profile(f *domain.Fighter) *Profile {
	if f == nil {
		return nil
	}
	return &Profile{
		Height: f.Height,
		Weight: f.Weight,
		Reach:  f.Reach,
		Stance: f.Stance,
		DOB:    optionalDate(f.DOB),
		SLpM:   f.SLpM,
		StrAcc: f.StrAcc,
		SApM:   f.SApM,
		StrDef: f.StrDef,
		TDAvg:  f.TDAvg,
		TDAcc:  f.TDAcc,
		TDDef:  f.TDDef,
		SubAvg: f.SubAvg,
	}
}

func fighterResponse(d *service.FighterDetail) *FighterResponse {
	resp := &FighterResponse{
		Name:         d.Rating.FighterName,
		Profile:      profile(d.Profile),
		Ratings:      ratings(d.Rating),
		History:      make([]HistoryPoint, len(d.Rating.History)),
		Achievements: make([]Achievement, len(d.Rating.DoubleChampAchievements)),
	}
	for i, h := range d.Rating.History {
		resp.History[i] = HistoryPoint{Date: date(h.Date), Elo: domain.Round(h.Elo)}
	}
	for i, a := range d.Rating.DoubleChampAchievements {
		resp.Achievements[i] = Achievement{Date: date(a.Date), WeightClasses: a.WeightClasses}
	}
	return resp
}

func fight(f domain.Fight) Fight {
	return Fight{
		Date:          date(f.Date),
		RedFighter:    f.RedFighter,
		BlueFighter:   f.BlueFighter,
		Winner:        f.Winner,
		FightType:     f.FightType,
		WinBy:         f.WinBy,
		LastRound:     f.LastRound,
		LastRoundTime: f.LastRoundTime,
	}
}
