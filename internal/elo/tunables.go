package elo

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tunables holds every constant of the rating model that has changed between
// revisions. The zero-config values are DefaultTunables.
type Tunables struct {
	BaseK                  float64 `yaml:"base_k"`
	InitialRating          float64 `yaml:"initial_rating"`
	ExperienceAdjustment   float64 `yaml:"experience_adjustment"`
	TitleFightMultiplier   float64 `yaml:"title_fight_multiplier"`
	WinTypeTitleMultiplier float64 `yaml:"win_type_title_multiplier"`
	StrikingMaxMultiplier  float64 `yaml:"striking_max_multiplier"`
	DoubleChampMultiplier  float64 `yaml:"double_champ_multiplier"`
	CategoryMaxLoss        float64 `yaml:"category_max_loss"`
	LeaguePrefix           string  `yaml:"league_prefix"`
}

func DefaultTunables() Tunables {
	return Tunables{
		BaseK:                  32,
		InitialRating:          1000,
		ExperienceAdjustment:   1,
		TitleFightMultiplier:   3,
		WinTypeTitleMultiplier: 1.5,
		StrikingMaxMultiplier:  6,
		DoubleChampMultiplier:  10,
		CategoryMaxLoss:        32,
		LeaguePrefix:           "UFC",
	}
}

// LoadTunables reads a YAML override file on top of the defaults. An empty
// path returns the defaults unchanged.
func LoadTunables(path string) (Tunables, error) {
	t := DefaultTunables()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tunables file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tunables: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

func (t Tunables) Validate() error {
	if t.BaseK <= 0 {
		return errors.New("base_k must be positive")
	}
	if t.InitialRating < 0 {
		return errors.New("initial_rating must not be negative")
	}
	if t.TitleFightMultiplier <= 0 || t.WinTypeTitleMultiplier <= 0 || t.StrikingMaxMultiplier <= 0 || t.DoubleChampMultiplier <= 0 {
		return errors.New("multipliers must be positive")
	}
	if t.CategoryMaxLoss < 0 {
		return errors.New("category_max_loss must not be negative")
	}
	return nil
}
