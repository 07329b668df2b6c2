package elo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ufc-elo/internal/domain"
)

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func win(date time.Time, winner, loser string) domain.Fight {
	return domain.Fight{Date: date, RedFighter: winner, BlueFighter: loser, Winner: winner}
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 0, MonthsBetween(testDate(2020, 1, 31), testDate(2020, 2, 15)))
	assert.Equal(t, 1, MonthsBetween(testDate(2020, 1, 15), testDate(2020, 2, 15)))
	assert.Equal(t, 17, MonthsBetween(testDate(2020, 1, 10), testDate(2021, 6, 10)))
	assert.Equal(t, 11, MonthsBetween(testDate(2019, 12, 20), testDate(2020, 12, 1)))
}

func TestGapBonus(t *testing.T) {
	assert.Equal(t, 3.0, GapBonus(0))
	assert.Equal(t, 2.5, GapBonus(1))
	assert.Equal(t, 2.0, GapBonus(2))
	assert.Equal(t, 1.5, GapBonus(5))
	assert.Equal(t, 1.1, GapBonus(11))
	assert.Equal(t, 1.0, GapBonus(12))
	assert.Equal(t, 1.0, GapBonus(40))
}

func TestActivityBonus(t *testing.T) {
	assert.Equal(t, 1.0, ActivityBonus(nil))
	assert.Equal(t, 1.0, ActivityBonus([]time.Time{testDate(2020, 1, 1)}))
	assert.Equal(t, 2.0, ActivityBonus([]time.Time{testDate(2020, 1, 1), testDate(2020, 1, 15)}))
	assert.Equal(t, 1.0, ActivityBonus([]time.Time{testDate(2020, 1, 10), testDate(2021, 6, 10)}))

	// unordered input is sorted first: gaps of 4 and 13 months
	assert.InDelta(t, 1.25, ActivityBonus([]time.Time{testDate(2021, 6, 1), testDate(2020, 1, 1), testDate(2020, 5, 1)}), eps)

	start := testDate(2010, 1, 1)
	for _, gapDays := range []int{0, 3, 20, 45, 75, 100, 200, 400, 900} {
		dates := []time.Time{start}
		for i := 1; i < 6; i++ {
			dates = append(dates, start.AddDate(0, 0, i*gapDays))
		}
		bonus := ActivityBonus(dates)
		assert.GreaterOrEqual(t, bonus, 1.0)
		assert.LessOrEqual(t, bonus, 2.0)
	}
}

func TestActivity(t *testing.T) {
	c := newCalc()
	active := []time.Time{testDate(2020, 1, 1), testDate(2020, 1, 15)}

	res := c.Activity(1000, 1000, 1, active, active)
	assert.Equal(t, 2.0, res.BonusA)
	assert.Equal(t, 1.0, res.BonusB, "loser keeps the base K")
	assert.Equal(t, 64.0, res.KA)
	assert.Equal(t, 1032.0, res.NewA)
	assert.Equal(t, 984.0, res.NewB)

	draw := c.Activity(1000, 1000, 0.5, active, active)
	assert.Equal(t, 1.0, draw.BonusA)
	assert.Equal(t, 1.0, draw.BonusB)
}

func TestCareerDates(t *testing.T) {
	fights := []domain.Fight{
		win(testDate(2019, 1, 1), "A", "B"),
		win(testDate(2019, 6, 1), "C", "D"),
		win(testDate(2020, 1, 1), "B", "A"),
		win(testDate(2021, 1, 1), "A", "C"),
	}
	dates := CareerDates(fights, "A", testDate(2020, 1, 1))
	assert.Equal(t, []time.Time{testDate(2019, 1, 1), testDate(2020, 1, 1)}, dates)
}

func TestPriorWinStreak(t *testing.T) {
	fights := []domain.Fight{
		win(testDate(2019, 1, 1), "A", "X"),
		win(testDate(2019, 3, 1), "A", "Y"),
		win(testDate(2019, 6, 1), "Z", "A"),
		win(testDate(2019, 9, 1), "A", "W"),
		win(testDate(2020, 1, 1), "A", "V"),
	}
	assert.Equal(t, 0, PriorWinStreak(fights, "A", testDate(2019, 1, 1)))
	assert.Equal(t, 2, PriorWinStreak(fights, "A", testDate(2019, 6, 1)))
	assert.Equal(t, 0, PriorWinStreak(fights, "A", testDate(2019, 9, 1)))
	assert.Equal(t, 1, PriorWinStreak(fights, "A", testDate(2020, 1, 1)))
	assert.Equal(t, 2, PriorWinStreak(fights, "A", testDate(2020, 2, 1)))
	assert.Equal(t, 0, PriorWinStreak(fights, "nobody", testDate(2020, 2, 1)))
}

func TestStreakBonus(t *testing.T) {
	cases := map[int]float64{0: 0, 4: 0.8, 5: 1, 9: 2.2, 10: 2.5, 14: 4.1, 15: 4.5, 20: 7}
	for streak, want := range cases {
		assert.InDelta(t, want, StreakBonus(streak), eps, "streak %d", streak)
	}
}

func TestWinStreak(t *testing.T) {
	c := newCalc()

	res := c.WinStreak(1000, 1000, 1, 5, 0, 5, 2)
	assert.Equal(t, 64.0, res.KA)
	assert.Equal(t, 32.0, res.KB)
	assert.Equal(t, 1032.0, res.NewA)
	assert.Equal(t, 984.0, res.NewB)
	assert.Equal(t, 6, res.NewCurrentStreakA)
	assert.Equal(t, 0, res.NewCurrentStreakB)

	draw := c.WinStreak(1000, 1000, 0.5, 0, 0, 3, 4)
	assert.Equal(t, 0, draw.NewCurrentStreakA)
	assert.Equal(t, 0, draw.NewCurrentStreakB)
}

func TestCategory(t *testing.T) {
	c := newCalc()

	first := c.Category(1000, 1000, 1, "UFC Lightweight Title Bout", nil, nil)
	assert.True(t, first.Official)
	assert.False(t, first.IsDoubleChampA)
	assert.Equal(t, []string{"Lightweight"}, first.TitlesA)
	assert.Empty(t, first.TitlesB)
	assert.Equal(t, 1016.0, first.NewA)

	held := []string{"Lightweight"}
	second := c.Category(1000, 1000, 1, "UFC Featherweight Title Bout", held, nil)
	assert.True(t, second.IsDoubleChampA)
	assert.False(t, second.IsDoubleChampB)
	assert.Equal(t, 320.0, second.KA)
	assert.Equal(t, 1160.0, second.NewA)
	assert.Equal(t, 984.0, second.NewB)
	assert.Equal(t, []string{"Lightweight", "Featherweight"}, second.TitlesA)
	assert.Equal(t, []string{"Lightweight"}, held, "input set is not modified")

	defended := c.Category(1000, 1000, 1, "UFC Lightweight Title Bout", held, nil)
	assert.False(t, defended.IsDoubleChampA)
	assert.Equal(t, []string{"Lightweight"}, defended.TitlesA)

	blueWins := c.Category(1000, 1000, 0, "UFC Welterweight Title Bout", held, []string{"Middleweight"})
	assert.True(t, blueWins.IsDoubleChampB)
	assert.Equal(t, []string{"Middleweight", "Welterweight"}, blueWins.TitlesB)
	assert.Equal(t, []string{"Lightweight"}, blueWins.TitlesA)

	unofficial := c.Category(1000, 1000, 1, "Featherweight Title Bout", held, nil)
	assert.False(t, unofficial.Official)
	assert.False(t, unofficial.IsDoubleChampA)

	tun := DefaultTunables()
	tun.CategoryMaxLoss = 10
	clamped := New(tun).Category(1000, 1000, 1, "UFC Lightweight Bout", nil, nil)
	assert.Equal(t, -10.0, clamped.ChangeB)
	assert.Equal(t, 990.0, clamped.NewB)
}
