package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOf(t *testing.T) {
	cases := []struct {
		in        string
		landed    int
		attempted int
	}{
		{"12 of 34", 12, 34},
		{" 3 of 5 ", 3, 5},
		{"0 of 0", 0, 0},
		{"7", 7, 0},
		{"", 0, 0},
		{"--", 0, 0},
		{"x of 9", 0, 9},
		{"-4 of 2", 0, 2},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			landed, attempted := ParseOf(tc.in)
			assert.Equal(t, tc.landed, landed)
			assert.Equal(t, tc.attempted, attempted)
			assert.Equal(t, tc.landed, Landed(tc.in))
		})
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, 2, Count("2"))
	assert.Equal(t, 1, Count("1.0"))
	assert.Equal(t, 0, Count("NaN"))
	assert.Equal(t, 0, Count("abc"))
	assert.Equal(t, 0, Count("-1"))
}

func TestClockSeconds(t *testing.T) {
	assert.Equal(t, 135, ClockSeconds("2:15"))
	assert.Equal(t, 25, ClockSeconds("0:25"))
	assert.Equal(t, 300, ClockSeconds("5:xx"))
	assert.Equal(t, 15, ClockSeconds("--:15"))
	assert.Equal(t, 0, ClockSeconds(""))
	assert.Equal(t, 0, ClockSeconds("garbage"))
}

func TestParseClock(t *testing.T) {
	s, ok := ParseClock("4:59")
	assert.True(t, ok)
	assert.Equal(t, 299, s)

	for _, bad := range []string{"", "25", "a:10", "1:b", "-1:00"} {
		_, ok := ParseClock(bad)
		assert.False(t, ok, bad)
	}
}

func TestMethod(t *testing.T) {
	assert.Equal(t, FinishKOTKO, Method("KO/TKO"))
	assert.Equal(t, FinishSubmission, Method("Submission"))
	assert.Equal(t, FinishUnanimousDecision, Method("Decision - Unanimous"))
	assert.Equal(t, FinishUnanimousDecision, Method("Unanimous Decision"))
	assert.Equal(t, FinishOther, Method("Decision - Split"))
	assert.Equal(t, FinishOther, Method("ko/tko"))
	assert.Equal(t, FinishOther, Method("TKO - Doctor's Stoppage"))
}

func TestIsTitleFight(t *testing.T) {
	assert.True(t, IsTitleFight("UFC Lightweight Title Bout"))
	assert.True(t, IsTitleFight("UFC Interim Welterweight TITLE Bout"))
	assert.False(t, IsTitleFight("UFC Lightweight Bout"))
	assert.False(t, IsTitleFight(""))
}

func TestIsOfficialTitleBout(t *testing.T) {
	assert.True(t, IsOfficialTitleBout("UFC Lightweight Title Bout", "UFC"))
	assert.True(t, IsOfficialTitleBout("UFC Lightweight title bout", "UFC"))
	assert.False(t, IsOfficialTitleBout("Lightweight Title Bout", "UFC"))
	assert.False(t, IsOfficialTitleBout("ufc Lightweight Title Bout", "UFC"))
	assert.False(t, IsOfficialTitleBout("UFC Ultimate Fighter Title Tournament", "UFC"))
	assert.False(t, IsOfficialTitleBout("UFC Lightweight Title Bout", ""))
}

func TestWeightClass(t *testing.T) {
	assert.Equal(t, "Light Heavyweight", WeightClass("UFC Light Heavyweight Title Bout"))
	assert.Equal(t, "Heavyweight", WeightClass("UFC Heavyweight Title Bout"))
	assert.Equal(t, "Women's Flyweight", WeightClass("UFC Women's Flyweight Title Bout"))
	assert.Equal(t, "Flyweight", WeightClass("UFC Flyweight Bout"))
	assert.Equal(t, "", WeightClass("UFC Superfight Championship"))
}
