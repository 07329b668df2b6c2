package normalize

import "strings"

type FinishMethod int

const (
	FinishOther FinishMethod = iota
	FinishKOTKO
	FinishSubmission
	FinishUnanimousDecision
)

func (m FinishMethod) String() string {
	switch m {
	case FinishKOTKO:
		return "KO/TKO"
	case FinishSubmission:
		return "Submission"
	case FinishUnanimousDecision:
		return "Decision - Unanimous"
	}
	return "Other"
}

// Method classifies a win_by label. Matching is exact and case-sensitive;
// both spellings of the unanimous decision used by the feed are accepted.
func Method(winBy string) FinishMethod {
	switch strings.TrimSpace(winBy) {
	case "KO/TKO":
		return FinishKOTKO
	case "Submission":
		return FinishSubmission
	case "Decision - Unanimous", "Unanimous Decision":
		return FinishUnanimousDecision
	}
	return FinishOther
}

// IsTitleFight reports whether the fight type mentions a title, in any case.
func IsTitleFight(fightType string) bool {
	return strings.Contains(strings.ToLower(fightType), "title")
}

// IsOfficialTitleBout requires the league prefix (case-sensitive) and the
// phrase "title bout" (case-insensitive).
func IsOfficialTitleBout(fightType, leaguePrefix string) bool {
	if leaguePrefix == "" || !strings.HasPrefix(fightType, leaguePrefix) {
		return false
	}
	return strings.Contains(strings.ToLower(fightType), "title bout")
}

// WeightClasses is ordered so that longer names are tried before the names
// they contain ("Light Heavyweight" before "Heavyweight").
var WeightClasses = []string{
	"Women's Strawweight",
	"Women's Flyweight",
	"Women's Bantamweight",
	"Women's Featherweight",
	"Light Heavyweight",
	"Super Heavyweight",
	"Strawweight",
	"Flyweight",
	"Bantamweight",
	"Featherweight",
	"Lightweight",
	"Welterweight",
	"Middleweight",
	"Heavyweight",
	"Catch Weight",
	"Open Weight",
}

// WeightClass returns the first known weight class contained in the fight type, or "".
func WeightClass(fightType string) string {
	for _, wc := range WeightClasses {
		if strings.Contains(fightType, wc) {
			return wc
		}
	}
	return ""
}
