package models

import "strings"

// Canonical competition names within a season.
const (
	CompetitionOpen          = "open"
	CompetitionQuarterfinals = "quarterfinals"
	CompetitionSemifinals    = "semifinals"
	CompetitionGames         = "games"
)

// Canonical division names. Benchmark populations are seeded per division,
// so rows only line up when every writer uses the same spelling.
const (
	DivisionRxMen        = "rx_men"
	DivisionRxWomen      = "rx_women"
	DivisionScaledMen    = "scaled_men"
	DivisionScaledWomen  = "scaled_women"
	DivisionMastersMen   = "masters_men"
	DivisionMastersWomen = "masters_women"
	DivisionTeenBoys     = "teen_boys"
	DivisionTeenGirls    = "teen_girls"
)

// competitionMap maps lowercased spellings seen in seed plans, result files
// and query strings to their canonical competition names.
var competitionMap = map[string]string{
	"open":           CompetitionOpen,
	"the open":       CompetitionOpen,
	"quarterfinals":  CompetitionQuarterfinals,
	"quarterfinal":   CompetitionQuarterfinals,
	"quarter-finals": CompetitionQuarterfinals,
	"qf":             CompetitionQuarterfinals,
	"semifinals":     CompetitionSemifinals,
	"semifinal":      CompetitionSemifinals,
	"semi-finals":    CompetitionSemifinals,
	"games":          CompetitionGames,
	"the games":      CompetitionGames,
}

// divisionMap maps lowercased division spellings to their canonical names.
var divisionMap = map[string]string{
	"rx_men":         DivisionRxMen,
	"rx men":         DivisionRxMen,
	"rx-men":         DivisionRxMen,
	"men rx":         DivisionRxMen,
	"men":            DivisionRxMen,
	"individual men": DivisionRxMen,

	"rx_women":         DivisionRxWomen,
	"rx women":         DivisionRxWomen,
	"rx-women":         DivisionRxWomen,
	"women rx":         DivisionRxWomen,
	"women":            DivisionRxWomen,
	"individual women": DivisionRxWomen,

	"scaled_men":   DivisionScaledMen,
	"scaled men":   DivisionScaledMen,
	"scaled-men":   DivisionScaledMen,
	"men scaled":   DivisionScaledMen,
	"scaled_women": DivisionScaledWomen,
	"scaled women": DivisionScaledWomen,
	"scaled-women": DivisionScaledWomen,
	"women scaled": DivisionScaledWomen,

	"masters_men":   DivisionMastersMen,
	"masters men":   DivisionMastersMen,
	"masters-men":   DivisionMastersMen,
	"men masters":   DivisionMastersMen,
	"masters_women": DivisionMastersWomen,
	"masters women": DivisionMastersWomen,
	"masters-women": DivisionMastersWomen,
	"women masters": DivisionMastersWomen,

	"teen_boys":  DivisionTeenBoys,
	"teen boys":  DivisionTeenBoys,
	"teen-boys":  DivisionTeenBoys,
	"boys":       DivisionTeenBoys,
	"teen_girls": DivisionTeenGirls,
	"teen girls": DivisionTeenGirls,
	"teen-girls": DivisionTeenGirls,
	"girls":      DivisionTeenGirls,
}

// NormalizeCompetition maps a competition spelling to its canonical name.
// Returns the canonical name and true if recognized, or the original string
// and false if unknown.
func NormalizeCompetition(raw string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := competitionMap[lower]; ok {
		return canonical, true
	}
	return raw, false
}

// NormalizeDivision maps a division spelling to its canonical name. Returns
// the canonical name and true if recognized, or the original string and
// false if unknown.
func NormalizeDivision(raw string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := divisionMap[lower]; ok {
		return canonical, true
	}
	return raw, false
}
