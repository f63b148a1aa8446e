package models

import "testing"

// TestNormalizeDivision_Canonical verifies that canonical names pass through
// unchanged, confirming the map covers every division.
func TestNormalizeDivision_Canonical(t *testing.T) {
	for _, d := range []string{
		DivisionRxMen, DivisionRxWomen,
		DivisionScaledMen, DivisionScaledWomen,
		DivisionMastersMen, DivisionMastersWomen,
		DivisionTeenBoys, DivisionTeenGirls,
	} {
		got, known := NormalizeDivision(d)
		if !known {
			t.Errorf("NormalizeDivision(%q): expected known=true", d)
		}
		if got != d {
			t.Errorf("NormalizeDivision(%q) = %q, want %q", d, got, d)
		}
	}
}

// TestNormalizeDivision_Variants verifies common spellings from seed plans
// and query strings map to the canonical names.
func TestNormalizeDivision_Variants(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Rx Men", DivisionRxMen},
		{"RX-MEN", DivisionRxMen},
		{"men", DivisionRxMen},
		{"Individual Women", DivisionRxWomen},
		{"Scaled women", DivisionScaledWomen},
		{"  Masters Men  ", DivisionMastersMen},
		{"teen girls", DivisionTeenGirls},
	}
	for _, tc := range cases {
		got, known := NormalizeDivision(tc.input)
		if !known {
			t.Errorf("NormalizeDivision(%q): expected known=true", tc.input)
		}
		if got != tc.want {
			t.Errorf("NormalizeDivision(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// TestNormalizeDivision_Unknown verifies an unrecognized division comes back
// as-is with known=false, so callers can warn and keep the raw value.
func TestNormalizeDivision_Unknown(t *testing.T) {
	got, known := NormalizeDivision("adaptive_seated")
	if known {
		t.Error("expected known=false for unknown division")
	}
	if got != "adaptive_seated" {
		t.Errorf("expected original string returned, got %q", got)
	}
}

// TestNormalizeCompetition verifies spelling variants and the unknown
// passthrough for competition names.
func TestNormalizeCompetition(t *testing.T) {
	cases := []struct {
		input string
		want  string
		known bool
	}{
		{"open", CompetitionOpen, true},
		{"The Open", CompetitionOpen, true},
		{"Quarterfinals", CompetitionQuarterfinals, true},
		{"qf", CompetitionQuarterfinals, true},
		{"Semi-Finals", CompetitionSemifinals, true},
		{"THE GAMES", CompetitionGames, true},
		{"regionals", "regionals", false},
	}
	for _, tc := range cases {
		got, known := NormalizeCompetition(tc.input)
		if known != tc.known {
			t.Errorf("NormalizeCompetition(%q): known = %v, want %v", tc.input, known, tc.known)
		}
		if got != tc.want {
			t.Errorf("NormalizeCompetition(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
