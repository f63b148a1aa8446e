package submit

import (
	"strings"
	"testing"
)

const validResultYAML = `
athlete: alice
display_name: Alice
season: 2025
competition: The Open
division: Rx Women
results:
  - workout: "25-1"
    reps: 182
  - workout: "25-2"
    time_seconds: 714
    tiebreak_seconds: 95
`

// TestParseResultFile verifies a result file parses and scope names are
// normalized.
func TestParseResultFile(t *testing.T) {
	rf, err := ParseResultFile([]byte(validResultYAML))
	if err != nil {
		t.Fatalf("ParseResultFile() error: %v", err)
	}

	if rf.Athlete != "alice" {
		t.Errorf("athlete = %q, want %q", rf.Athlete, "alice")
	}
	if rf.Competition != "open" {
		t.Errorf("competition = %q, want %q", rf.Competition, "open")
	}
	if rf.Division != "rx_women" {
		t.Errorf("division = %q, want %q", rf.Division, "rx_women")
	}
	if len(rf.Results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(rf.Results))
	}

	first := rf.Results[0].Score()
	if first.Reps == nil || *first.Reps != 182 {
		t.Errorf("results[0] reps = %v, want 182", first.Reps)
	}
	if first.TimeSeconds != nil {
		t.Errorf("results[0] time = %v, want absent", first.TimeSeconds)
	}
	second := rf.Results[1].Score()
	if second.TiebreakSeconds == nil || *second.TiebreakSeconds != 95 {
		t.Errorf("results[1] tiebreak = %v, want 95", second.TiebreakSeconds)
	}
}

// TestParseResultFileErrors covers the validation failures.
func TestParseResultFileErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{name: "not yaml", yaml: "{{nope", want: "parsing"},
		{
			name: "missing season",
			yaml: "competition: open\ndivision: rx_men\nresults:\n  - workout: a\n    reps: 1\n",
			want: "season",
		},
		{
			name: "unknown competition",
			yaml: "season: 2025\ncompetition: regionals\ndivision: rx_men\nresults:\n  - workout: a\n    reps: 1\n",
			want: "competition",
		},
		{
			name: "unknown division",
			yaml: "season: 2025\ncompetition: open\ndivision: elite\nresults:\n  - workout: a\n    reps: 1\n",
			want: "division",
		},
		{
			name: "no results",
			yaml: "season: 2025\ncompetition: open\ndivision: rx_men\n",
			want: "no results",
		},
		{
			name: "missing slug",
			yaml: "season: 2025\ncompetition: open\ndivision: rx_men\nresults:\n  - reps: 1\n",
			want: "slug",
		},
		{
			name: "negative reps",
			yaml: "season: 2025\ncompetition: open\ndivision: rx_men\nresults:\n  - workout: a\n    reps: -3\n",
			want: "reps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResultFile([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want mention of %q", err, tt.want)
			}
		})
	}
}
