package scoring

import (
	"errors"
	"testing"
)

// TestValidateCompleteScores verifies that a score carrying its discipline's
// required field passes validation, extra fields included or not.
func TestValidateCompleteScores(t *testing.T) {
	cases := []struct {
		discipline Discipline
		score      Score
	}{
		{DisciplineTime, Score{TimeSeconds: intPtr(750)}},
		{DisciplineReps, Score{Reps: intPtr(330)}},
		{DisciplineLoad, Score{LoadKg: floatPtr(142.5)}},
		{DisciplineTimeReps, Score{Reps: intPtr(100), TimeSeconds: intPtr(500)}},
		{DisciplineTime, Score{TimeSeconds: intPtr(750), Reps: intPtr(10)}},
	}
	for _, tc := range cases {
		if err := Validate(tc.discipline, tc.score); err != nil {
			t.Errorf("Validate(%s, %+v) = %v, want nil", tc.discipline, tc.score, err)
		}
	}
}

// TestValidateMissingField verifies the incomplete-score error carries the
// discipline and the name of the missing field.
func TestValidateMissingField(t *testing.T) {
	err := Validate(DisciplineTime, Score{Reps: intPtr(10)})
	if err == nil {
		t.Fatal("Validate(TIME, reps only) = nil, want error")
	}
	var incomplete *IncompleteScoreError
	if !errors.As(err, &incomplete) {
		t.Fatalf("error type = %T, want *IncompleteScoreError", err)
	}
	if incomplete.Discipline != DisciplineTime {
		t.Errorf("Discipline = %s, want TIME", incomplete.Discipline)
	}
	if incomplete.Field != "time_seconds" {
		t.Errorf("Field = %q, want time_seconds", incomplete.Field)
	}
}

// TestValidateMissingPerDiscipline verifies each discipline rejects an empty
// score and names its own required field.
func TestValidateMissingPerDiscipline(t *testing.T) {
	wantField := map[Discipline]string{
		DisciplineTime:     "time_seconds",
		DisciplineReps:     "reps",
		DisciplineLoad:     "load_kg",
		DisciplineTimeReps: "reps",
	}
	for d, field := range wantField {
		err := Validate(d, Score{})
		var incomplete *IncompleteScoreError
		if !errors.As(err, &incomplete) {
			t.Fatalf("%s: error = %v, want *IncompleteScoreError", d, err)
		}
		if incomplete.Field != field {
			t.Errorf("%s: missing field = %q, want %q", d, incomplete.Field, field)
		}
	}
}

// TestValidateTimeRepsWithoutTime verifies that TIME_REPS accepts a score
// with reps and no time. The time only breaks ties and is not required on
// submission.
func TestValidateTimeRepsWithoutTime(t *testing.T) {
	if err := Validate(DisciplineTimeReps, Score{Reps: intPtr(10)}); err != nil {
		t.Errorf("Validate(TIME_REPS, reps only) = %v, want nil", err)
	}
}

// TestValidateUnknownDiscipline verifies the error for a discipline outside
// the known set.
func TestValidateUnknownDiscipline(t *testing.T) {
	err := Validate(Discipline("DISTANCE"), Score{Reps: intPtr(10)})
	var unknown *UnknownDisciplineError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownDisciplineError", err)
	}
}

// TestCheckRanges verifies the numeric domains of each score field: zero
// times and reps pass, a zero or negative load does not.
func TestCheckRanges(t *testing.T) {
	cases := []struct {
		name      string
		score     Score
		wantField string
	}{
		{"empty", Score{}, ""},
		{"zero time", Score{TimeSeconds: intPtr(0)}, ""},
		{"zero reps", Score{Reps: intPtr(0)}, ""},
		{"zero tiebreak", Score{TiebreakSeconds: intPtr(0)}, ""},
		{"positive load", Score{LoadKg: floatPtr(0.5)}, ""},
		{"negative time", Score{TimeSeconds: intPtr(-1)}, "time_seconds"},
		{"negative reps", Score{Reps: intPtr(-5)}, "reps"},
		{"zero load", Score{LoadKg: floatPtr(0)}, "load_kg"},
		{"negative load", Score{LoadKg: floatPtr(-20)}, "load_kg"},
		{"negative tiebreak", Score{TiebreakSeconds: intPtr(-1)}, "tiebreak_seconds"},
	}
	for _, tc := range cases {
		err := CheckRanges(tc.score)
		if tc.wantField == "" {
			if err != nil {
				t.Errorf("%s: CheckRanges = %v, want nil", tc.name, err)
			}
			continue
		}
		var oor *OutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("%s: error = %v, want *OutOfRangeError", tc.name, err)
		}
		if oor.Field != tc.wantField {
			t.Errorf("%s: field = %q, want %q", tc.name, oor.Field, tc.wantField)
		}
	}
}

// TestParseDiscipline verifies case-insensitive parsing of discipline names.
func TestParseDiscipline(t *testing.T) {
	cases := []struct {
		raw  string
		want Discipline
		ok   bool
	}{
		{"TIME", DisciplineTime, true},
		{"time", DisciplineTime, true},
		{" Reps ", DisciplineReps, true},
		{"LOAD", DisciplineLoad, true},
		{"time_reps", DisciplineTimeReps, true},
		{"TIME_REPS", DisciplineTimeReps, true},
		{"DISTANCE", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseDiscipline(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseDiscipline(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

// TestDisciplineValid verifies Valid over known and unknown values.
func TestDisciplineValid(t *testing.T) {
	for _, d := range Disciplines {
		if !d.Valid() {
			t.Errorf("%s.Valid() = false, want true", d)
		}
	}
	if Discipline("DISTANCE").Valid() {
		t.Error(`Discipline("DISTANCE").Valid() = true, want false`)
	}
}
