package scoring

import "fmt"

// Score is one performance on one workout. Every field is optional: a nil
// pointer means the value was never logged, which is not the same as zero.
// A score missing reps is not a score of zero reps.
type Score struct {
	TimeSeconds     *int     `json:"time_seconds,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	LoadKg          *float64 `json:"load_kg,omitempty"`
	TiebreakSeconds *int     `json:"tiebreak_seconds,omitempty"`
}

// IncompleteScoreError reports a score that lacks the field its workout's
// discipline requires. Callers reject the write and keep stored state
// untouched.
type IncompleteScoreError struct {
	Discipline Discipline
	Field      string
}

func (e *IncompleteScoreError) Error() string {
	return fmt.Sprintf("incomplete score for %s: missing %s", e.Discipline, e.Field)
}

// UnknownDisciplineError reports a discipline value outside the known set.
type UnknownDisciplineError struct {
	Discipline Discipline
}

func (e *UnknownDisciplineError) Error() string {
	return fmt.Sprintf("unknown discipline %q", string(e.Discipline))
}

// OutOfRangeError reports a score field carrying a value outside its
// numeric domain.
type OutOfRangeError struct {
	Field string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("score field %s out of range", e.Field)
}

// Validate checks that s carries the one field discipline d requires.
// All other fields are optional and not inspected here. This runs on write
// paths only; comparison never re-validates.
//
// TIME_REPS requires reps but not a time: the elapsed time only breaks
// ties, and a score may be submitted without one (it then loses every
// tie-break, see Compare).
func Validate(d Discipline, s Score) error {
	switch d {
	case DisciplineTime:
		if s.TimeSeconds == nil {
			return &IncompleteScoreError{Discipline: d, Field: "time_seconds"}
		}
	case DisciplineReps, DisciplineTimeReps:
		if s.Reps == nil {
			return &IncompleteScoreError{Discipline: d, Field: "reps"}
		}
	case DisciplineLoad:
		if s.LoadKg == nil {
			return &IncompleteScoreError{Discipline: d, Field: "load_kg"}
		}
	default:
		return &UnknownDisciplineError{Discipline: d}
	}
	return nil
}

// CheckRanges verifies every present field sits inside its numeric domain:
// times, reps and tiebreak seconds must be non-negative, the load strictly
// positive. Absent fields pass; presence requirements are Validate's job.
func CheckRanges(s Score) error {
	if s.TimeSeconds != nil && *s.TimeSeconds < 0 {
		return &OutOfRangeError{Field: "time_seconds"}
	}
	if s.Reps != nil && *s.Reps < 0 {
		return &OutOfRangeError{Field: "reps"}
	}
	if s.LoadKg != nil && *s.LoadKg <= 0 {
		return &OutOfRangeError{Field: "load_kg"}
	}
	if s.TiebreakSeconds != nil && *s.TiebreakSeconds < 0 {
		return &OutOfRangeError{Field: "tiebreak_seconds"}
	}
	return nil
}
