package scoring

import (
	"cmp"
	"fmt"
	"math"
)

// worstTime is the sentinel for an absent elapsed time. Under TIME_REPS a
// score with reps but no logged time must lose any tie-break against the
// same reps with a recorded time, so absence ranks below every real time.
const worstTime = math.MaxInt

// Compare orders two scores of the same discipline. Negative means a ranks
// better than b, zero means tie, positive means b ranks better. Only
// same-discipline scores may be compared; Compare panics on a discipline
// outside the known set.
//
// Absent fields are normalized to the worst value for their discipline
// before ordering, so an incomplete score never outranks a complete one.
func Compare(d Discipline, a, b Score) int {
	switch d {
	case DisciplineTime:
		// Ascending: lower time wins.
		return cmp.Compare(timeOf(a), timeOf(b))
	case DisciplineReps:
		// Descending: higher reps win.
		return cmp.Compare(repsOf(b), repsOf(a))
	case DisciplineLoad:
		// Descending: higher load wins.
		return cmp.Compare(loadOf(b), loadOf(a))
	case DisciplineTimeReps:
		// Descending by reps, then ascending by time on an exact tie.
		if c := cmp.Compare(repsOf(b), repsOf(a)); c != 0 {
			return c
		}
		return cmp.Compare(timeOf(a), timeOf(b))
	}
	panic(fmt.Sprintf("scoring: compare on unknown discipline %q", string(d)))
}

func timeOf(s Score) int {
	if s.TimeSeconds == nil {
		return worstTime
	}
	return *s.TimeSeconds
}

func repsOf(s Score) int {
	if s.Reps == nil {
		return -1
	}
	return *s.Reps
}

func loadOf(s Score) float64 {
	if s.LoadKg == nil {
		return 0
	}
	return *s.LoadKg
}
