// Package scoring implements the benchmark comparison rules: validating a
// raw performance against a workout's scoring discipline, ordering two
// performances under that discipline, merging a performance into a fixed
// benchmark population to compute rank and points, and aggregating points
// across the workouts of a season.
package scoring

import "strings"

// Discipline selects the scoring rule family for a workout. It is an
// immutable property of the workout and decides which Score fields carry
// meaning and how two scores are ordered.
type Discipline string

const (
	// DisciplineTime ranks ascending by elapsed seconds.
	DisciplineTime Discipline = "TIME"
	// DisciplineReps ranks descending by repetitions completed.
	DisciplineReps Discipline = "REPS"
	// DisciplineLoad ranks descending by load lifted in kilograms.
	DisciplineLoad Discipline = "LOAD"
	// DisciplineTimeReps ranks descending by repetitions, breaking exact
	// ties ascending by elapsed seconds.
	DisciplineTimeReps Discipline = "TIME_REPS"
)

// Disciplines lists every known discipline in a stable order.
var Disciplines = []Discipline{DisciplineTime, DisciplineReps, DisciplineLoad, DisciplineTimeReps}

// ParseDiscipline maps a raw discipline string, case-insensitively, to its
// canonical value. Returns the discipline and true if recognized, or the
// zero Discipline and false if unknown.
func ParseDiscipline(raw string) (Discipline, bool) {
	switch Discipline(strings.ToUpper(strings.TrimSpace(raw))) {
	case DisciplineTime:
		return DisciplineTime, true
	case DisciplineReps:
		return DisciplineReps, true
	case DisciplineLoad:
		return DisciplineLoad, true
	case DisciplineTimeReps:
		return DisciplineTimeReps, true
	}
	return "", false
}

// Valid reports whether d is one of the known disciplines.
func (d Discipline) Valid() bool {
	switch d {
	case DisciplineTime, DisciplineReps, DisciplineLoad, DisciplineTimeReps:
		return true
	}
	return false
}
