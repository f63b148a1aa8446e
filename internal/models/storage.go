package models

import (
	"time"

	"github.com/CatoAkay/cf-benchmark/internal/scoring"
	"github.com/google/uuid"
)

// UserRow is a row of the users table.
type UserRow struct {
	ID          int       `json:"id"`
	Login       string    `json:"login"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	LastSeen    time.Time `json:"last_seen"`
}

// WorkoutRow is a row of the workouts table. The (season, competition,
// division, slug) tuple identifies a workout uniquely; Discipline is an
// immutable property set when the workout is created.
type WorkoutRow struct {
	ID          uuid.UUID          `json:"id"`
	Season      int                `json:"season"`
	Competition string             `json:"competition"`
	Division    string             `json:"division"`
	Slug        string             `json:"slug"`
	Name        string             `json:"name"`
	Discipline  scoring.Discipline `json:"discipline"`
	Description string             `json:"description,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// BenchmarkRow is a row of the benchmark_scores table: one reference
// athlete's score at one externally assigned rank of a workout's Top 40
// population. Score fields are optional; which ones are set depends on the
// workout's discipline.
type BenchmarkRow struct {
	WorkoutID       uuid.UUID `json:"workout_id"`
	Rank            int       `json:"rank"`
	Athlete         string    `json:"athlete"`
	TimeSeconds     *int      `json:"time_seconds,omitempty"`
	Reps            *int      `json:"reps,omitempty"`
	LoadKg          *float64  `json:"load_kg,omitempty"`
	TiebreakSeconds *int      `json:"tiebreak_seconds,omitempty"`
}

// Score assembles the scoring value carried by this benchmark row.
func (r BenchmarkRow) Score() scoring.Score {
	return scoring.Score{
		TimeSeconds:     r.TimeSeconds,
		Reps:            r.Reps,
		LoadKg:          r.LoadKg,
		TiebreakSeconds: r.TiebreakSeconds,
	}
}

// ResultRow is a row of the user_results table: one athlete's logged score
// for one workout. Submitting again for the same workout replaces the row.
type ResultRow struct {
	UserID          int       `json:"user_id"`
	WorkoutID       uuid.UUID `json:"workout_id"`
	TimeSeconds     *int      `json:"time_seconds,omitempty"`
	Reps            *int      `json:"reps,omitempty"`
	LoadKg          *float64  `json:"load_kg,omitempty"`
	TiebreakSeconds *int      `json:"tiebreak_seconds,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Score assembles the scoring value carried by this result row.
func (r ResultRow) Score() scoring.Score {
	return scoring.Score{
		TimeSeconds:     r.TimeSeconds,
		Reps:            r.Reps,
		LoadKg:          r.LoadKg,
		TiebreakSeconds: r.TiebreakSeconds,
	}
}

// FromScore copies the fields of a scoring value into the row.
func (r *ResultRow) FromScore(s scoring.Score) {
	r.TimeSeconds = s.TimeSeconds
	r.Reps = s.Reps
	r.LoadKg = s.LoadKg
	r.TiebreakSeconds = s.TiebreakSeconds
}
