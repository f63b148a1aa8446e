package scoring

import "github.com/google/uuid"

// SeasonWorkout pairs one workout in a season scope with the inputs needed
// to rank one athlete on it. UserScore is nil when the athlete never logged
// a result for the workout.
type SeasonWorkout struct {
	WorkoutID  uuid.UUID
	Discipline Discipline
	UserScore  *Score
	Benchmark  []Score
}

// WorkoutPoints is the per-workout line of a season summary.
type WorkoutPoints struct {
	WorkoutID   uuid.UUID `json:"workout_id"`
	BeatenCount int       `json:"beaten_count"`
	Rank        int       `json:"rank"`
	Points      int       `json:"points"`
}

// SeasonSummary aggregates an athlete's points across the workouts of one
// (season, competition, division) scope.
type SeasonSummary struct {
	TotalPoints       int             `json:"total_points"`
	CompletedWorkouts int             `json:"completed_workouts"`
	PerWorkout        []WorkoutPoints `json:"per_workout"`
}

// Summarize ranks the athlete on every workout they attempted and sums the
// points. Workouts without a logged result are skipped entirely: they add
// nothing to the total and no line to PerWorkout, they are not zeros. A
// workout the athlete did log but whose benchmark population is empty
// still counts, at rank 1 with full points. PerWorkout keeps the input
// order; callers resort for presentation.
func Summarize(workouts []SeasonWorkout) SeasonSummary {
	summary := SeasonSummary{PerWorkout: []WorkoutPoints{}}
	for _, w := range workouts {
		if w.UserScore == nil {
			continue
		}
		res := Rank(w.Discipline, *w.UserScore, w.Benchmark)
		summary.TotalPoints += res.Points
		summary.CompletedWorkouts++
		summary.PerWorkout = append(summary.PerWorkout, WorkoutPoints{
			WorkoutID:   w.WorkoutID,
			BeatenCount: res.BeatenCount,
			Rank:        res.Rank,
			Points:      res.Points,
		})
	}
	return summary
}
