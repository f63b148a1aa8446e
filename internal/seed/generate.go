package seed

import (
	"math"

	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/CatoAkay/cf-benchmark/internal/scoring"
)

var firstNames = [...]string{
	"Alex", "Blake", "Casey", "Drew", "Ellis", "Frankie", "Gray", "Harper",
	"Indigo", "Jordan", "Kai", "Lane", "Morgan", "Noel", "Oakley", "Parker",
	"Quinn", "Reese", "Sage", "Taylor",
}

var lastNames = [...]string{
	"Andersen", "Berg", "Carter", "Dalton", "Engel", "Foster", "Gunnarson",
	"Hayes", "Iverson", "Jensen", "Keller", "Larsen", "Mercer", "Nolan",
	"Olsen", "Price", "Quist", "Rowe", "Steiner", "Thorne",
}

// Population generates the benchmark rows for one workout plan: Population
// evenly spaced scores from Best at rank 1 down to Worst at the last rank.
// The output is fully determined by the plan, so reseeding the same plan
// writes the same rows.
func Population(w WorkoutPlan, d scoring.Discipline) []models.BenchmarkRow {
	n := w.Population
	rows := make([]models.BenchmarkRow, 0, n)
	for i := 0; i < n; i++ {
		row := models.BenchmarkRow{Rank: i + 1, Athlete: athleteName(i)}
		switch d {
		case scoring.DisciplineTime:
			t := interpInt(w.Best, w.Worst, i, n)
			row.TimeSeconds = &t
		case scoring.DisciplineReps:
			reps := interpInt(w.Best, w.Worst, i, n)
			row.Reps = &reps
		case scoring.DisciplineLoad:
			load := interpLoad(w.Best, w.Worst, i, n)
			row.LoadKg = &load
		case scoring.DisciplineTimeReps:
			reps := interpInt(w.Best, w.Worst, i, n)
			t := interpInt(float64(w.BestTime), float64(w.WorstTime), i, n)
			row.Reps = &reps
			row.TimeSeconds = &t
		}
		rows = append(rows, row)
	}
	return rows
}

// athleteName pairs first and last names by index, shifting the last name
// by one on each full cycle through the first names so at least 400 indexes
// yield distinct names.
func athleteName(i int) string {
	first := firstNames[i%len(firstNames)]
	last := lastNames[(i+i/len(firstNames))%len(lastNames)]
	return first + " " + last
}

// interp returns the i-th of n evenly spaced values from best to worst.
func interp(best, worst float64, i, n int) float64 {
	if n <= 1 {
		return best
	}
	return best + (worst-best)*float64(i)/float64(n-1)
}

func interpInt(best, worst float64, i, n int) int {
	return int(math.Round(interp(best, worst, i, n)))
}

// interpLoad keeps one decimal so generated loads look like plate math.
func interpLoad(best, worst float64, i, n int) float64 {
	return math.Round(interp(best, worst, i, n)*10) / 10
}
