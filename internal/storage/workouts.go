package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/google/uuid"
)

const workoutColumns = `id, season, competition, division, slug, name, discipline, description, created_at`

// InsertWorkout inserts a workout row. Returns true if inserted, false if a
// workout with the same (season, competition, division, slug) already exists.
func (db *DB) InsertWorkout(ctx context.Context, row models.WorkoutRow) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO workouts (id, season, competition, division, slug, name, discipline, description)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT DO NOTHING`,
		row.ID, row.Season, row.Competition, row.Division, row.Slug,
		row.Name, row.Discipline, row.Description)
	if err != nil {
		return false, fmt.Errorf("inserting workout: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetWorkout retrieves a single workout by ID.
func (db *DB) GetWorkout(ctx context.Context, id uuid.UUID) (*models.WorkoutRow, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE id = $1`, id)
	w, err := scanWorkout(row)
	if err != nil {
		return nil, fmt.Errorf("querying workout: %w", err)
	}
	return w, nil
}

// WorkoutDetail is a workout together with its full benchmark population,
// ordered by rank.
type WorkoutDetail struct {
	Workout   models.WorkoutRow     `json:"workout"`
	Benchmark []models.BenchmarkRow `json:"benchmark"`
}

// GetWorkoutDetail retrieves a workout and its benchmark in one call.
func (db *DB) GetWorkoutDetail(ctx context.Context, id uuid.UUID) (*WorkoutDetail, error) {
	workout, err := db.GetWorkout(ctx, id)
	if err != nil {
		return nil, err
	}
	benchmark, err := db.GetBenchmark(ctx, id)
	if err != nil {
		return nil, err
	}
	return &WorkoutDetail{Workout: *workout, Benchmark: benchmark}, nil
}

// FindWorkout looks a workout up by its identifying tuple.
func (db *DB) FindWorkout(ctx context.Context, season int, competition, division, slug string) (*models.WorkoutRow, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+workoutColumns+` FROM workouts
		 WHERE season = $1 AND competition = $2 AND division = $3 AND slug = $4`,
		season, competition, division, slug)
	w, err := scanWorkout(row)
	if err != nil {
		return nil, fmt.Errorf("querying workout by tuple: %w", err)
	}
	return w, nil
}

// WorkoutFilter narrows ListWorkouts. Zero values mean no constraint.
type WorkoutFilter struct {
	Season      int
	Competition string
	Division    string
}

// ListWorkouts retrieves workouts matching the filter, newest season first.
func (db *DB) ListWorkouts(ctx context.Context, f WorkoutFilter) ([]models.WorkoutRow, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts`
	var conds []string
	var args []any
	if f.Season != 0 {
		args = append(args, f.Season)
		conds = append(conds, fmt.Sprintf("season = $%d", len(args)))
	}
	if f.Competition != "" {
		args = append(args, f.Competition)
		conds = append(conds, fmt.Sprintf("competition = $%d", len(args)))
	}
	if f.Division != "" {
		args = append(args, f.Division)
		conds = append(conds, fmt.Sprintf("division = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY season DESC, competition, division, slug"

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutRow
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		result = append(result, *w)
	}
	return result, rows.Err()
}

func scanWorkout(row interface{ Scan(dest ...any) error }) (*models.WorkoutRow, error) {
	var w models.WorkoutRow
	if err := row.Scan(&w.ID, &w.Season, &w.Competition, &w.Division, &w.Slug,
		&w.Name, &w.Discipline, &w.Description, &w.CreatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}
