package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/google/uuid"
)

// ReplaceBenchmark swaps a workout's whole benchmark population for the
// given rows in one transaction. The previous population is deleted first,
// which also drops stale ranks when the new population is smaller, so
// reseeding converges regardless of what was there before. Returns the
// number of rows written.
func (db *DB) ReplaceBenchmark(ctx context.Context, workoutID uuid.UUID, rows []models.BenchmarkRow) (int64, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning benchmark replace: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM benchmark_scores WHERE workout_id = $1`, workoutID); err != nil {
		return 0, fmt.Errorf("clearing benchmark: %w", err)
	}

	var written int64
	if len(rows) > 0 {
		query := `INSERT INTO benchmark_scores (workout_id, rank, athlete, time_seconds, reps, load_kg, tiebreak_seconds) VALUES `
		args := make([]any, 0, len(rows)*7)
		valueStrings := make([]string, 0, len(rows))

		for i, r := range rows {
			base := i * 7
			valueStrings = append(valueStrings, fmt.Sprintf(
				"($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7,
			))
			args = append(args, workoutID, r.Rank, r.Athlete, r.TimeSeconds, r.Reps, r.LoadKg, r.TiebreakSeconds)
		}

		tag, err := tx.Exec(ctx, query+strings.Join(valueStrings, ","), args...)
		if err != nil {
			return 0, fmt.Errorf("inserting benchmark scores: %w", err)
		}
		written = tag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing benchmark replace: %w", err)
	}
	return written, nil
}

// GetBenchmark retrieves a workout's benchmark population ordered by its
// externally assigned rank, best first.
func (db *DB) GetBenchmark(ctx context.Context, workoutID uuid.UUID) ([]models.BenchmarkRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT workout_id, rank, athlete, time_seconds, reps, load_kg, tiebreak_seconds
		 FROM benchmark_scores
		 WHERE workout_id = $1
		 ORDER BY rank ASC`,
		workoutID)
	if err != nil {
		return nil, fmt.Errorf("querying benchmark: %w", err)
	}
	defer rows.Close()

	var result []models.BenchmarkRow
	for rows.Next() {
		var b models.BenchmarkRow
		if err := rows.Scan(&b.WorkoutID, &b.Rank, &b.Athlete,
			&b.TimeSeconds, &b.Reps, &b.LoadKg, &b.TiebreakSeconds); err != nil {
			return nil, fmt.Errorf("scanning benchmark row: %w", err)
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

// GetBenchmarksForWorkouts retrieves the benchmark populations of several
// workouts in one query, keyed by workout ID, each ordered by rank.
func (db *DB) GetBenchmarksForWorkouts(ctx context.Context, workoutIDs []uuid.UUID) (map[uuid.UUID][]models.BenchmarkRow, error) {
	result := make(map[uuid.UUID][]models.BenchmarkRow, len(workoutIDs))
	if len(workoutIDs) == 0 {
		return result, nil
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT workout_id, rank, athlete, time_seconds, reps, load_kg, tiebreak_seconds
		 FROM benchmark_scores
		 WHERE workout_id = ANY($1)
		 ORDER BY workout_id, rank ASC`,
		workoutIDs)
	if err != nil {
		return nil, fmt.Errorf("querying benchmarks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b models.BenchmarkRow
		if err := rows.Scan(&b.WorkoutID, &b.Rank, &b.Athlete,
			&b.TimeSeconds, &b.Reps, &b.LoadKg, &b.TiebreakSeconds); err != nil {
			return nil, fmt.Errorf("scanning benchmark row: %w", err)
		}
		result[b.WorkoutID] = append(result[b.WorkoutID], b)
	}
	return result, rows.Err()
}
