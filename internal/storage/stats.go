package storage

import (
	"context"
	"fmt"
	"time"
)

// DataStats holds aggregate statistics about all stored data.
type DataStats struct {
	TotalUsers         int64            `json:"total_users"`
	TotalWorkouts      int64            `json:"total_workouts"`
	TotalBenchmarkRows int64            `json:"total_benchmark_rows"`
	TotalResults       int64            `json:"total_results"`
	LastSubmission     *time.Time       `json:"last_submission"`
	Seasons            []int            `json:"seasons"`
	ByDiscipline       []DisciplineStat `json:"workouts_by_discipline"`
}

// DisciplineStat holds workout and result counts for a single discipline.
type DisciplineStat struct {
	Discipline string `json:"discipline"`
	Workouts   int64  `json:"workouts"`
	Results    int64  `json:"results"`
}

// GetDataStats returns aggregate statistics across all stored data.
func (db *DB) GetDataStats(ctx context.Context) (*DataStats, error) {
	stats := &DataStats{}

	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&stats.TotalUsers)
	if err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}

	err = db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM workouts`).Scan(&stats.TotalWorkouts)
	if err != nil {
		return nil, fmt.Errorf("counting workouts: %w", err)
	}

	err = db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM benchmark_scores`).Scan(&stats.TotalBenchmarkRows)
	if err != nil {
		return nil, fmt.Errorf("counting benchmark rows: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*), MAX(updated_at) FROM user_results`,
	).Scan(&stats.TotalResults, &stats.LastSubmission)
	if err != nil {
		return nil, fmt.Errorf("counting results: %w", err)
	}

	seasonRows, err := db.Pool.Query(ctx,
		`SELECT DISTINCT season FROM workouts ORDER BY season DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying seasons: %w", err)
	}
	defer seasonRows.Close()

	for seasonRows.Next() {
		var season int
		if err := seasonRows.Scan(&season); err != nil {
			return nil, fmt.Errorf("scanning season: %w", err)
		}
		stats.Seasons = append(stats.Seasons, season)
	}
	if err := seasonRows.Err(); err != nil {
		return nil, err
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT w.discipline, COUNT(DISTINCT w.id), COUNT(r.user_id)
		 FROM workouts w
		 LEFT JOIN user_results r ON r.workout_id = w.id
		 GROUP BY w.discipline
		 ORDER BY COUNT(DISTINCT w.id) DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying discipline stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s DisciplineStat
		if err := rows.Scan(&s.Discipline, &s.Workouts, &s.Results); err != nil {
			return nil, fmt.Errorf("scanning discipline stat: %w", err)
		}
		stats.ByDiscipline = append(stats.ByDiscipline, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
