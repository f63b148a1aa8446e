package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/CatoAkay/cf-benchmark/internal/scoring"
	"github.com/google/uuid"
)

// ErrNoResult marks a rank query for a workout the athlete never logged.
// Callers use it to tell "nothing submitted yet" apart from "workout does
// not exist".
var ErrNoResult = errors.New("no result logged for workout")

// UpsertResult writes a user's score for one workout. Submitting again for
// the same (user, workout) pair replaces the previous score; there is no
// result history.
func (db *DB) UpsertResult(ctx context.Context, row models.ResultRow) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO user_results (user_id, workout_id, time_seconds, reps, load_kg, tiebreak_seconds)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, workout_id) DO UPDATE
			SET time_seconds = EXCLUDED.time_seconds,
			    reps = EXCLUDED.reps,
			    load_kg = EXCLUDED.load_kg,
			    tiebreak_seconds = EXCLUDED.tiebreak_seconds,
			    updated_at = NOW()
	`, row.UserID, row.WorkoutID, row.TimeSeconds, row.Reps, row.LoadKg, row.TiebreakSeconds)
	if err != nil {
		return fmt.Errorf("upserting result: %w", err)
	}
	return nil
}

// GetResult retrieves one user's result for one workout.
func (db *DB) GetResult(ctx context.Context, userID int, workoutID uuid.UUID) (*models.ResultRow, error) {
	var r models.ResultRow
	err := db.Pool.QueryRow(ctx,
		`SELECT user_id, workout_id, time_seconds, reps, load_kg, tiebreak_seconds, updated_at
		 FROM user_results
		 WHERE user_id = $1 AND workout_id = $2`,
		userID, workoutID).Scan(&r.UserID, &r.WorkoutID,
		&r.TimeSeconds, &r.Reps, &r.LoadKg, &r.TiebreakSeconds, &r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying result: %w", err)
	}
	return &r, nil
}

// ListUserResults retrieves one user's results across the given workouts,
// keyed by workout ID. Workouts the user never attempted are simply absent.
func (db *DB) ListUserResults(ctx context.Context, userID int, workoutIDs []uuid.UUID) (map[uuid.UUID]models.ResultRow, error) {
	result := make(map[uuid.UUID]models.ResultRow, len(workoutIDs))
	if len(workoutIDs) == 0 {
		return result, nil
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT user_id, workout_id, time_seconds, reps, load_kg, tiebreak_seconds, updated_at
		 FROM user_results
		 WHERE user_id = $1 AND workout_id = ANY($2)`,
		userID, workoutIDs)
	if err != nil {
		return nil, fmt.Errorf("querying user results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r models.ResultRow
		if err := rows.Scan(&r.UserID, &r.WorkoutID,
			&r.TimeSeconds, &r.Reps, &r.LoadKg, &r.TiebreakSeconds, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		result[r.WorkoutID] = r
	}
	return result, rows.Err()
}

// ResultWithWorkout joins a result row with its workout's identity, for an
// athlete's own result listing.
type ResultWithWorkout struct {
	models.ResultRow
	Season      int                `json:"season"`
	Competition string             `json:"competition"`
	Division    string             `json:"division"`
	Slug        string             `json:"slug"`
	Name        string             `json:"name"`
	Discipline  scoring.Discipline `json:"discipline"`
}

// ListResultsForUser retrieves every result one athlete has logged, newest
// season first.
func (db *DB) ListResultsForUser(ctx context.Context, userID int) ([]ResultWithWorkout, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT r.user_id, r.workout_id, r.time_seconds, r.reps, r.load_kg, r.tiebreak_seconds, r.updated_at,
		        w.season, w.competition, w.division, w.slug, w.name, w.discipline
		 FROM user_results r
		 JOIN workouts w ON w.id = r.workout_id
		 WHERE r.user_id = $1
		 ORDER BY w.season DESC, w.competition, w.division, w.slug`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying athlete results: %w", err)
	}
	defer rows.Close()

	var result []ResultWithWorkout
	for rows.Next() {
		var r ResultWithWorkout
		if err := rows.Scan(&r.UserID, &r.WorkoutID,
			&r.TimeSeconds, &r.Reps, &r.LoadKg, &r.TiebreakSeconds, &r.UpdatedAt,
			&r.Season, &r.Competition, &r.Division, &r.Slug, &r.Name, &r.Discipline); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// ResultWithUser joins a result row with its owner's identity, for
// leaderboards.
type ResultWithUser struct {
	models.ResultRow
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
}

// ListWorkoutResults retrieves every logged result for one workout with
// the owning user's identity.
func (db *DB) ListWorkoutResults(ctx context.Context, workoutID uuid.UUID) ([]ResultWithUser, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT r.user_id, r.workout_id, r.time_seconds, r.reps, r.load_kg, r.tiebreak_seconds, r.updated_at,
		        u.login, u.display_name
		 FROM user_results r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.workout_id = $1
		 ORDER BY u.login`,
		workoutID)
	if err != nil {
		return nil, fmt.Errorf("querying workout results: %w", err)
	}
	defer rows.Close()

	return scanResultsWithUser(rows)
}

// ListResultsForWorkouts retrieves every result across the given workouts
// with user identity, for season leaderboards.
func (db *DB) ListResultsForWorkouts(ctx context.Context, workoutIDs []uuid.UUID) ([]ResultWithUser, error) {
	if len(workoutIDs) == 0 {
		return nil, nil
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT r.user_id, r.workout_id, r.time_seconds, r.reps, r.load_kg, r.tiebreak_seconds, r.updated_at,
		        u.login, u.display_name
		 FROM user_results r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.workout_id = ANY($1)
		 ORDER BY r.user_id, r.workout_id`,
		workoutIDs)
	if err != nil {
		return nil, fmt.Errorf("querying season results: %w", err)
	}
	defer rows.Close()

	return scanResultsWithUser(rows)
}

func scanResultsWithUser(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]ResultWithUser, error) {
	var result []ResultWithUser
	for rows.Next() {
		var r ResultWithUser
		if err := rows.Scan(&r.UserID, &r.WorkoutID,
			&r.TimeSeconds, &r.Reps, &r.LoadKg, &r.TiebreakSeconds, &r.UpdatedAt,
			&r.Login, &r.DisplayName); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
