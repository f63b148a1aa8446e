package mcp

import (
	"context"

	"github.com/google/uuid"

	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/CatoAkay/cf-benchmark/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB
// (local mode) and *HTTPClient (remote via the REST API) satisfy it. The
// remote side resolves identity from the connection, so HTTPClient ignores
// the userID arguments.
type DataSource interface {
	ListWorkouts(ctx context.Context, f storage.WorkoutFilter) ([]models.WorkoutRow, error)
	GetWorkoutDetail(ctx context.Context, id uuid.UUID) (*storage.WorkoutDetail, error)
	WorkoutRank(ctx context.Context, userID int, id uuid.UUID) (*storage.WorkoutRankResult, error)
	WorkoutLeaderboard(ctx context.Context, id uuid.UUID) (*storage.WorkoutLeaderboardResult, error)
	SeasonSummary(ctx context.Context, userID int, f storage.WorkoutFilter) (*storage.SeasonSummaryResult, error)
	SeasonLeaderboard(ctx context.Context, f storage.WorkoutFilter) (*storage.SeasonLeaderboardResult, error)
	ListResultsForUser(ctx context.Context, userID int) ([]storage.ResultWithWorkout, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
