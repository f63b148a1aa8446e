package mcp

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/CatoAkay/cf-benchmark/internal/storage"
)

// workoutIDArg parses the required workout_id parameter.
func workoutIDArg(req mcp.CallToolRequest) (uuid.UUID, *mcp.CallToolResult) {
	raw, err := req.RequireString("workout_id")
	if err != nil {
		return uuid.Nil, mcp.NewToolResultError("workout_id parameter is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, mcp.NewToolResultError("invalid workout ID: " + raw)
	}
	return id, nil
}

// scopeFilter builds a workout filter from the optional season, competition
// and division parameters. Competition and division accept the same spelling
// variants as the REST API.
func scopeFilter(req mcp.CallToolRequest) (storage.WorkoutFilter, *mcp.CallToolResult) {
	var f storage.WorkoutFilter

	if raw := req.GetString("season", ""); raw != "" {
		season, err := strconv.Atoi(raw)
		if err != nil {
			return f, mcp.NewToolResultError("invalid season: " + raw)
		}
		f.Season = season
	}
	if raw := req.GetString("competition", ""); raw != "" {
		comp, ok := models.NormalizeCompetition(raw)
		if !ok {
			return f, mcp.NewToolResultError("unknown competition: " + raw)
		}
		f.Competition = comp
	}
	if raw := req.GetString("division", ""); raw != "" {
		div, ok := models.NormalizeDivision(raw)
		if !ok {
			return f, mcp.NewToolResultError("unknown division: " + raw)
		}
		f.Division = div
	}

	return f, nil
}

// --- Tool definitions ---

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("List benchmark workouts, optionally scoped by season, competition and division. Returns each workout's ID, slug, name and scoring discipline."),
	mcp.WithString("season", mcp.Description("Season year (e.g. 2024)")),
	mcp.WithString("competition", mcp.Description("Competition stage (open, quarterfinals, semifinals, games)")),
	mcp.WithString("division", mcp.Description("Division (e.g. rx_men, rx_women, masters_men, teen_girls)")),
)

var toolGetBenchmark = mcp.NewTool("get_benchmark",
	mcp.WithDescription("Fetch a workout together with its benchmark population, ordered best to worst. Each entry carries the fields of the workout's scoring discipline."),
	mcp.WithString("workout_id", mcp.Required(), mcp.Description("Workout UUID (from get_workouts)")),
)

var toolGetRank = mcp.NewTool("get_rank",
	mcp.WithDescription("Rank the athlete's logged score against a workout's benchmark population. Returns the beaten count, the rank and the points earned."),
	mcp.WithString("workout_id", mcp.Required(), mcp.Description("Workout UUID (from get_workouts)")),
)

var toolGetMyResults = mcp.NewTool("get_my_results",
	mcp.WithDescription("List every result the athlete has logged, newest season first, with the workout each result belongs to."),
)

var toolGetWorkoutLeaderboard = mcp.NewTool("get_workout_leaderboard",
	mcp.WithDescription("Leaderboard of every athlete who logged a result for a workout, each ranked against the benchmark population. Tied scores share a display rank."),
	mcp.WithString("workout_id", mcp.Required(), mcp.Description("Workout UUID (from get_workouts)")),
)

var toolGetSeasonSummary = mcp.NewTool("get_season_summary",
	mcp.WithDescription("The athlete's season summary: total points, completed workouts and per-workout placements. Optionally scoped by season, competition and division."),
	mcp.WithString("season", mcp.Description("Season year (e.g. 2024)")),
	mcp.WithString("competition", mcp.Description("Competition stage (open, quarterfinals, semifinals, games)")),
	mcp.WithString("division", mcp.Description("Division (e.g. rx_men, rx_women)")),
)

var toolGetSeasonLeaderboard = mcp.NewTool("get_season_leaderboard",
	mcp.WithDescription("Season leaderboard across all athletes, ordered by total points. Optionally scoped by season, competition and division."),
	mcp.WithString("season", mcp.Description("Season year (e.g. 2024)")),
	mcp.WithString("competition", mcp.Description("Competition stage (open, quarterfinals, semifinals, games)")),
	mcp.WithString("division", mcp.Description("Division (e.g. rx_men, rx_women)")),
)

// --- Tool handlers ---

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, errResult := scopeFilter(req)
	if errResult != nil {
		return errResult, nil
	}

	workouts, err := h.ds.ListWorkouts(ctx, filter)
	if err != nil {
		h.log.Error("mcp get_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getBenchmark(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := workoutIDArg(req)
	if errResult != nil {
		return errResult, nil
	}

	detail, err := h.ds.GetWorkoutDetail(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return mcp.NewToolResultError("workout not found"), nil
	}
	if err != nil {
		h.log.Error("mcp get_benchmark", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(detail)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getRank(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := workoutIDArg(req)
	if errResult != nil {
		return errResult, nil
	}

	uid := UserIDFromContext(ctx)

	rank, err := h.ds.WorkoutRank(ctx, uid, id)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return mcp.NewToolResultError("workout not found"), nil
	case errors.Is(err, storage.ErrNoResult):
		return mcp.NewToolResultError("no result logged for this workout"), nil
	case err != nil:
		h.log.Error("mcp get_rank", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(rank)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getMyResults(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	results, err := h.ds.ListResultsForUser(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_my_results", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(results)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutLeaderboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := workoutIDArg(req)
	if errResult != nil {
		return errResult, nil
	}

	board, err := h.ds.WorkoutLeaderboard(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return mcp.NewToolResultError("workout not found"), nil
	}
	if err != nil {
		h.log.Error("mcp get_workout_leaderboard", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(board)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSeasonSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, errResult := scopeFilter(req)
	if errResult != nil {
		return errResult, nil
	}

	uid := UserIDFromContext(ctx)

	summary, err := h.ds.SeasonSummary(ctx, uid, filter)
	if err != nil {
		h.log.Error("mcp get_season_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(summary)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSeasonLeaderboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, errResult := scopeFilter(req)
	if errResult != nil {
		return errResult, nil
	}

	board, err := h.ds.SeasonLeaderboard(ctx, filter)
	if err != nil {
		h.log.Error("mcp get_season_leaderboard", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(board)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
