package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("cf-benchmark", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Benchmark workout scoring server. Query workouts and their Top 40 benchmark populations, the athlete's ranks and points, and season leaderboards. A rank places a score inside a workout's benchmark population; points follow the fixed 40-point scale."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolGetBenchmark, Handler: h.getBenchmark},
		server.ServerTool{Tool: toolGetRank, Handler: h.getRank},
		server.ServerTool{Tool: toolGetMyResults, Handler: h.getMyResults},
		server.ServerTool{Tool: toolGetWorkoutLeaderboard, Handler: h.getWorkoutLeaderboard},
		server.ServerTool{Tool: toolGetSeasonSummary, Handler: h.getSeasonSummary},
		server.ServerTool{Tool: toolGetSeasonLeaderboard, Handler: h.getSeasonLeaderboard},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resSeasonSummary, Handler: h.seasonSummaryResource},
		server.ServerResource{Resource: resWorkoutCatalog, Handler: h.workoutCatalogResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resSeasonSummary = mcp.NewResource(
	"cfbench://season_summary",
	"Season Summary",
	mcp.WithResourceDescription("The athlete's total points and per-workout placements across every logged workout"),
	mcp.WithMIMEType("application/json"),
)

var resWorkoutCatalog = mcp.NewResource(
	"cfbench://workout_catalog",
	"Workout Catalog",
	mcp.WithResourceDescription("Every benchmark workout with its season, competition, division and scoring discipline"),
	mcp.WithMIMEType("application/json"),
)
