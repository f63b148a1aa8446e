package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/CatoAkay/cf-benchmark/internal/storage"
)

func (h *handlers) seasonSummaryResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	summary, err := h.ds.SeasonSummary(ctx, uid, storage.WorkoutFilter{})
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) workoutCatalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	workouts, err := h.ds.ListWorkouts(ctx, storage.WorkoutFilter{})
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(workouts)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
