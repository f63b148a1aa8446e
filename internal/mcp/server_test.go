package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// TestUserIDFromContextDefault verifies the default user ID (1) when no value
// is set in the context.
func TestUserIDFromContextDefault(t *testing.T) {
	ctx := context.Background()
	if id := UserIDFromContext(ctx); id != 1 {
		t.Errorf("UserIDFromContext(empty) = %d, want 1", id)
	}
}

// TestUserIDFromContextSet verifies the user ID is extracted from context
// after being set by WithUserID.
func TestUserIDFromContextSet(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)
	if id := UserIDFromContext(ctx); id != 42 {
		t.Errorf("UserIDFromContext = %d, want 42", id)
	}
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// TestScopeFilter verifies scope parameter parsing, including the spelling
// variants accepted for competition and division.
func TestScopeFilter(t *testing.T) {
	f, errResult := scopeFilter(toolRequest(map[string]any{
		"season":      "2024",
		"competition": "The Open",
		"division":    "Rx Men",
	}))
	if errResult != nil {
		t.Fatalf("unexpected error result: %v", errResult)
	}
	if f.Season != 2024 {
		t.Errorf("Season = %d, want 2024", f.Season)
	}
	if f.Competition != "open" {
		t.Errorf("Competition = %q, want %q", f.Competition, "open")
	}
	if f.Division != "rx_men" {
		t.Errorf("Division = %q, want %q", f.Division, "rx_men")
	}
}

// TestScopeFilterEmpty verifies that omitting every parameter yields an
// unscoped filter.
func TestScopeFilterEmpty(t *testing.T) {
	f, errResult := scopeFilter(toolRequest(map[string]any{}))
	if errResult != nil {
		t.Fatalf("unexpected error result: %v", errResult)
	}
	if f.Season != 0 || f.Competition != "" || f.Division != "" {
		t.Errorf("filter = %+v, want zero value", f)
	}
}

// TestScopeFilterInvalid verifies error results for unparseable or unknown
// scope values.
func TestScopeFilterInvalid(t *testing.T) {
	cases := []map[string]any{
		{"season": "twenty-twenty-four"},
		{"competition": "regionals"},
		{"division": "superheavyweight"},
	}
	for _, args := range cases {
		if _, errResult := scopeFilter(toolRequest(args)); errResult == nil {
			t.Errorf("scopeFilter(%v): expected error result", args)
		}
	}
}

// TestWorkoutIDArg verifies workout_id parsing for valid, missing and
// malformed values.
func TestWorkoutIDArg(t *testing.T) {
	id, errResult := workoutIDArg(toolRequest(map[string]any{
		"workout_id": "3e0f34a8-94a5-4c43-a1a4-6a2d89cdcd8f",
	}))
	if errResult != nil {
		t.Fatalf("unexpected error result: %v", errResult)
	}
	if id.String() != "3e0f34a8-94a5-4c43-a1a4-6a2d89cdcd8f" {
		t.Errorf("id = %s, want 3e0f34a8-94a5-4c43-a1a4-6a2d89cdcd8f", id)
	}

	if _, errResult := workoutIDArg(toolRequest(map[string]any{})); errResult == nil {
		t.Error("expected error result for missing workout_id")
	}

	if _, errResult := workoutIDArg(toolRequest(map[string]any{"workout_id": "nope"})); errResult == nil {
		t.Error("expected error result for malformed workout_id")
	}
}
