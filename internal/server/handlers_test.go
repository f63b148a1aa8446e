package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/CatoAkay/cf-benchmark/internal/storage"
)

// TestHandleMeDefault verifies the /api/v1/me endpoint returns the dev user
// identity when no Tailscale middleware is active.
func TestHandleMeDefault(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	ctx := context.WithValue(req.Context(), userInfoKey, UserInfo{Login: "local", DisplayName: "Local Dev User"})
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	s.handleMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var info UserInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if info.Login != "local" {
		t.Errorf("login = %q, want %q", info.Login, "local")
	}
	if info.DisplayName != "Local Dev User" {
		t.Errorf("display_name = %q, want %q", info.DisplayName, "Local Dev User")
	}
}

// TestHandleMeTailscaleUser verifies the /api/v1/me endpoint returns the
// Tailscale user identity when set in context.
func TestHandleMeTailscaleUser(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	ctx := context.WithValue(req.Context(), userInfoKey, UserInfo{Login: "alice@example.com", DisplayName: "Alice"})
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	s.handleMe(rec, req)

	var info UserInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if info.Login != "alice@example.com" {
		t.Errorf("login = %q, want %q", info.Login, "alice@example.com")
	}
	if info.DisplayName != "Alice" {
		t.Errorf("display_name = %q, want %q", info.DisplayName, "Alice")
	}
}

// TestHandleSubmitResultBadJSON verifies that a malformed body is rejected
// before any database access.
func TestHandleSubmitResultBadJSON(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/results", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	s.handleSubmitResult(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestHandleSubmitResultInvalidID verifies that a workout_id that is not a
// UUID is rejected with a 400.
func TestHandleSubmitResultInvalidID(t *testing.T) {
	s := &Server{}
	body := `{"workout_id": "25-1", "score": {"time_seconds": 540}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/results", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleSubmitResult(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestHandleSubmitResultOutOfRange verifies that score fields outside their
// numeric domain are rejected before the workout lookup.
func TestHandleSubmitResultOutOfRange(t *testing.T) {
	s := &Server{}
	body := `{"workout_id": "7c9a1815-6cf2-4b53-9e5a-54ab2f1f3a52", "score": {"time_seconds": -5}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/results", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleSubmitResult(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !strings.Contains(resp["error"], "time_seconds") {
		t.Errorf("error = %q, want mention of time_seconds", resp["error"])
	}
}

// TestHandleGetWorkoutInvalidID verifies the {id} route parameter must be a
// UUID.
func TestHandleGetWorkoutInvalidID(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/workouts/nope", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "nope")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	s.handleGetWorkout(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestFilterFromQuery verifies scope parameters are parsed and normalized,
// and unknown values are rejected.
func TestFilterFromQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    storage.WorkoutFilter
		wantErr bool
	}{
		{name: "empty", query: "", want: storage.WorkoutFilter{}},
		{name: "season only", query: "season=2025", want: storage.WorkoutFilter{Season: 2025}},
		{
			name:  "full scope",
			query: "season=2025&competition=open&division=rx_men",
			want:  storage.WorkoutFilter{Season: 2025, Competition: "open", Division: "rx_men"},
		},
		{
			name:  "variant spellings",
			query: "competition=Quarter-Finals&division=Rx%20Women",
			want:  storage.WorkoutFilter{Competition: "quarterfinals", Division: "rx_women"},
		},
		{name: "bad season", query: "season=twenty", wantErr: true},
		{name: "unknown competition", query: "competition=regionals", wantErr: true},
		{name: "unknown division", query: "division=elite", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/workouts?"+tt.query, nil)
			got, err := filterFromQuery(req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("filter = %+v, want %+v", got, tt.want)
			}
		})
	}
}
