package submit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/CatoAkay/cf-benchmark/internal/scoring"
)

// TestFetchWorkouts verifies the scope query parameters and response
// decoding.
func TestFetchWorkouts(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/workouts" {
			t.Errorf("path = %q, want /api/v1/workouts", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("season") != "2025" || q.Get("competition") != "open" || q.Get("division") != "rx_men" {
			t.Errorf("query = %q, missing scope parameters", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]models.WorkoutRow{{ID: id, Slug: "25-1", Season: 2025}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	workouts, err := c.FetchWorkouts(2025, "open", "rx_men")
	if err != nil {
		t.Fatalf("FetchWorkouts() error: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("len(workouts) = %d, want 1", len(workouts))
	}
	if workouts[0].ID != id || workouts[0].Slug != "25-1" {
		t.Errorf("workout = %+v, want ID %s slug 25-1", workouts[0], id)
	}
}

// TestSendBatch verifies the API key header, request body and response
// decoding.
func TestSendBatch(t *testing.T) {
	reps := 182
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/ingest/results" {
			t.Errorf("path = %q, want /api/v1/ingest/results", r.URL.Path)
		}
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("X-API-Key = %q, want %q", got, "test-key")
		}

		var batch models.ResultBatch
		if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
			t.Errorf("decoding batch: %v", err)
		}
		if batch.Athlete != "alice" || len(batch.Results) != 1 {
			t.Errorf("batch = %+v, want athlete alice with one result", batch)
		}

		json.NewEncoder(w).Encode(IngestResponse{
			Athlete:         "alice",
			ResultsReceived: 1,
			ResultsInserted: 1,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	batch := models.ResultBatch{
		Athlete: "alice",
		Results: []models.ResultSubmission{{
			WorkoutID: uuid.NewString(),
			Score:     scoring.Score{Reps: &reps},
		}},
	}

	resp, err := c.SendBatch(batch)
	if err != nil {
		t.Fatalf("SendBatch() error: %v", err)
	}
	if resp.ResultsInserted != 1 {
		t.Errorf("ResultsInserted = %d, want 1", resp.ResultsInserted)
	}
}
