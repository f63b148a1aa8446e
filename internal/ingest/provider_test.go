package ingest

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/CatoAkay/cf-benchmark/internal/scoring"
)

// TestIngestRequiresAthlete verifies a batch without an athlete login is
// rejected outright.
func TestIngestRequiresAthlete(t *testing.T) {
	p := New(nil, slog.Default())
	batch := &models.ResultBatch{
		Results: []models.ResultSubmission{{WorkoutID: "x"}},
	}
	if _, err := p.Ingest(context.Background(), batch); err == nil {
		t.Fatal("expected error for missing athlete, got nil")
	}
}

// TestIngestRequiresResults verifies an empty batch is rejected outright.
func TestIngestRequiresResults(t *testing.T) {
	p := New(nil, slog.Default())
	batch := &models.ResultBatch{Athlete: "alice"}
	if _, err := p.Ingest(context.Background(), batch); err == nil {
		t.Fatal("expected error for empty batch, got nil")
	}
}

// TestStoreOneInvalidID verifies a submission with a non-UUID workout ID is
// rejected with a reason, not an error.
func TestStoreOneInvalidID(t *testing.T) {
	p := New(nil, slog.Default())
	sub := models.ResultSubmission{WorkoutID: "25-1"}

	reason, err := p.storeOne(context.Background(), 1, sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reason, "invalid workout ID") {
		t.Errorf("reason = %q, want mention of invalid workout ID", reason)
	}
}

// TestStoreOneOutOfRange verifies numeric domain checks run before any
// database access.
func TestStoreOneOutOfRange(t *testing.T) {
	p := New(nil, slog.Default())
	reps := -3
	sub := models.ResultSubmission{
		WorkoutID: "7c9a1815-6cf2-4b53-9e5a-54ab2f1f3a52",
		Score:     scoring.Score{Reps: &reps},
	}

	reason, err := p.storeOne(context.Background(), 1, sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reason, "reps") {
		t.Errorf("reason = %q, want mention of reps", reason)
	}
}
