package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/CatoAkay/cf-benchmark/internal/metrics"
	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/CatoAkay/cf-benchmark/internal/scoring"
	"github.com/CatoAkay/cf-benchmark/internal/storage"
)

// Result holds the outcome of one batch ingest.
type Result struct {
	Athlete         string   `json:"athlete"`
	ResultsReceived int      `json:"results_received"`
	ResultsInserted int      `json:"results_inserted"`
	ResultsRejected int      `json:"results_rejected"`
	RejectedDetails []string `json:"rejected_details,omitempty"`
	Message         string   `json:"message,omitempty"`
}

// Provider processes result batches submitted on behalf of an athlete.
type Provider struct {
	db  *storage.DB
	log *slog.Logger
}

// New creates a batch ingest provider.
func New(db *storage.DB, log *slog.Logger) *Provider {
	return &Provider{db: db, log: log}
}

// Ingest stores a batch of results for one athlete, creating the athlete on
// first sight. Items that fail validation are skipped and reported back;
// the rest are stored. Only an infrastructure failure aborts the batch.
func (p *Provider) Ingest(ctx context.Context, batch *models.ResultBatch) (*Result, error) {
	login := strings.ToLower(strings.TrimSpace(batch.Athlete))
	if login == "" {
		return nil, errors.New("athlete login required")
	}
	if len(batch.Results) == 0 {
		return nil, errors.New("batch holds no results")
	}

	displayName := batch.DisplayName
	if displayName == "" {
		displayName = batch.Athlete
	}
	uid, err := p.db.GetOrCreateUser(ctx, login, displayName)
	if err != nil {
		return nil, fmt.Errorf("resolving athlete %s: %w", login, err)
	}

	result := &Result{Athlete: login, ResultsReceived: len(batch.Results)}
	for _, sub := range batch.Results {
		reason, err := p.storeOne(ctx, uid, sub)
		if err != nil {
			return result, err
		}
		if reason != "" {
			result.ResultsRejected++
			result.RejectedDetails = append(result.RejectedDetails, reason)
			metrics.RecordResultRejected()
			continue
		}
		result.ResultsInserted++
		metrics.RecordResultSubmitted()
	}

	if result.ResultsRejected > 0 {
		result.Message = fmt.Sprintf("%d of %d results rejected; accepted results are stored",
			result.ResultsRejected, result.ResultsReceived)
	}
	p.log.Info("batch ingested", "athlete", login,
		"received", result.ResultsReceived, "inserted", result.ResultsInserted, "rejected", result.ResultsRejected)
	return result, nil
}

// storeOne writes one submission. A non-empty reason means the item was
// rejected; a non-nil error means the batch cannot continue.
func (p *Provider) storeOne(ctx context.Context, userID int, sub models.ResultSubmission) (string, error) {
	workoutID, err := uuid.Parse(sub.WorkoutID)
	if err != nil {
		return fmt.Sprintf("%s: invalid workout ID", sub.WorkoutID), nil
	}
	if err := scoring.CheckRanges(sub.Score); err != nil {
		return fmt.Sprintf("%s: %v", sub.WorkoutID, err), nil
	}

	workout, err := p.db.GetWorkout(ctx, workoutID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Sprintf("%s: unknown workout", sub.WorkoutID), nil
		}
		return "", fmt.Errorf("looking up workout %s: %w", workoutID, err)
	}
	if err := scoring.Validate(workout.Discipline, sub.Score); err != nil {
		return fmt.Sprintf("%s: %v", sub.WorkoutID, err), nil
	}

	row := models.ResultRow{UserID: userID, WorkoutID: workoutID}
	row.FromScore(sub.Score)
	if err := p.db.UpsertResult(ctx, row); err != nil {
		return "", fmt.Errorf("storing result for %s: %w", workoutID, err)
	}
	return "", nil
}
