package models

import "github.com/CatoAkay/cf-benchmark/internal/scoring"

// ResultSubmission is one score for one workout inside a batch. The workout
// ID travels as a string so a malformed ID rejects that item alone instead
// of failing the whole batch decode.
type ResultSubmission struct {
	WorkoutID string        `json:"workout_id"`
	Score     scoring.Score `json:"score"`
}

// ResultBatch is the body of the ingest endpoint: a machine submits scores
// on behalf of a named athlete. The athlete login is normalized and created
// on first sight, the same as a tailnet caller.
type ResultBatch struct {
	Athlete     string             `json:"athlete"`
	DisplayName string             `json:"display_name,omitempty"`
	Results     []ResultSubmission `json:"results"`
}
