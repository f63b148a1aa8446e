package submit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/CatoAkay/cf-benchmark/internal/models"
)

// IngestResponse mirrors the server's batch ingest response without
// importing the ingest package (which would pull in pgx and other
// server-side dependencies).
type IngestResponse struct {
	Athlete         string   `json:"athlete"`
	ResultsReceived int      `json:"results_received"`
	ResultsInserted int      `json:"results_inserted"`
	ResultsRejected int      `json:"results_rejected"`
	RejectedDetails []string `json:"rejected_details"`
	Message         string   `json:"message"`
}

// Client sends result batches to the benchmark server over HTTP.
type Client struct {
	serverURL  string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new HTTP client for the benchmark server.
func NewClient(serverURL, apiKey string) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchWorkouts retrieves the workouts of one scope, for resolving result
// file slugs to workout IDs.
func (c *Client) FetchWorkouts(season int, competition, division string) ([]models.WorkoutRow, error) {
	q := url.Values{}
	q.Set("season", strconv.Itoa(season))
	q.Set("competition", competition)
	q.Set("division", division)

	resp, err := c.httpClient.Get(c.serverURL + "/api/v1/workouts?" + q.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching workouts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("workout request failed (status %d): %s", resp.StatusCode, body)
	}

	var workouts []models.WorkoutRow
	if err := json.NewDecoder(resp.Body).Decode(&workouts); err != nil {
		return nil, fmt.Errorf("decoding workouts: %w", err)
	}
	return workouts, nil
}

// SendBatch POSTs a result batch to the server's ingest endpoint.
// Retries up to 3 times with exponential backoff on failure.
func (c *Client) SendBatch(batch models.ResultBatch) (*IngestResponse, error) {
	data, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("marshaling batch: %w", err)
	}

	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		req, err := http.NewRequest(http.MethodPost, c.serverURL+"/api/v1/ingest/results", bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("building ingest request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			var result IngestResponse
			if err := json.Unmarshal(body, &result); err != nil {
				return nil, fmt.Errorf("decoding ingest response: %w", err)
			}
			return &result, nil
		}
		lastErr = fmt.Errorf("ingest failed (status %d): %s", resp.StatusCode, body)
	}

	return nil, fmt.Errorf("after 3 attempts: %w", lastErr)
}
