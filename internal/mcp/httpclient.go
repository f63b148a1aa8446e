package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/CatoAkay/cf-benchmark/internal/storage"
)

// HTTPClient implements DataSource by calling the cf-benchmark REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but data
// lives on the remote server (accessed over Tailscale). The server resolves
// the athlete from the connection, so the userID arguments are ignored.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

// scopeParams encodes a workout filter as query parameters.
func scopeParams(f storage.WorkoutFilter) url.Values {
	v := url.Values{}
	if f.Season != 0 {
		v.Set("season", strconv.Itoa(f.Season))
	}
	if f.Competition != "" {
		v.Set("competition", f.Competition)
	}
	if f.Division != "" {
		v.Set("division", f.Division)
	}
	return v
}

func (c *HTTPClient) ListWorkouts(ctx context.Context, f storage.WorkoutFilter) ([]models.WorkoutRow, error) {
	body, err := c.get(ctx, "/api/v1/workouts", scopeParams(f))
	if err != nil {
		return nil, err
	}

	var workouts []models.WorkoutRow
	if err := json.Unmarshal(body, &workouts); err != nil {
		return nil, fmt.Errorf("httpclient: decode workouts: %w", err)
	}
	return workouts, nil
}

func (c *HTTPClient) GetWorkoutDetail(ctx context.Context, id uuid.UUID) (*storage.WorkoutDetail, error) {
	body, err := c.get(ctx, "/api/v1/workouts/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	var detail storage.WorkoutDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("httpclient: decode workout detail: %w", err)
	}
	return &detail, nil
}

func (c *HTTPClient) WorkoutRank(ctx context.Context, _ int, id uuid.UUID) (*storage.WorkoutRankResult, error) {
	body, err := c.get(ctx, "/api/v1/workouts/"+id.String()+"/rank", nil)
	if err != nil {
		return nil, err
	}

	var rank storage.WorkoutRankResult
	if err := json.Unmarshal(body, &rank); err != nil {
		return nil, fmt.Errorf("httpclient: decode rank: %w", err)
	}
	return &rank, nil
}

func (c *HTTPClient) WorkoutLeaderboard(ctx context.Context, id uuid.UUID) (*storage.WorkoutLeaderboardResult, error) {
	body, err := c.get(ctx, "/api/v1/workouts/"+id.String()+"/leaderboard", nil)
	if err != nil {
		return nil, err
	}

	var board storage.WorkoutLeaderboardResult
	if err := json.Unmarshal(body, &board); err != nil {
		return nil, fmt.Errorf("httpclient: decode leaderboard: %w", err)
	}
	return &board, nil
}

func (c *HTTPClient) SeasonSummary(ctx context.Context, _ int, f storage.WorkoutFilter) (*storage.SeasonSummaryResult, error) {
	body, err := c.get(ctx, "/api/v1/seasons/summary", scopeParams(f))
	if err != nil {
		return nil, err
	}

	var summary storage.SeasonSummaryResult
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("httpclient: decode season summary: %w", err)
	}
	return &summary, nil
}

func (c *HTTPClient) SeasonLeaderboard(ctx context.Context, f storage.WorkoutFilter) (*storage.SeasonLeaderboardResult, error) {
	body, err := c.get(ctx, "/api/v1/seasons/leaderboard", scopeParams(f))
	if err != nil {
		return nil, err
	}

	var board storage.SeasonLeaderboardResult
	if err := json.Unmarshal(body, &board); err != nil {
		return nil, fmt.Errorf("httpclient: decode season leaderboard: %w", err)
	}
	return &board, nil
}

func (c *HTTPClient) ListResultsForUser(ctx context.Context, _ int) ([]storage.ResultWithWorkout, error) {
	body, err := c.get(ctx, "/api/v1/results", nil)
	if err != nil {
		return nil, err
	}

	var results []storage.ResultWithWorkout
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("httpclient: decode results: %w", err)
	}
	return results, nil
}
