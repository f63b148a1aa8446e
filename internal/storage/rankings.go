package storage

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/CatoAkay/cf-benchmark/internal/scoring"
)

// WorkoutRankResult is one athlete's placement against a workout's
// benchmark population.
type WorkoutRankResult struct {
	WorkoutID      uuid.UUID          `json:"workout_id"`
	Discipline     scoring.Discipline `json:"discipline"`
	Score          scoring.Score      `json:"score"`
	BeatenCount    int                `json:"beaten_count"`
	Rank           int                `json:"rank"`
	Points         int                `json:"points"`
	PopulationSize int                `json:"population_size"`
}

// WorkoutRank loads the athlete's result and the workout's benchmark and
// places the result against it. Returns ErrNoResult when the athlete never
// logged the workout; a missing workout surfaces as pgx.ErrNoRows.
func (db *DB) WorkoutRank(ctx context.Context, userID int, workoutID uuid.UUID) (*WorkoutRankResult, error) {
	workout, err := db.GetWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	result, err := db.GetResult(ctx, userID, workoutID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoResult
		}
		return nil, err
	}

	benchmark, err := db.GetBenchmark(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	score := result.Score()
	res := scoring.Rank(workout.Discipline, score, benchmarkScores(benchmark))
	return &WorkoutRankResult{
		WorkoutID:      workoutID,
		Discipline:     workout.Discipline,
		Score:          score,
		BeatenCount:    res.BeatenCount,
		Rank:           res.Rank,
		Points:         res.Points,
		PopulationSize: len(benchmark),
	}, nil
}

// LeaderboardEntry is one athlete's line on a workout leaderboard.
// DisplayRank orders logged athletes against each other; Rank and Points
// place each one against the benchmark population.
type LeaderboardEntry struct {
	DisplayRank int           `json:"display_rank"`
	Login       string        `json:"login"`
	DisplayName string        `json:"display_name"`
	Score       scoring.Score `json:"score"`
	BeatenCount int           `json:"beaten_count"`
	Rank        int           `json:"rank"`
	Points      int           `json:"points"`
}

// WorkoutLeaderboardResult is a workout's full field of logged athletes,
// best score first.
type WorkoutLeaderboardResult struct {
	Workout models.WorkoutRow  `json:"workout"`
	Entries []LeaderboardEntry `json:"entries"`
}

// WorkoutLeaderboard ranks every logged result for one workout.
func (db *DB) WorkoutLeaderboard(ctx context.Context, workoutID uuid.UUID) (*WorkoutLeaderboardResult, error) {
	workout, err := db.GetWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	benchmark, err := db.GetBenchmark(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	results, err := db.ListWorkoutResults(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	return &WorkoutLeaderboardResult{
		Workout: *workout,
		Entries: workoutStandings(workout.Discipline, benchmarkScores(benchmark), results),
	}, nil
}

// workoutStandings orders logged results by the discipline comparator and
// places each against the benchmark. Results must arrive ordered by login
// so the stable sort breaks comparator ties alphabetically. Athletes whose
// scores compare equal share a display rank; the next distinct score takes
// the next consecutive rank, with no gaps.
func workoutStandings(d scoring.Discipline, benchmark []scoring.Score, results []ResultWithUser) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(results))
	for _, r := range results {
		score := r.Score()
		res := scoring.Rank(d, score, benchmark)
		entries = append(entries, LeaderboardEntry{
			Login:       r.Login,
			DisplayName: r.DisplayName,
			Score:       score,
			BeatenCount: res.BeatenCount,
			Rank:        res.Rank,
			Points:      res.Points,
		})
	}

	slices.SortStableFunc(entries, func(a, b LeaderboardEntry) int {
		return scoring.Compare(d, a.Score, b.Score)
	})

	rank := 0
	for i := range entries {
		if i == 0 || scoring.Compare(d, entries[i].Score, entries[i-1].Score) != 0 {
			rank++
		}
		entries[i].DisplayRank = rank
	}
	return entries
}

// WorkoutStanding is one workout line of a season summary: the earned
// placement decorated with the workout's identity.
type WorkoutStanding struct {
	WorkoutID   uuid.UUID          `json:"workout_id"`
	Slug        string             `json:"slug"`
	Name        string             `json:"name"`
	Discipline  scoring.Discipline `json:"discipline"`
	BeatenCount int                `json:"beaten_count"`
	Rank        int                `json:"rank"`
	Points      int                `json:"points"`
}

// SeasonSummaryResult aggregates one athlete's points across a workout
// scope. WorkoutsInScope counts every workout the filter matched;
// CompletedWorkouts only those the athlete logged.
type SeasonSummaryResult struct {
	Season            int               `json:"season,omitempty"`
	Competition       string            `json:"competition,omitempty"`
	Division          string            `json:"division,omitempty"`
	TotalPoints       int               `json:"total_points"`
	CompletedWorkouts int               `json:"completed_workouts"`
	WorkoutsInScope   int               `json:"workouts_in_scope"`
	PerWorkout        []WorkoutStanding `json:"per_workout"`
}

// SeasonSummary computes one athlete's season totals over the workouts the
// filter matches. Workouts without a logged result add nothing; they are
// skipped, not counted as zeros.
func (db *DB) SeasonSummary(ctx context.Context, userID int, f WorkoutFilter) (*SeasonSummaryResult, error) {
	workouts, err := db.ListWorkouts(ctx, f)
	if err != nil {
		return nil, err
	}
	ids := workoutIDs(workouts)

	results, err := db.ListUserResults(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	benchmarks, err := db.GetBenchmarksForWorkouts(ctx, ids)
	if err != nil {
		return nil, err
	}

	season := make([]scoring.SeasonWorkout, 0, len(workouts))
	for _, w := range workouts {
		sw := scoring.SeasonWorkout{
			WorkoutID:  w.ID,
			Discipline: w.Discipline,
			Benchmark:  benchmarkScores(benchmarks[w.ID]),
		}
		if r, ok := results[w.ID]; ok {
			score := r.Score()
			sw.UserScore = &score
		}
		season = append(season, sw)
	}
	summary := scoring.Summarize(season)

	byID := make(map[uuid.UUID]models.WorkoutRow, len(workouts))
	for _, w := range workouts {
		byID[w.ID] = w
	}
	per := make([]WorkoutStanding, 0, len(summary.PerWorkout))
	for _, line := range summary.PerWorkout {
		w := byID[line.WorkoutID]
		per = append(per, WorkoutStanding{
			WorkoutID:   line.WorkoutID,
			Slug:        w.Slug,
			Name:        w.Name,
			Discipline:  w.Discipline,
			BeatenCount: line.BeatenCount,
			Rank:        line.Rank,
			Points:      line.Points,
		})
	}

	return &SeasonSummaryResult{
		Season:            f.Season,
		Competition:       f.Competition,
		Division:          f.Division,
		TotalPoints:       summary.TotalPoints,
		CompletedWorkouts: summary.CompletedWorkouts,
		WorkoutsInScope:   len(workouts),
		PerWorkout:        per,
	}, nil
}

// SeasonStanding is one athlete's line on a season leaderboard.
type SeasonStanding struct {
	DisplayRank       int    `json:"display_rank"`
	Login             string `json:"login"`
	DisplayName       string `json:"display_name"`
	TotalPoints       int    `json:"total_points"`
	CompletedWorkouts int    `json:"completed_workouts"`
}

// SeasonLeaderboardResult is every athlete with at least one logged result
// in the scope, highest total first.
type SeasonLeaderboardResult struct {
	Season      int              `json:"season,omitempty"`
	Competition string           `json:"competition,omitempty"`
	Division    string           `json:"division,omitempty"`
	Athletes    []SeasonStanding `json:"athletes"`
}

// SeasonLeaderboard totals every athlete's points across the workouts the
// filter matches and orders the field.
func (db *DB) SeasonLeaderboard(ctx context.Context, f WorkoutFilter) (*SeasonLeaderboardResult, error) {
	workouts, err := db.ListWorkouts(ctx, f)
	if err != nil {
		return nil, err
	}
	ids := workoutIDs(workouts)

	benchmarks, err := db.GetBenchmarksForWorkouts(ctx, ids)
	if err != nil {
		return nil, err
	}
	results, err := db.ListResultsForWorkouts(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &SeasonLeaderboardResult{
		Season:      f.Season,
		Competition: f.Competition,
		Division:    f.Division,
		Athletes:    seasonStandings(workouts, benchmarks, results),
	}, nil
}

// seasonStandings sums each athlete's points across the scope and orders
// the field by total points descending, logins alphabetical on ties.
// Athletes with equal totals share a display rank.
func seasonStandings(workouts []models.WorkoutRow, benchmarks map[uuid.UUID][]models.BenchmarkRow, results []ResultWithUser) []SeasonStanding {
	type athlete struct {
		login       string
		displayName string
		scores      map[uuid.UUID]scoring.Score
	}
	byUser := make(map[int]*athlete)
	var order []int
	for _, r := range results {
		a, ok := byUser[r.UserID]
		if !ok {
			a = &athlete{
				login:       r.Login,
				displayName: r.DisplayName,
				scores:      make(map[uuid.UUID]scoring.Score),
			}
			byUser[r.UserID] = a
			order = append(order, r.UserID)
		}
		a.scores[r.WorkoutID] = r.Score()
	}

	standings := make([]SeasonStanding, 0, len(order))
	for _, uid := range order {
		a := byUser[uid]
		season := make([]scoring.SeasonWorkout, 0, len(workouts))
		for _, w := range workouts {
			sw := scoring.SeasonWorkout{
				WorkoutID:  w.ID,
				Discipline: w.Discipline,
				Benchmark:  benchmarkScores(benchmarks[w.ID]),
			}
			if s, ok := a.scores[w.ID]; ok {
				score := s
				sw.UserScore = &score
			}
			season = append(season, sw)
		}
		summary := scoring.Summarize(season)
		standings = append(standings, SeasonStanding{
			Login:             a.login,
			DisplayName:       a.displayName,
			TotalPoints:       summary.TotalPoints,
			CompletedWorkouts: summary.CompletedWorkouts,
		})
	}

	slices.SortStableFunc(standings, func(a, b SeasonStanding) int {
		if c := cmp.Compare(b.TotalPoints, a.TotalPoints); c != 0 {
			return c
		}
		return strings.Compare(a.Login, b.Login)
	})

	rank := 0
	for i := range standings {
		if i == 0 || standings[i].TotalPoints != standings[i-1].TotalPoints {
			rank++
		}
		standings[i].DisplayRank = rank
	}
	return standings
}

func benchmarkScores(rows []models.BenchmarkRow) []scoring.Score {
	scores := make([]scoring.Score, 0, len(rows))
	for _, r := range rows {
		scores = append(scores, r.Score())
	}
	return scores
}

func workoutIDs(workouts []models.WorkoutRow) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(workouts))
	for _, w := range workouts {
		ids = append(ids, w.ID)
	}
	return ids
}
