package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/CatoAkay/cf-benchmark/internal/metrics"
	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/CatoAkay/cf-benchmark/internal/scoring"
	"github.com/CatoAkay/cf-benchmark/internal/storage"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Pool.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}

func (s *Server) handleSubmitResult(w http.ResponseWriter, r *http.Request) {
	var sub models.ResultSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	workoutID, err := uuid.Parse(sub.WorkoutID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}
	if err := scoring.CheckRanges(sub.Score); err != nil {
		metrics.RecordResultRejected()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	workout, err := s.db.GetWorkout(r.Context(), workoutID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
			return
		}
		s.log.Error("workout lookup failed", "workout_id", workoutID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "workout lookup failed"})
		return
	}

	// The discipline decides which score field must be present; anything
	// extra is kept as submitted.
	if err := scoring.Validate(workout.Discipline, sub.Score); err != nil {
		metrics.RecordResultRejected()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	row := models.ResultRow{UserID: userIDFromContext(r), WorkoutID: workoutID}
	row.FromScore(sub.Score)
	if err := s.db.UpsertResult(r.Context(), row); err != nil {
		s.log.Error("result upsert failed", "workout_id", workoutID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storing result failed"})
		return
	}
	metrics.RecordResultSubmitted()

	rank, err := s.db.WorkoutRank(r.Context(), row.UserID, workoutID)
	if err != nil {
		s.log.Error("rank computation failed", "workout_id", workoutID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "rank computation failed"})
		return
	}
	writeJSON(w, http.StatusOK, rank)
}

func (s *Server) handleMyResults(w http.ResponseWriter, r *http.Request) {
	results, err := s.db.ListResultsForUser(r.Context(), userIDFromContext(r))
	if err != nil {
		s.log.Error("result listing failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "listing results failed"})
		return
	}
	if results == nil {
		results = []storage.ResultWithWorkout{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	workouts, err := s.db.ListWorkouts(r.Context(), f)
	if err != nil {
		s.log.Error("workout listing failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "listing workouts failed"})
		return
	}
	if workouts == nil {
		workouts = []models.WorkoutRow{}
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	workoutID, ok := workoutIDParam(w, r)
	if !ok {
		return
	}

	detail, err := s.db.GetWorkoutDetail(r.Context(), workoutID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
			return
		}
		s.log.Error("workout lookup failed", "workout_id", workoutID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "workout lookup failed"})
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleWorkoutRank(w http.ResponseWriter, r *http.Request) {
	workoutID, ok := workoutIDParam(w, r)
	if !ok {
		return
	}

	rank, err := s.db.WorkoutRank(r.Context(), userIDFromContext(r), workoutID)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		case errors.Is(err, storage.ErrNoResult):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no result logged for workout"})
		default:
			s.log.Error("rank query failed", "workout_id", workoutID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "rank query failed"})
		}
		return
	}
	metrics.RecordRankQuery()
	writeJSON(w, http.StatusOK, rank)
}

func (s *Server) handleWorkoutLeaderboard(w http.ResponseWriter, r *http.Request) {
	workoutID, ok := workoutIDParam(w, r)
	if !ok {
		return
	}

	board, err := s.db.WorkoutLeaderboard(r.Context(), workoutID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
			return
		}
		s.log.Error("leaderboard query failed", "workout_id", workoutID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "leaderboard query failed"})
		return
	}
	metrics.RecordLeaderboardQuery()
	writeJSON(w, http.StatusOK, board)
}

func (s *Server) handleSeasonSummary(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	summary, err := s.db.SeasonSummary(r.Context(), userIDFromContext(r), f)
	if err != nil {
		s.log.Error("season summary failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "season summary failed"})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSeasonLeaderboard(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	board, err := s.db.SeasonLeaderboard(r.Context(), f)
	if err != nil {
		s.log.Error("season leaderboard failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "season leaderboard failed"})
		return
	}
	metrics.RecordLeaderboardQuery()
	writeJSON(w, http.StatusOK, board)
}

func (s *Server) handleDataStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetDataStats(r.Context())
	if err != nil {
		s.log.Error("stats query failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "stats query failed"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleIngestResults(w http.ResponseWriter, r *http.Request) {
	var batch models.ResultBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	result, err := s.ingest.Ingest(r.Context(), &batch)
	if err != nil {
		s.log.Error("ingest error", "athlete", batch.Athlete, "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// workoutIDParam parses the {id} route parameter, writing a 400 on failure.
func workoutIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	workoutID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return uuid.Nil, false
	}
	return workoutID, true
}

// filterFromQuery reads the optional season, competition and division query
// parameters. Competition and division accept the same spelling variants as
// the ingest path, so "Quarter-Finals" and "quarterfinals" select the same
// workouts.
func filterFromQuery(r *http.Request) (storage.WorkoutFilter, error) {
	var f storage.WorkoutFilter

	if raw := r.URL.Query().Get("season"); raw != "" {
		season, err := strconv.Atoi(raw)
		if err != nil {
			return f, fmt.Errorf("invalid season %q", raw)
		}
		f.Season = season
	}
	if raw := r.URL.Query().Get("competition"); raw != "" {
		comp, ok := models.NormalizeCompetition(raw)
		if !ok {
			return f, fmt.Errorf("unknown competition %q", raw)
		}
		f.Competition = comp
	}
	if raw := r.URL.Query().Get("division"); raw != "" {
		div, ok := models.NormalizeDivision(raw)
		if !ok {
			return f, fmt.Errorf("unknown division %q", raw)
		}
		f.Division = div
	}
	return f, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
