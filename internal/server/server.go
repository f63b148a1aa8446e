package server

import (
	"log/slog"
	"net/http"

	"github.com/CatoAkay/cf-benchmark/internal/ingest"
	"github.com/CatoAkay/cf-benchmark/internal/metrics"
	"github.com/CatoAkay/cf-benchmark/internal/storage"
	"github.com/go-chi/chi/v5"
	"tailscale.com/client/local"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	ingest *ingest.Provider
	log    *slog.Logger
	apiKey string
	lc     *local.Client
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		ingest: ingest.New(db, log),
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// SetTailscale wires the tsnet local client used to resolve caller
// identity. Without it every request runs as the local development user.
func (s *Server) SetTailscale(lc *local.Client) {
	s.lc = lc
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(MetricsMiddleware)
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealthz)
	s.router.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Ingest endpoints (API key required)
	s.router.Route("/api/v1/ingest", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/results", s.handleIngestResults)
	})

	// Athlete endpoints (identity from tsnet, or the dev user without it)
	s.router.Group(func(r chi.Router) {
		r.Use(s.identity)
		r.Get("/api/v1/me", s.handleMe)
		r.Post("/api/v1/results", s.handleSubmitResult)
		r.Get("/api/v1/results", s.handleMyResults)
		r.Get("/api/v1/workouts", s.handleListWorkouts)
		r.Get("/api/v1/workouts/{id}", s.handleGetWorkout)
		r.Get("/api/v1/workouts/{id}/rank", s.handleWorkoutRank)
		r.Get("/api/v1/workouts/{id}/leaderboard", s.handleWorkoutLeaderboard)
		r.Get("/api/v1/seasons/summary", s.handleSeasonSummary)
		r.Get("/api/v1/seasons/leaderboard", s.handleSeasonLeaderboard)
		r.Get("/api/v1/stats", s.handleDataStats)
	})
}
