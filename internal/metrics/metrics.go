// Package metrics exposes Prometheus instrumentation for the benchmark
// service. Metrics live on a custom registry so the scrape endpoint serves
// only service metrics, not the default Go collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cfbench"

var registry = prometheus.NewRegistry()

var (
	httpRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	resultsSubmitted = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "results_submitted_total",
		Help:      "Scores accepted and stored, submissions and ingest combined.",
	})

	resultsRejected = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "results_rejected_total",
		Help:      "Submissions rejected by score validation.",
	})

	rankQueries = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rank_queries_total",
		Help:      "Rank computations served, single workout and season wide.",
	})

	leaderboardQueries = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leaderboard_queries_total",
		Help:      "Leaderboard requests served.",
	})
)

// RecordHTTPRequest counts one request against its route pattern.
func RecordHTTPRequest(route, method, status string) {
	httpRequests.WithLabelValues(route, method, status).Inc()
}

// RecordHTTPDuration records one request's wall time against its route.
func RecordHTTPDuration(route string, seconds float64) {
	httpDuration.WithLabelValues(route).Observe(seconds)
}

// RecordResultSubmitted counts one accepted score.
func RecordResultSubmitted() {
	resultsSubmitted.Inc()
}

// RecordResultRejected counts one score rejected by validation.
func RecordResultRejected() {
	resultsRejected.Inc()
}

// RecordRankQuery counts one rank computation.
func RecordRankQuery() {
	rankQueries.Inc()
}

// RecordLeaderboardQuery counts one leaderboard request.
func RecordLeaderboardQuery() {
	leaderboardQueries.Inc()
}

// Handler returns the scrape endpoint for the service registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
