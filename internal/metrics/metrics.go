// Package metrics provides Prometheus instrumentation for the matching
// API: counters for matching runs and evaluated candidates, and a
// histogram for matching-run latency.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MatchRunsTotal counts matching runs, labeled by outcome:
	// "ok", "not_found" or "error".
	MatchRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roommate_match_runs_total",
		Help: "Total number of matching runs",
	}, []string{"outcome"})

	// CandidatesEvaluated counts candidates fed through the scoring
	// pipeline across all matching runs.
	CandidatesEvaluated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roommate_candidates_evaluated_total",
		Help: "Total number of candidates scored",
	})

	// MatchDuration records the duration of a full matching run in seconds.
	MatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "roommate_match_duration_seconds",
		Help:    "Duration of a full matching run",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	})
)

func init() {
	prometheus.MustRegister(
		MatchRunsTotal,
		CandidatesEvaluated,
		MatchDuration,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
