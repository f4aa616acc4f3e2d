// Package metrics exposes counters distinguishing "no signal" from
// "broken dependency": every failure the recommendation paths convert to
// an empty list is counted here by stage, since callers never see it.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	StageSnapshot = "snapshot"
	StageScoring  = "scoring"
	StageModel    = "model"
	StageResolve  = "resolve"
	StageCache    = "cache"
)

var (
	SuppressedFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "musicrec_suppressed_failures_total",
		Help: "Failures converted to an empty recommendation list, by stage",
	}, []string{"stage"})

	RecommendationRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "musicrec_recommendation_requests_total",
		Help: "Recommendation requests served, by strategy",
	}, []string{"strategy"})

	RecommendationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "musicrec_recommendation_duration_seconds",
		Help:    "Recommendation request duration in seconds, by strategy",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"})
)

func init() {
	prometheus.MustRegister(SuppressedFailures, RecommendationRequests, RecommendationDuration)
}

// SuppressFailure records one fail-open conversion for a stage.
func SuppressFailure(stage string) {
	SuppressedFailures.WithLabelValues(stage).Inc()
}
