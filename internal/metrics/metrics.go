// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Top-k result label values.
const (
	ResultSuccess         = "success"
	ResultInvalidArgument = "invalid_argument"
	ResultError           = "error"
)

var (
	// Matching Metrics
	SimilarityScoresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playmatch_similarity_scores_total",
			Help: "Total number of pairwise similarity computations",
		},
	)

	TopKRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playmatch_topk_requests_total",
			Help: "Total number of top-k selections by result",
		},
		[]string{"result"}, // "success", "invalid_argument", "error"
	)

	TopKDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "playmatch_topk_duration_seconds",
			Help:    "Duration of top-k selections in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	TopKCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "playmatch_topk_candidates",
			Help:    "Number of candidate profiles considered per top-k selection",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		},
	)

	MatchCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playmatch_match_cache_lookups_total",
			Help: "Total number of match result cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playmatch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playmatch_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "playmatch_api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordTopK records a completed top-k selection. Each considered candidate
// counts as one similarity computation.
func RecordTopK(candidates int, duration time.Duration, result string) {
	TopKRequestsTotal.WithLabelValues(result).Inc()
	if result != ResultSuccess {
		return
	}
	TopKDuration.Observe(duration.Seconds())
	TopKCandidates.Observe(float64(candidates))
	SimilarityScoresTotal.Add(float64(candidates))
}

// RecordSimilarity records a single pairwise comparison
func RecordSimilarity() {
	SimilarityScoresTotal.Inc()
}

// RecordCacheLookup records a match result cache hit or miss
func RecordCacheLookup(hit bool) {
	if hit {
		MatchCacheLookupsTotal.WithLabelValues("hit").Inc()
	} else {
		MatchCacheLookupsTotal.WithLabelValues("miss").Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
