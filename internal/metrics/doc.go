// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and are
exposed by the HTTP server at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Matching Metrics:
  - playmatch_similarity_scores_total: Pairwise similarity computations (counter)
  - playmatch_topk_requests_total: Top-k selections (counter)
    Labels: result (success, invalid_argument, error)
  - playmatch_topk_duration_seconds: Top-k selection latency (histogram)
  - playmatch_topk_candidates: Candidates considered per selection (histogram)
  - playmatch_match_cache_lookups_total: Match result cache lookups (counter)
    Labels: result (hit, miss)

API Metrics:
  - playmatch_api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - playmatch_api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - playmatch_api_active_requests: In-flight requests (gauge)

The similarity and top-k functions themselves are pure and record nothing.
Callers (the roster and the HTTP handlers) record after each selection:

	start := time.Now()
	matches, err := similarity.TopK(target, candidates, k)
	metrics.RecordTopK(len(candidates), time.Since(start), err)

Example PromQL queries:

	# Match request rate by outcome
	sum by (result) (rate(playmatch_topk_requests_total[5m]))

	# p95 selection latency
	histogram_quantile(0.95, rate(playmatch_topk_duration_seconds_bucket[5m]))

# Thread Safety

All recording functions are safe for concurrent use. The Prometheus client
library handles synchronization internally.

# Cardinality Management

Endpoint labels use chi route patterns (no path parameters or query strings)
and result labels are a fixed set, so series counts stay small.
*/
package metrics
