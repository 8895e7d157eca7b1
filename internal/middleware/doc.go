// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

/*
Package middleware provides HTTP middleware components for the matching API.

Key Components:

  - Request ID: UUID-based request tracking, propagated to the logging context
  - Prometheus Metrics: request counts, latency and in-flight gauge
  - Access Log: one structured zerolog line per request

All middleware uses the func(http.Handler) http.Handler shape so it composes
with chi's r.Use():

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

Metric labels use the matched chi route pattern rather than the raw URL path,
so unknown paths collapse into a single "unmatched" series.
*/
package middleware
