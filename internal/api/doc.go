// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

/*
Package api provides the stateless HTTP matching API.

Every request carries its own target and candidate profiles, so the server
holds no user set between requests.

Endpoints:

	POST /api/v1/match          rank candidates against a target
	POST /api/v1/similarity     score breakdown for one pair
	GET  /api/v1/health/live    liveness check
	GET  /metrics               Prometheus exposition

Routing uses chi (github.com/go-chi/chi/v5) with go-chi/cors for CORS and
go-chi/httprate for per-IP rate limiting. Request and response bodies are
encoded with goccy/go-json. All responses share one envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "query_time_ms": 1, "request_id": "..."}
	}

Errors set status to "error" and carry {"code", "message", "details"}:

	VALIDATION_ERROR   400  malformed body or profile constraint violated
	INVALID_ARGUMENT   400  negative k
	INTERNAL_ERROR     500  anything else

Scoring is deterministic, so match responses are cached in an LRU keyed by
a SHA-256 digest of the request and effective k (server.cache_size,
server.cache_ttl). A cache size of 0 disables it.

Example:

	handler := api.NewHandler(cfg)
	router := api.NewRouter(handler, cfg)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.Setup()}
*/
package api
