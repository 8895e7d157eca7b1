// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/playmatch/internal/cache"
	"github.com/tomtom215/playmatch/internal/config"
	"github.com/tomtom215/playmatch/internal/display"
	"github.com/tomtom215/playmatch/internal/logging"
	"github.com/tomtom215/playmatch/internal/metrics"
	"github.com/tomtom215/playmatch/internal/profile"
	"github.com/tomtom215/playmatch/internal/roster"
	"github.com/tomtom215/playmatch/internal/similarity"
)

// Handler contains dependencies for API handlers
type Handler struct {
	match     config.MatchConfig
	server    config.ServerConfig
	results   *cache.LRU[MatchResponse] // nil when caching is disabled
	startTime time.Time
}

// NewHandler creates a new API handler.
func NewHandler(cfg *config.Config) *Handler {
	h := &Handler{
		match:     cfg.Match,
		server:    cfg.Server,
		startTime: time.Now(),
	}
	if cfg.Server.CacheSize > 0 {
		h.results = cache.NewLRU[MatchResponse](cfg.Server.CacheSize, cfg.Server.CacheTTL)
	}
	return h
}

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"status":         "alive",
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	}, time.Now())
}

// Match ranks the request's candidates against its target.
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req MatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondDecodeError(w, r, err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	if h.server.MaxCandidates > 0 && len(req.Candidates) > h.server.MaxCandidates {
		respondError(w, r, http.StatusBadRequest, &APIError{
			Code:    ErrCodeValidation,
			Message: fmt.Sprintf("candidates must contain at most %d entries", h.server.MaxCandidates),
			Details: map[string]interface{}{"field": "candidates", "max": h.server.MaxCandidates},
		}, nil)
		return
	}

	k := h.match.DefaultK
	if req.K != nil {
		k = *req.K
	}
	k = h.match.ClampK(k)

	key := h.matchCacheKey(r.Context(), &req, k)
	if key != "" {
		if cached, ok := h.results.Get(key); ok {
			metrics.RecordCacheLookup(true)
			respondSuccess(w, r, cached, start)
			return
		}
		metrics.RecordCacheLookup(false)
	}

	specs := make([]profile.Spec, 0, len(req.Candidates)+1)
	specs = append(specs, req.Target)
	specs = append(specs, req.Candidates...)

	rs, err := roster.FromFile(roster.File{Target: req.Target.Name, Profiles: specs})
	if err != nil {
		respondError(w, r, http.StatusBadRequest, &APIError{
			Code:    ErrCodeValidation,
			Message: err.Error(),
		}, nil)
		return
	}

	matches, err := rs.FindSimilar(r.Context(), k, h.match.EffectiveWorkers())
	if err != nil {
		h.respondMatchError(w, r, err)
		return
	}

	resp := NewMatchResponse(req.Target.Name, k, matches)
	if key != "" {
		h.results.Add(key, resp)
	}
	respondSuccess(w, r, resp, start)
}

// matchCacheKey digests the validated request and effective k. It returns
// "" when caching is disabled or the request cannot be encoded.
func (h *Handler) matchCacheKey(ctx context.Context, req *MatchRequest, k int) string {
	if h.results == nil {
		return ""
	}
	data, err := json.Marshal(struct {
		Target     profile.Spec   `json:"target"`
		Candidates []profile.Spec `json:"candidates"`
		K          int            `json:"k"`
	}{req.Target, req.Candidates, k})
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Msg("Match cache key unavailable, skipping result cache")
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Similarity returns the score breakdown for a pair of profiles.
func (h *Handler) Similarity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SimilarityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondDecodeError(w, r, err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	a, err := profile.FromSpec(req.A)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, &APIError{Code: ErrCodeValidation, Message: "a: " + err.Error()}, nil)
		return
	}
	b, err := profile.FromSpec(req.B)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, &APIError{Code: ErrCodeValidation, Message: "b: " + err.Error()}, nil)
		return
	}

	breakdown := similarity.Compare(a, b)
	metrics.RecordSimilarity()

	logging.Ctx(r.Context()).Debug().
		Str("a", a.Name()).
		Str("b", b.Name()).
		Float64("score", breakdown.Composite).
		Msg("Compared profiles")

	respondSuccess(w, r, SimilarityResponse{
		A:         a.Name(),
		B:         b.Name(),
		Breakdown: breakdown,
		Percent:   display.Percent(breakdown.Composite),
	}, start)
}

func (h *Handler) respondDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, errBodyTooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	respondError(w, r, status, &APIError{Code: ErrCodeValidation, Message: err.Error()}, nil)
}

func (h *Handler) respondMatchError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, similarity.ErrInvalidArgument):
		respondError(w, r, http.StatusBadRequest, &APIError{
			Code:    ErrCodeInvalidArgument,
			Message: err.Error(),
			Details: map[string]interface{}{"field": "k"},
		}, nil)
	case errors.Is(err, roster.ErrNotEnoughProfiles):
		respondError(w, r, http.StatusBadRequest, &APIError{Code: ErrCodeValidation, Message: err.Error()}, nil)
	default:
		respondError(w, r, http.StatusInternalServerError, &APIError{
			Code:    ErrCodeInternal,
			Message: "Failed to rank candidates",
		}, err)
	}
}

// notFound is the router's JSON 404 handler.
func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, &APIError{Code: ErrCodeNotFound, Message: "Resource not found"}, nil)
}

// methodNotAllowed is the router's JSON 405 handler.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, &APIError{Code: ErrCodeMethodNotAllowed, Message: "Method not allowed"}, nil)
}

// tooManyRequests is the httprate limit handler.
func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusTooManyRequests, &APIError{Code: ErrCodeTooManyRequests, Message: "Rate limit exceeded"}, nil)
}
