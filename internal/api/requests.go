// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/playmatch/internal/display"
	"github.com/tomtom215/playmatch/internal/profile"
	"github.com/tomtom215/playmatch/internal/similarity"
	"github.com/tomtom215/playmatch/internal/validation"
)

// maxRequestBodyBytes caps request bodies before decoding.
const maxRequestBodyBytes = 8 << 20

// MatchRequest ranks candidates against a target.
//
//	{
//	  "target": {"name": "alice", "games": [{"name": "Chess", "minutes": 120}]},
//	  "candidates": [{"name": "bob", "hourly": {"18": 60}}],
//	  "k": 5
//	}
type MatchRequest struct {
	Target     profile.Spec   `json:"target"`
	Candidates []profile.Spec `json:"candidates" validate:"required,min=1,dive"`

	// K is the number of matches to return. Omitted means the configured default.
	K *int `json:"k,omitempty"`
}

// MatchResult is one ranked candidate.
type MatchResult struct {
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
	Percent float64 `json:"percent"`
}

// MatchResponse is the data payload of POST /api/v1/match.
type MatchResponse struct {
	Target  string        `json:"target"`
	K       int           `json:"k"`
	Count   int           `json:"count"`
	Matches []MatchResult `json:"matches"`
}

// NewMatchResponse converts ranked matches to their response form.
func NewMatchResponse(target string, k int, matches []similarity.Match) MatchResponse {
	results := make([]MatchResult, len(matches))
	for i, m := range matches {
		results[i] = MatchResult{
			Name:    m.Name,
			Score:   m.Score,
			Percent: display.Percent(m.Score),
		}
	}
	return MatchResponse{
		Target:  target,
		K:       k,
		Count:   len(results),
		Matches: results,
	}
}

// SimilarityRequest scores one pair of profiles.
type SimilarityRequest struct {
	A profile.Spec `json:"a"`
	B profile.Spec `json:"b"`
}

// SimilarityResponse is the data payload of POST /api/v1/similarity.
type SimilarityResponse struct {
	A         string               `json:"a"`
	B         string               `json:"b"`
	Breakdown similarity.Breakdown `json:"breakdown"`
	Percent   float64              `json:"percent"`
}

// errBodyTooLarge is returned by decodeJSON when the body exceeds maxRequestBodyBytes.
var errBodyTooLarge = errors.New("request body too large")

// decodeJSON strictly decodes a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return errBodyTooLarge
		case errors.Is(err, io.EOF):
			return errors.New("request body is empty")
		default:
			return fmt.Errorf("invalid JSON body: %w", err)
		}
	}

	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes.
func validateRequest(v interface{}) *APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}
