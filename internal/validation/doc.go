// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by every acquisition path: profile
// specs read from roster files, profile specs decoded from HTTP bodies, and
// the API request envelopes that carry them.
//
// # Custom Tags
//
//   - notblank: string must contain a non-whitespace character
//   - hourofday: integer must be an hour of day (0-23)
//
// # Field Names
//
// Errors report fields by their JSON name and full path, so a bad entry
// nested in a candidate list reads "candidates[2].games[0].minutes" rather
// than "Minutes".
//
// # Usage
//
//	type MatchRequest struct {
//	    Target     profile.Spec   `json:"target"`
//	    Candidates []profile.Spec `json:"candidates" validate:"required,dive"`
//	    K          *int           `json:"k"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
