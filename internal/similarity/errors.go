// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package similarity

import "errors"

// ErrInvalidArgument is returned when a selection is requested with an
// unusable argument, such as a negative k or a missing target.
var ErrInvalidArgument = errors.New("invalid argument")
