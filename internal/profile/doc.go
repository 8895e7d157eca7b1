// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

// Package profile defines the player profile aggregate used by the matcher.
//
// A Profile records three behavioral signals for one player:
//
//   - Games: an ordered list of (game name, minutes played) entries.
//     Duplicate names are kept as separate entries.
//   - Hourly: minutes played per hour of day (0-23). Repeated additions
//     for the same hour accumulate.
//   - TotalMinutes: the sum of all game durations, maintained on every
//     AddGame call.
//
// # Builder Operations
//
// Profiles are built with NewProfile and then grown with AddGame and
// AddHourly. Both return the updated aggregate so callers can check the
// running total after each step:
//
//	p, err := profile.NewProfile("alice")
//	total, err := p.AddGame("Chess", 120)
//	minutes, err := p.AddHourly(18, 60)
//
// A rejected call (negative minutes, hour out of range) returns
// ErrInvalidProfile and leaves the profile unchanged.
//
// # Acquisition
//
// Spec is the serializable form used by roster files and the HTTP API.
// FromSpec validates a Spec with go-playground/validator and builds the
// Profile through the same builder operations.
package profile
