// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

// Package roster holds a caller-owned collection of player profiles and the
// current target player.
//
// A Roster is a plain value passed to whoever needs it; there is no package
// state. It is not safe for concurrent mutation. FindSimilar ranks every
// other profile against the target with the similarity package and records
// the outcome in the playmatch_topk_* metrics.
//
// Rosters can be loaded from YAML or JSON files:
//
//	target: alice
//	profiles:
//	  - name: alice
//	    games:
//	      - {name: Chess, minutes: 120}
//	    hourly: {18: 60, 19: 60}
//	  - name: bob
//	    games:
//	      - {name: Chess, minutes: 90}
package roster
