// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

// Package similarity scores how alike two players are and selects the
// most similar players for a target.
//
// # Scoring
//
// Compare combines three independently normalized signals, each in [0,1]:
//
//   - Catalog: Jaccard index over the distinct game names.
//   - Magnitude: 1 - |totalA - totalB| / max(totalA, totalB).
//   - Temporal: cosine similarity of the 24-hour activity vectors.
//
// The composite is 0.4*Catalog + 0.3*Magnitude + 0.3*Temporal.
//
// Degenerate inputs never produce NaN:
//
//   - No shared games (including two empty catalogs): Catalog = 0.
//   - Both totals zero: Magnitude = 1, two idle players are identical
//     on this axis.
//   - Either hourly vector all zero: Temporal = 0.
//
// # Selection
//
// TopK makes a single pass over the candidates and keeps the k best in a
// bounded min-heap, giving O(n log k). Results are ordered by score
// descending, then by name ascending, so equal scores always come back in
// the same order. The target is excluded by exact name match.
//
// TopKParallel scores candidates across a worker pool and merges into the
// same bounded heap behind a mutex; it returns exactly what TopK returns.
//
// # Thread Safety
//
// Compare, Score and TopK are pure and safe for concurrent use as long as
// the profiles are not mutated while scoring.
package similarity
