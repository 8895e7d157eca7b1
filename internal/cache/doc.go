// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

/*
Package cache provides a thread-safe, size-bounded LRU cache with TTL support.

The matching API is stateless and scoring is deterministic, so identical
match requests produce identical rankings. The API caches ranked results
keyed by a digest of the normalized request, skipping the scorer for
repeated queries.

# Usage Example

	results := cache.NewLRU[api.MatchResponse](1024, time.Minute)

	if resp, ok := results.Get(key); ok {
	    return resp
	}
	resp := rank(req)
	results.Add(key, resp)

# Eviction

Entries are evicted when the cache exceeds its capacity (least recently
used first) and lazily when a lookup finds an expired entry.
CleanupExpired sweeps all expired entries at once.

# Thread Safety

All methods are safe for concurrent use. Get takes the write lock because
it reorders the recency list.
*/
package cache
