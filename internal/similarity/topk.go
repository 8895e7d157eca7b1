// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package similarity

import (
	"container/heap"
	"fmt"

	"github.com/tomtom215/playmatch/internal/profile"
)

// Match is a ranked candidate: its name and raw composite score in [0,1].
type Match struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// ranksBefore reports whether a is ordered ahead of b in a result list:
// higher score first, then name ascending.
func ranksBefore(a, b Match) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Name < b.Name
}

// matchHeap is a min-heap with the lowest-ranked match at the root.
type matchHeap []Match

func (h matchHeap) Len() int           { return len(h) }
func (h matchHeap) Less(i, j int) bool { return ranksBefore(h[j], h[i]) }
func (h matchHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *matchHeap) Push(x any)        { *h = append(*h, x.(Match)) }
func (h *matchHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// offer inserts m if the heap holds fewer than k entries, or replaces the
// root when m ranks ahead of it.
func (h *matchHeap) offer(m Match, k int) {
	if h.Len() < k {
		heap.Push(h, m)
		return
	}
	if ranksBefore(m, (*h)[0]) {
		(*h)[0] = m
		heap.Fix(h, 0)
	}
}

// drain empties the heap into a slice ordered best first.
func (h *matchHeap) drain() []Match {
	out := make([]Match, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(Match)
	}
	return out
}

// validateTopK checks the arguments shared by TopK and TopKParallel.
func validateTopK(target *profile.Profile, k int) error {
	if k < 0 {
		return fmt.Errorf("%w: k must be >= 0, got %d", ErrInvalidArgument, k)
	}
	if target == nil {
		return fmt.Errorf("%w: target profile is required", ErrInvalidArgument)
	}
	return nil
}

// TopK returns the k candidates most similar to target, best first.
//
// Candidates named like the target are excluded, as are nil entries. The
// result holds min(k, qualifying candidates) entries; equal scores are
// ordered by name ascending. A negative k returns ErrInvalidArgument.
// Neither target nor candidates are modified.
func TopK(target *profile.Profile, candidates []*profile.Profile, k int) ([]Match, error) {
	if err := validateTopK(target, k); err != nil {
		return nil, err
	}
	if k == 0 {
		return []Match{}, nil
	}

	h := make(matchHeap, 0, min(k, len(candidates)))
	for _, c := range candidates {
		if c == nil || c.Name() == target.Name() {
			continue
		}
		h.offer(Match{Name: c.Name(), Score: Score(target, c)}, k)
	}
	return h.drain(), nil
}
