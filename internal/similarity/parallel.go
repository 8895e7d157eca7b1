// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package similarity

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/playmatch/internal/profile"
)

// TopKParallel is TopK with candidate scoring split across workers.
//
// Each worker scores a contiguous chunk of candidates. Insertions into the
// shared k-bounded heap are serialized by a mutex, so the result is
// identical to TopK for the same inputs. Workers <= 1 runs TopK directly.
// Cancelling ctx stops the workers and returns ctx.Err().
func TopKParallel(ctx context.Context, target *profile.Profile, candidates []*profile.Profile, k, workers int) ([]Match, error) {
	if err := validateTopK(target, k); err != nil {
		return nil, err
	}
	if workers <= 1 || len(candidates) < 2 {
		return TopK(target, candidates, k)
	}
	if k == 0 {
		return []Match{}, nil
	}

	workers = min(workers, len(candidates))
	chunkSize := (len(candidates) + workers - 1) / workers

	var mu sync.Mutex
	h := make(matchHeap, 0, min(k, len(candidates)))

	g, gCtx := errgroup.WithContext(ctx)
	for start := 0; start < len(candidates); start += chunkSize {
		chunk := candidates[start:min(start+chunkSize, len(candidates))]
		g.Go(func() error {
			for _, c := range chunk {
				if err := gCtx.Err(); err != nil {
					return err
				}
				if c == nil || c.Name() == target.Name() {
					continue
				}

				m := Match{Name: c.Name(), Score: Score(target, c)}

				mu.Lock()
				h.offer(m, k)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return h.drain(), nil
}
