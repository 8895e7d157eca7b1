// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package similarity

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/tomtom215/playmatch/internal/profile"
)

func TestTopK_Scenario(t *testing.T) {
	t.Parallel()

	target, x, y := scenarioProfiles(t)

	got, err := TopK(target, []*profile.Profile{x, y}, 1)
	if err != nil {
		t.Fatalf("TopK() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(TopK()) = %d, want 1", len(got))
	}
	if got[0].Name != "X" || !approxEqual(got[0].Score, 0.8) {
		t.Errorf("TopK()[0] = %+v, want {X 0.8}", got[0])
	}
}

func TestTopK_K(t *testing.T) {
	t.Parallel()

	target, x, y := scenarioProfiles(t)
	candidates := []*profile.Profile{y, x}

	tests := []struct {
		name      string
		k         int
		wantNames []string
		wantErr   bool
	}{
		{name: "zero", k: 0, wantNames: []string{}},
		{name: "negative", k: -1, wantErr: true},
		{name: "one", k: 1, wantNames: []string{"X"}},
		{name: "equal to len", k: 2, wantNames: []string{"X", "Y"}},
		{name: "exceeds len", k: 10, wantNames: []string{"X", "Y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := TopK(target, candidates, tt.k)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("TopK(k=%d) error = %v, want ErrInvalidArgument", tt.k, err)
				}
				if got != nil {
					t.Errorf("TopK(k=%d) = %v, want nil result on error", tt.k, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("TopK(k=%d) error = %v", tt.k, err)
			}
			if got == nil {
				t.Fatalf("TopK(k=%d) = nil, want non-nil slice", tt.k)
			}
			if names := matchNames(got); !slices.Equal(names, tt.wantNames) {
				t.Errorf("TopK(k=%d) names = %v, want %v", tt.k, names, tt.wantNames)
			}
		})
	}
}

func TestTopK_NilTarget(t *testing.T) {
	t.Parallel()

	_, x, _ := scenarioProfiles(t)
	if _, err := TopK(nil, []*profile.Profile{x}, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("TopK(nil target) error = %v, want ErrInvalidArgument", err)
	}
}

func TestTopK_ExcludesTargetByName(t *testing.T) {
	t.Parallel()

	target, x, y := scenarioProfiles(t)

	// Distinct object with the target's name and different data.
	impostor := buildProfile(t, "target", []gameEntry{{"Chess", 60}, {"Go", 60}}, map[int]int{18: 60, 19: 60})

	got, err := TopK(target, []*profile.Profile{target, impostor, x, nil, y}, 10)
	if err != nil {
		t.Fatalf("TopK() error = %v", err)
	}
	for _, m := range got {
		if m.Name == "target" {
			t.Errorf("TopK() returned the target: %+v", got)
		}
	}
	if len(got) != 2 {
		t.Errorf("len(TopK()) = %d, want 2", len(got))
	}
}

func TestTopK_TieBreakByName(t *testing.T) {
	t.Parallel()

	target := buildProfile(t, "target", []gameEntry{{"Chess", 60}}, map[int]int{10: 60})

	names := []string{"delta", "alpha", "echo", "charlie", "bravo"}
	want := []string{"alpha", "bravo", "charlie"}

	rng := rand.New(rand.NewPCG(3, 9))
	for i := range 20 {
		candidates := make([]*profile.Profile, len(names))
		for j, n := range names {
			candidates[j] = buildProfile(t, n, []gameEntry{{"Chess", 60}}, map[int]int{10: 60})
		}
		rng.Shuffle(len(candidates), func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})

		got, err := TopK(target, candidates, 3)
		if err != nil {
			t.Fatalf("TopK() error = %v", err)
		}
		if gotNames := matchNames(got); !slices.Equal(gotNames, want) {
			t.Fatalf("shuffle %d: TopK() names = %v, want %v", i, gotNames, want)
		}
	}
}

func TestTopK_SortedDescending(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(11, 5))
	target := randomProfile(t, rng, "target")

	candidates := make([]*profile.Profile, 200)
	for i := range candidates {
		candidates[i] = randomProfile(t, rng, fmt.Sprintf("p%03d", i))
	}

	got, err := TopK(target, candidates, len(candidates))
	if err != nil {
		t.Fatalf("TopK() error = %v", err)
	}
	if len(got) != len(candidates) {
		t.Fatalf("len(TopK()) = %d, want %d", len(got), len(candidates))
	}
	if !slices.IsSortedFunc(got, compareMatches) {
		t.Errorf("TopK() result not ordered by score desc, name asc")
	}

	// Bounded selection agrees with a full sort for every k.
	full := slices.Clone(got)
	for _, k := range []int{1, 5, 17, 199} {
		top, err := TopK(target, candidates, k)
		if err != nil {
			t.Fatalf("TopK(k=%d) error = %v", k, err)
		}
		if !slices.Equal(top, full[:k]) {
			t.Errorf("TopK(k=%d) = %v, want prefix of full ranking", k, top)
		}
	}
}

func TestTopK_DoesNotMutateCandidates(t *testing.T) {
	t.Parallel()

	target, x, y := scenarioProfiles(t)
	candidates := []*profile.Profile{y, x}

	if _, err := TopK(target, candidates, 2); err != nil {
		t.Fatalf("TopK() error = %v", err)
	}
	if candidates[0] != y || candidates[1] != x {
		t.Error("TopK() reordered the candidates slice")
	}
}

func TestTopKParallel_MatchesSerial(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(21, 8))
	target := randomProfile(t, rng, "target")

	candidates := make([]*profile.Profile, 300)
	for i := range candidates {
		// Repeated names produce score ties across chunks.
		candidates[i] = randomProfile(t, rng, fmt.Sprintf("p%02d", i%60))
	}

	for _, workers := range []int{0, 1, 2, 4, 7, 500} {
		for _, k := range []int{0, 1, 10, 300, 1000} {
			want, err := TopK(target, candidates, k)
			if err != nil {
				t.Fatalf("TopK(k=%d) error = %v", k, err)
			}
			got, err := TopKParallel(context.Background(), target, candidates, k, workers)
			if err != nil {
				t.Fatalf("TopKParallel(k=%d, workers=%d) error = %v", k, workers, err)
			}
			if !slices.Equal(got, want) {
				t.Errorf("TopKParallel(k=%d, workers=%d) differs from TopK", k, workers)
			}
		}
	}
}

func TestTopKParallel_Errors(t *testing.T) {
	t.Parallel()

	target, x, y := scenarioProfiles(t)
	candidates := []*profile.Profile{x, y}

	if _, err := TopKParallel(context.Background(), target, candidates, -1, 4); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("TopKParallel(k=-1) error = %v, want ErrInvalidArgument", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := TopKParallel(ctx, target, candidates, 1, 4); !errors.Is(err, context.Canceled) {
		t.Errorf("TopKParallel(cancelled ctx) error = %v, want context.Canceled", err)
	}
}

func matchNames(ms []Match) []string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name
	}
	return names
}

func compareMatches(a, b Match) int {
	switch {
	case ranksBefore(a, b):
		return -1
	case ranksBefore(b, a):
		return 1
	default:
		return 0
	}
}

func BenchmarkTopK(b *testing.B) {
	rng := rand.New(rand.NewPCG(5, 5))
	target := randomProfile(b, rng, "target")
	candidates := make([]*profile.Profile, 10000)
	for i := range candidates {
		candidates[i] = randomProfile(b, rng, fmt.Sprintf("p%d", i))
	}

	for b.Loop() {
		_, _ = TopK(target, candidates, 10)
	}
}
