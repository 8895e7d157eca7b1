// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package similarity

import (
	"gonum.org/v1/gonum/floats"

	"github.com/tomtom215/playmatch/internal/profile"
)

// Composite weights. They sum to 1.0, so the composite stays in [0,1].
const (
	CatalogWeight   = 0.4
	MagnitudeWeight = 0.3
	TemporalWeight  = 0.3
)

// Breakdown is the per-signal result of comparing two profiles.
type Breakdown struct {
	// Catalog is the Jaccard index over distinct game names.
	Catalog float64 `json:"catalog"`

	// Magnitude compares total playtime.
	Magnitude float64 `json:"magnitude"`

	// Temporal is the cosine similarity of the hourly activity vectors.
	Temporal float64 `json:"temporal"`

	// Composite is the weighted combination of the three signals.
	Composite float64 `json:"composite"`
}

// Compare scores two profiles on every signal. It is symmetric and does
// not modify either profile.
func Compare(a, b *profile.Profile) Breakdown {
	bd := Breakdown{
		Catalog:   catalogSimilarity(a.GameNames(), b.GameNames()),
		Magnitude: magnitudeSimilarity(a.TotalMinutes(), b.TotalMinutes()),
		Temporal:  temporalSimilarity(a.HourlyVector(), b.HourlyVector()),
	}
	bd.Composite = clamp01(CatalogWeight*bd.Catalog +
		MagnitudeWeight*bd.Magnitude +
		TemporalWeight*bd.Temporal)
	return bd
}

// Score returns the composite similarity of two profiles in [0,1].
func Score(a, b *profile.Profile) float64 {
	return Compare(a, b).Composite
}

// catalogSimilarity computes the Jaccard index of two sets of distinct names.
func catalogSimilarity(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, name := range a {
		setA[name] = struct{}{}
	}

	intersection := 0
	for _, name := range b {
		if _, ok := setA[name]; ok {
			intersection++
		}
	}

	// Covers the empty union as well
	if intersection == 0 {
		return 0
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// magnitudeSimilarity compares two total durations.
func magnitudeSimilarity(totalA, totalB int) float64 {
	if totalA == 0 && totalB == 0 {
		return 1
	}

	diff := totalA - totalB
	if diff < 0 {
		diff = -diff
	}
	return clamp01(1 - float64(diff)/float64(max(totalA, totalB)))
}

// temporalSimilarity computes the cosine similarity of two activity vectors.
func temporalSimilarity(a, b []float64) float64 {
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}

	return clamp01(floats.Dot(a, b) / (normA * normB))
}

// clamp01 absorbs floating point drift such as 1.0000000000000002.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
