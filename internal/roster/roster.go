// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package roster

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/tomtom215/playmatch/internal/logging"
	"github.com/tomtom215/playmatch/internal/metrics"
	"github.com/tomtom215/playmatch/internal/profile"
	"github.com/tomtom215/playmatch/internal/similarity"
)

var (
	// ErrDuplicateName is returned when a profile name is already in the roster.
	ErrDuplicateName = errors.New("profile name already exists")

	// ErrNotFound is returned when a named profile is not in the roster.
	ErrNotFound = errors.New("profile not found")

	// ErrNoTarget is returned when an operation needs a target and none is set.
	ErrNoTarget = errors.New("no target profile set")

	// ErrNotEnoughProfiles is returned when there is nothing to compare the target with.
	ErrNotEnoughProfiles = errors.New("need at least a target user and one comparison user")
)

// Roster is an ordered collection of uniquely named profiles with an
// optional target.
type Roster struct {
	profiles []*profile.Profile
	index    map[string]int
	target   string
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{index: make(map[string]int)}
}

// Add appends a comparison profile.
func (r *Roster) Add(p *profile.Profile) error {
	if p == nil {
		return fmt.Errorf("%w: nil profile", profile.ErrInvalidProfile)
	}
	if _, ok := r.index[p.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name())
	}

	r.index[p.Name()] = len(r.profiles)
	r.profiles = append(r.profiles, p)
	return nil
}

// AddTarget appends a profile and makes it the target.
func (r *Roster) AddTarget(p *profile.Profile) error {
	if err := r.Add(p); err != nil {
		return err
	}
	r.target = p.Name()
	return nil
}

// SetTarget makes an existing profile the target.
func (r *Roster) SetTarget(name string) error {
	if _, ok := r.index[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	r.target = name
	return nil
}

// Target returns the target profile.
func (r *Roster) Target() (*profile.Profile, error) {
	if r.target == "" {
		return nil, ErrNoTarget
	}
	return r.profiles[r.index[r.target]], nil
}

// TargetName returns the target name, or "" when none is set.
func (r *Roster) TargetName() string {
	return r.target
}

// Get returns the profile with the given name.
func (r *Roster) Get(name string) (*profile.Profile, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return r.profiles[i], nil
}

// Contains reports whether a profile with the given name exists.
func (r *Roster) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// All returns the profiles in insertion order. The slice is a copy; the
// profiles are shared.
func (r *Roster) All() []*profile.Profile {
	return slices.Clone(r.profiles)
}

// Len returns the number of profiles.
func (r *Roster) Len() int {
	return len(r.profiles)
}

// FindSimilar ranks every non-target profile against the target and returns
// the best k, best first. workers > 1 scores in parallel with identical
// results.
func (r *Roster) FindSimilar(ctx context.Context, k, workers int) ([]similarity.Match, error) {
	target, err := r.Target()
	if err != nil {
		return nil, err
	}
	if len(r.profiles) < 2 {
		return nil, ErrNotEnoughProfiles
	}

	start := time.Now()
	matches, err := similarity.TopKParallel(ctx, target, r.profiles, k, workers)
	duration := time.Since(start)

	candidates := len(r.profiles) - 1
	switch {
	case err == nil:
		metrics.RecordTopK(candidates, duration, metrics.ResultSuccess)
	case errors.Is(err, similarity.ErrInvalidArgument):
		metrics.RecordTopK(candidates, duration, metrics.ResultInvalidArgument)
		return nil, err
	default:
		metrics.RecordTopK(candidates, duration, metrics.ResultError)
		return nil, fmt.Errorf("rank candidates for %q: %w", target.Name(), err)
	}

	logging.Ctx(ctx).Debug().
		Str("target", target.Name()).
		Int("candidates", candidates).
		Int("k", k).
		Int("matches", len(matches)).
		Dur("duration", duration).
		Msg("Ranked similar players")

	return matches, nil
}
