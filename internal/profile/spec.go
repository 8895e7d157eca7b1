// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package profile

import (
	"fmt"
	"slices"

	"github.com/tomtom215/playmatch/internal/validation"
)

// GameSpec is the serializable form of a Game.
type GameSpec struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Minutes int    `json:"minutes" yaml:"minutes" validate:"min=0,max=1000000000"`
}

// Spec is the serializable acquisition form of a Profile, used by roster
// files and HTTP request bodies.
//
//	name: alice
//	games:
//	  - name: Chess
//	    minutes: 120
//	hourly:
//	  18: 60
//	  19: 60
type Spec struct {
	Name   string      `json:"name" yaml:"name" validate:"notblank"`
	Games  []GameSpec  `json:"games,omitempty" yaml:"games,omitempty" validate:"dive"`
	Hourly map[int]int `json:"hourly,omitempty" yaml:"hourly,omitempty" validate:"dive,keys,hourofday,endkeys,min=0,max=1000000000"`
}

// FromSpec validates a Spec and builds the corresponding Profile.
// Validation failures wrap ErrInvalidProfile.
//
//nolint:gocritic // hugeParam: Spec passed by value, it is not retained
func FromSpec(s Spec) (*Profile, error) {
	if verr := validation.ValidateStruct(&s); verr != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProfile, verr.Error())
	}

	p, err := NewProfile(s.Name)
	if err != nil {
		return nil, err
	}

	for _, g := range s.Games {
		if _, err := p.AddGame(g.Name, g.Minutes); err != nil {
			return nil, fmt.Errorf("profile %q: %w", s.Name, err)
		}
	}

	hours := make([]int, 0, len(s.Hourly))
	for hour := range s.Hourly {
		hours = append(hours, hour)
	}
	slices.Sort(hours)
	for _, hour := range hours {
		if _, err := p.AddHourly(hour, s.Hourly[hour]); err != nil {
			return nil, fmt.Errorf("profile %q: %w", s.Name, err)
		}
	}

	return p, nil
}

// Spec returns the serializable form of the profile.
func (p *Profile) Spec() Spec {
	s := Spec{Name: p.name}
	if len(p.games) > 0 {
		s.Games = make([]GameSpec, len(p.games))
		for i, g := range p.games {
			s.Games[i] = GameSpec(g)
		}
	}
	if len(p.hourly) > 0 {
		s.Hourly = p.Hourly()
	}
	return s
}
