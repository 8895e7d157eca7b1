// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package profile

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// HoursPerDay is the number of hour-of-day buckets in a profile.
const HoursPerDay = 24

// MaxEntryMinutes bounds a single game or hourly entry accepted from
// serialized input. Keep in sync with the max= tags on Spec.
const MaxEntryMinutes = 1_000_000_000

// ErrInvalidProfile is returned when a profile or one of its entries
// violates the model invariants.
var ErrInvalidProfile = errors.New("invalid profile")

// Game is a single catalog entry: a game name and the minutes played.
type Game struct {
	// Name is the game title. Equality is exact string match.
	Name string `json:"name" yaml:"name"`

	// Minutes is the engagement duration in minutes (>= 0).
	Minutes int `json:"minutes" yaml:"minutes"`
}

// Profile is a player's recorded games, hourly activity and total playtime.
// The zero value is not usable; create profiles with NewProfile.
type Profile struct {
	name         string
	games        []Game
	hourly       map[int]int
	totalMinutes int
}

// NewProfile creates an empty profile. The name identifies the player and
// cannot be changed afterwards.
func NewProfile(name string) (*Profile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	return &Profile{
		name:   name,
		hourly: make(map[int]int),
	}, nil
}

// AddGame appends a catalog entry and returns the updated total minutes.
// Duplicate names are kept as separate entries.
func (p *Profile) AddGame(name string, minutes int) (int, error) {
	if name == "" {
		return p.totalMinutes, fmt.Errorf("%w: game name is required", ErrInvalidProfile)
	}
	if minutes < 0 {
		return p.totalMinutes, fmt.Errorf("%w: game %q has negative minutes %d", ErrInvalidProfile, name, minutes)
	}
	if minutes > math.MaxInt-p.totalMinutes {
		return p.totalMinutes, fmt.Errorf("%w: game %q overflows total minutes", ErrInvalidProfile, name)
	}

	p.games = append(p.games, Game{Name: name, Minutes: minutes})
	p.totalMinutes += minutes
	return p.totalMinutes, nil
}

// AddHourly adds minutes to the given hour of day and returns the updated
// minutes recorded for that hour.
func (p *Profile) AddHourly(hour, minutes int) (int, error) {
	if hour < 0 || hour >= HoursPerDay {
		return 0, fmt.Errorf("%w: hour %d out of range [0,%d]", ErrInvalidProfile, hour, HoursPerDay-1)
	}
	if minutes < 0 {
		return p.hourly[hour], fmt.Errorf("%w: hour %d has negative minutes %d", ErrInvalidProfile, hour, minutes)
	}
	if minutes > math.MaxInt-p.hourly[hour] {
		return p.hourly[hour], fmt.Errorf("%w: hour %d overflows its minutes", ErrInvalidProfile, hour)
	}

	p.hourly[hour] += minutes
	return p.hourly[hour], nil
}

// Name returns the player name.
func (p *Profile) Name() string {
	return p.name
}

// TotalMinutes returns the sum of all game durations.
func (p *Profile) TotalMinutes() int {
	return p.totalMinutes
}

// Games returns a copy of the catalog entries in insertion order.
func (p *Profile) Games() []Game {
	return slices.Clone(p.games)
}

// GameNames returns the distinct game names in ascending order.
func (p *Profile) GameNames() []string {
	names := make([]string, 0, len(p.games))
	for _, g := range p.games {
		names = append(names, g.Name)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Hourly returns a copy of the hour-of-day to minutes mapping.
// Only hours that were recorded are present.
func (p *Profile) Hourly() map[int]int {
	return maps.Clone(p.hourly)
}

// HourlyMinutes returns the minutes recorded for an hour, or 0.
func (p *Profile) HourlyMinutes(hour int) int {
	return p.hourly[hour]
}

// HourlyVector returns the 24-element activity vector, with 0 for hours
// that have no recorded minutes.
func (p *Profile) HourlyVector() []float64 {
	vec := make([]float64, HoursPerDay)
	for hour, minutes := range p.hourly {
		vec[hour] = float64(minutes)
	}
	return vec
}

// PeakHours returns the hours with positive minutes in ascending order.
func (p *Profile) PeakHours() []int {
	hours := make([]int, 0, len(p.hourly))
	for hour, minutes := range p.hourly {
		if minutes > 0 {
			hours = append(hours, hour)
		}
	}
	slices.Sort(hours)
	return hours
}
