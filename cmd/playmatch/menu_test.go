// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/tomtom215/playmatch/internal/config"
	"github.com/tomtom215/playmatch/internal/roster"
)

func lines(in ...string) string {
	return strings.Join(in, "\n") + "\n"
}

func runMenu(t *testing.T, r *roster.Roster, input string) string {
	t.Helper()

	var out bytes.Buffer
	m := newMenu(strings.NewReader(input), &out, r, config.Default().Match)
	if err := m.run(context.Background()); err != nil {
		t.Fatalf("run() error = %v\noutput:\n%s", err, out.String())
	}
	return out.String()
}

func TestMenu_FullSession(t *testing.T) {
	t.Parallel()

	input := lines(
		"1", "alice",
		"Chess", "2",
		"done",
		"18", "60",
		"-1",
		"2", "bob",
		"Chess", "3",
		"done",
		"-1",
		"4", "",
		"5",
	)

	r := roster.New()
	out := runMenu(t, r, input)

	for _, want := range []string{
		"=== Friend-Finder Menu ===",
		"Creating target user profile:",
		"Target user created successfully!",
		"Adding comparison user profile:",
		"Comparison user added successfully!",
		"How many suggestions would you like? ",
		"=== TOP 1 SIMILAR USERS ===",
		"User: bob",
		"Similarity Score: 60.00%",
		"Total Playtime: 3 hours",
		"Exiting program.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if r.TargetName() != "alice" || r.Len() != 2 {
		t.Errorf("roster target=%q len=%d, want alice and 2", r.TargetName(), r.Len())
	}
	alice, err := r.Get("alice")
	if err != nil {
		t.Fatalf("Get(alice) error = %v", err)
	}
	if alice.TotalMinutes() != 120 {
		t.Errorf("alice TotalMinutes() = %d, want 120 (hours stored as minutes)", alice.TotalMinutes())
	}
	if alice.HourlyMinutes(18) != 60 {
		t.Errorf("alice HourlyMinutes(18) = %d, want 60", alice.HourlyMinutes(18))
	}
}

func TestMenu_FindSimilarNeedsProfiles(t *testing.T) {
	t.Parallel()

	out := runMenu(t, roster.New(), lines("4", "5"))
	if !strings.Contains(out, "Need at least a target user and one comparison user.") {
		t.Errorf("output missing precondition message:\n%s", out)
	}
}

func TestMenu_ViewProfiles(t *testing.T) {
	t.Parallel()

	out := runMenu(t, roster.New(), lines("3", "5"))
	if !strings.Contains(out, "No profiles to display.") {
		t.Errorf("empty roster output missing notice:\n%s", out)
	}

	out = runMenu(t, roster.New(), lines("2", "carol", "Tetris", "1", "done", "7", "30", "7", "15", "-1", "3", "5"))
	for _, want := range []string{
		"=== All User Profiles ===",
		"User Profile: carol",
		"Peak Play Hours: 7:00 (45 mins)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMenu_InvalidInputReprompts(t *testing.T) {
	t.Parallel()

	input := lines(
		"9",
		"1",
		"", "dave",
		"", "Chess", "lots", "-2", "99999999999", "1",
		"done",
		"24", "x", "5",
		"-10", "1000000001", "20",
		"-1",
		"2", "dave", "erin",
		"done", "-1",
		"4", "many", "-1", "1",
		"5",
	)

	r := roster.New()
	out := runMenu(t, r, input)

	for _, want := range []string{
		"Invalid choice. Please try again.",
		"Username must not be blank. Enter username: ",
		"Invalid input. Please enter a number: ",
		"Invalid hour. Enter 0-23 or -1 to finish: ",
		"Minutes played at 5:00: ",
		"Invalid minutes. Enter positive number: ",
		`User "dave" already exists. Enter a different username: `,
		"Invalid number. Enter 0 or more: ",
		"User: erin",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	dave, err := r.Get("dave")
	if err != nil {
		t.Fatalf("Get(dave) error = %v", err)
	}
	if dave.TotalMinutes() != 60 || dave.HourlyMinutes(5) != 20 {
		t.Errorf("dave total=%d hour5=%d, want 60 and 20", dave.TotalMinutes(), dave.HourlyMinutes(5))
	}
}

func TestMenu_EOFExitsCleanly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "mid profile", input: lines("1", "frank", "Chess")},
		{name: "mid hourly", input: lines("2", "gina", "done", "3")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := roster.New()
			runMenu(t, r, tt.input)
			if r.Len() != 0 {
				t.Errorf("roster len = %d, want 0 for an abandoned profile", r.Len())
			}
		})
	}
}

func TestMenu_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	m := newMenu(strings.NewReader(lines("5")), &out, roster.New(), config.Default().Match)
	if err := m.run(ctx); err == nil {
		t.Error("run() with cancelled context should return an error")
	}
}
