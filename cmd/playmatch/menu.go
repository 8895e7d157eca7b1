// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/playmatch/internal/config"
	"github.com/tomtom215/playmatch/internal/display"
	"github.com/tomtom215/playmatch/internal/logging"
	"github.com/tomtom215/playmatch/internal/profile"
	"github.com/tomtom215/playmatch/internal/roster"
)

// errInputClosed ends the menu when stdin reaches EOF.
var errInputClosed = errors.New("input closed")

// Hours are converted to minutes on entry; cap them at the per-entry limit.
const maxGameHours = profile.MaxEntryMinutes / 60

func newMenuCmd(c *cli) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive friend-finder menu",
		Long: `Build a target profile and comparison profiles interactively, then
rank the comparison profiles by similarity to the target.

Game playtime is entered in hours. Hourly activity is entered in minutes
per hour of day; enter -1 as the hour to finish.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runMenu(cmd.Context(), file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "preload profiles from a roster file (.yaml, .yml, .json)")
	return cmd
}

func (c *cli) runMenu(ctx context.Context, file string) error {
	r := roster.New()
	if file != "" {
		loaded, err := roster.LoadFile(file)
		if err != nil {
			return err
		}
		r = loaded
		logging.Ctx(ctx).Info().
			Str("file", file).
			Int("profiles", r.Len()).
			Str("target", r.TargetName()).
			Msg("Roster loaded")
	}
	return newMenu(c.in, c.out, r, c.cfg.Match).run(ctx)
}

// menu drives the interactive session over a line-oriented reader.
type menu struct {
	scanner *bufio.Scanner
	p       *display.Printer
	roster  *roster.Roster
	match   config.MatchConfig
}

func newMenu(in io.Reader, out io.Writer, r *roster.Roster, match config.MatchConfig) *menu {
	return &menu{
		scanner: bufio.NewScanner(in),
		p:       display.NewPrinter(out),
		roster:  r,
		match:   match,
	}
}

func (m *menu) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.showOptions()
		choice, err := m.readLine()
		if err != nil {
			return m.finish(err)
		}

		switch choice {
		case "1":
			err = m.createTarget(ctx)
		case "2":
			err = m.addComparison(ctx)
		case "3":
			m.p.Profiles(m.roster.All())
		case "4":
			err = m.findSimilar(ctx)
		case "5":
			m.p.Println("Exiting program.")
			return m.p.Err()
		default:
			m.p.Println("Invalid choice. Please try again.")
		}
		if err != nil {
			return m.finish(err)
		}
		if err := m.p.Err(); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
}

func (m *menu) showOptions() {
	m.p.Heading("=== Friend-Finder Menu ===")
	m.p.Println("1. Create target user profile")
	m.p.Println("2. Add comparison user profile")
	m.p.Println("3. View all profiles")
	m.p.Println("4. Find similar users")
	m.p.Println("5. Exit")
	m.p.Printf("Choice: ")
}

// finish treats closed input as a normal exit.
func (m *menu) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		m.p.Println("")
		return m.p.Err()
	}
	return err
}

func (m *menu) createTarget(ctx context.Context) error {
	m.p.Println("\nCreating target user profile:")
	pr, err := m.readProfile()
	if err != nil {
		return err
	}
	if err := m.roster.AddTarget(pr); err != nil {
		return err
	}
	logging.Ctx(ctx).Debug().Str("name", pr.Name()).Int("total_minutes", pr.TotalMinutes()).Msg("Target profile created")
	m.p.Println("\nTarget user created successfully!")
	return nil
}

func (m *menu) addComparison(ctx context.Context) error {
	m.p.Println("\nAdding comparison user profile:")
	pr, err := m.readProfile()
	if err != nil {
		return err
	}
	if err := m.roster.Add(pr); err != nil {
		return err
	}
	logging.Ctx(ctx).Debug().Str("name", pr.Name()).Int("total_minutes", pr.TotalMinutes()).Msg("Comparison profile added")
	m.p.Println("\nComparison user added successfully!")
	return nil
}

func (m *menu) findSimilar(ctx context.Context) error {
	if _, err := m.roster.Target(); err != nil || m.roster.Len() < 2 {
		m.p.Println("Need at least a target user and one comparison user.")
		return nil
	}

	m.p.Printf("How many suggestions would you like? ")
	k, err := m.readCount()
	if err != nil {
		return err
	}

	matches, err := m.roster.FindSimilar(ctx, m.match.ClampK(k), m.match.EffectiveWorkers())
	if err != nil {
		return err
	}
	m.p.Matches(matches, m.roster.Get)
	return nil
}

// readProfile prompts for a username, games and hourly activity.
func (m *menu) readProfile() (*profile.Profile, error) {
	pr, err := m.readUsername()
	if err != nil {
		return nil, err
	}

	m.p.Println("\nAdding games (enter 'done' when finished):")
	for {
		m.p.Printf("Game name: ")
		game, err := m.readLine()
		if err != nil {
			return nil, err
		}
		if game == "done" {
			break
		}
		if game == "" {
			continue
		}

		m.p.Printf("Playtime in hours: ")
		hours, err := m.readInt(func(n int) bool { return n >= 0 && n <= maxGameHours },
			"Invalid input. Please enter a number: ")
		if err != nil {
			return nil, err
		}
		if _, err := pr.AddGame(game, hours*60); err != nil {
			return nil, err
		}
	}

	m.p.Println("\nEnter playtime by hour (0-23, enter -1 when finished):")
	for {
		m.p.Printf("Hour (0-23): ")
		hour, err := m.readInt(func(n int) bool { return n >= -1 && n < profile.HoursPerDay },
			"Invalid hour. Enter 0-23 or -1 to finish: ")
		if err != nil {
			return nil, err
		}
		if hour == -1 {
			break
		}

		m.p.Printf("Minutes played at %d:00: ", hour)
		minutes, err := m.readInt(func(n int) bool { return n >= 0 && n <= profile.MaxEntryMinutes },
			"Invalid minutes. Enter positive number: ")
		if err != nil {
			return nil, err
		}
		if _, err := pr.AddHourly(hour, minutes); err != nil {
			return nil, err
		}
	}

	return pr, nil
}

func (m *menu) readUsername() (*profile.Profile, error) {
	m.p.Printf("Enter username: ")
	for {
		name, err := m.readLine()
		if err != nil {
			return nil, err
		}
		if m.roster.Contains(name) {
			m.p.Printf("User %q already exists. Enter a different username: ", name)
			continue
		}
		pr, err := profile.NewProfile(name)
		if err != nil {
			m.p.Printf("Username must not be blank. Enter username: ")
			continue
		}
		return pr, nil
	}
}

// readCount reads a suggestion count. A blank line selects the configured default.
func (m *menu) readCount() (int, error) {
	for {
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return m.match.DefaultK, nil
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 0 {
			return n, nil
		}
		m.p.Printf("Invalid number. Enter 0 or more: ")
	}
}

func (m *menu) readInt(valid func(int) bool, retry string) (int, error) {
	for {
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(line); err == nil && valid(n) {
			return n, nil
		}
		m.p.Printf("%s", retry)
	}
}

func (m *menu) readLine() (string, error) {
	if err := m.p.Err(); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.scanner.Text()), nil
}
