// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomtom215/playmatch/internal/profile"
	"github.com/tomtom215/playmatch/internal/similarity"
)

// Palette
var (
	colorHeading = lipgloss.Color("#89b4fa")
	colorLabel   = lipgloss.Color("#cba6f7")
	colorScore   = lipgloss.Color("#a6e3a1")
)

// Percent scales a raw similarity score to a percentage.
func Percent(score float64) float64 {
	return score * 100
}

// FormatPercent renders a raw score as a percentage with two decimals.
func FormatPercent(score float64) string {
	return fmt.Sprintf("%.2f%%", Percent(score))
}

// Hours converts minutes to whole hours, truncating.
func Hours(minutes int) int {
	return minutes / 60
}

// Printer writes formatted output. The first write error is kept and all
// later writes become no-ops; check it with Err.
type Printer struct {
	w   io.Writer
	err error

	heading lipgloss.Style
	label   lipgloss.Style
	score   lipgloss.Style
}

// NewPrinter creates a printer whose styling adapts to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(colorHeading),
		label:   r.NewStyle().Bold(true).Foreground(colorLabel),
		score:   r.NewStyle().Foreground(colorScore),
	}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

// Printf writes formatted text.
func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Println writes a line.
func (p *Printer) Println(line string) {
	p.Printf("%s\n", line)
}

// Heading writes a styled section heading preceded by a blank line.
func (p *Printer) Heading(title string) {
	p.Printf("\n%s\n", p.heading.Render(title))
}

// Profile writes one profile:
//
//	User Profile: alice
//	Total Playtime: 2 hours
//	Games (1):
//	  - Chess                (2 hrs)
//	Peak Play Hours: 18:00 (60 mins), 19:00 (60 mins)
func (p *Printer) Profile(pr *profile.Profile) {
	p.Printf("\n%s %s\n", p.label.Render("User Profile:"), pr.Name())
	p.Printf("Total Playtime: %d hours\n", Hours(pr.TotalMinutes()))

	games := pr.Games()
	p.Printf("Games (%d):\n", len(games))
	for _, g := range games {
		p.Printf("  - %-20s (%d hrs)\n", g.Name, Hours(g.Minutes))
	}

	p.Printf("Peak Play Hours: %s\n", PeakHours(pr))
}

// PeakHours lists every hour with recorded minutes in ascending order,
// e.g. "18:00 (60 mins), 19:00 (60 mins)". Empty when there are none.
func PeakHours(pr *profile.Profile) string {
	hours := pr.PeakHours()
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = fmt.Sprintf("%d:00 (%d mins)", h, pr.HourlyMinutes(h))
	}
	return strings.Join(parts, ", ")
}

// Profiles writes every profile under a heading, or a notice when there
// are none.
func (p *Printer) Profiles(profiles []*profile.Profile) {
	if len(profiles) == 0 {
		p.Println("No profiles to display.")
		return
	}

	p.Heading("=== All User Profiles ===")
	for _, pr := range profiles {
		p.Profile(pr)
	}
}

// Matches writes ranked matches best first. lookup resolves a match name to
// its profile; matches it cannot resolve are printed without a profile.
func (p *Printer) Matches(matches []similarity.Match, lookup func(name string) (*profile.Profile, error)) {
	p.Heading(fmt.Sprintf("=== TOP %d SIMILAR USERS ===", len(matches)))

	for _, m := range matches {
		p.Printf("\n%s %s\n", p.label.Render("User:"), m.Name)
		p.Printf("Similarity Score: %s\n", p.score.Render(FormatPercent(m.Score)))

		if lookup == nil {
			continue
		}
		if pr, err := lookup(m.Name); err == nil && pr != nil {
			p.Profile(pr)
		}
	}
}

// Breakdown writes the sub-scores of a pairwise comparison.
func (p *Printer) Breakdown(a, b string, bd similarity.Breakdown) {
	p.Heading(fmt.Sprintf("=== %s vs %s ===", a, b))
	p.Printf("Catalog Overlap:    %s\n", FormatPercent(bd.Catalog))
	p.Printf("Engagement:         %s\n", FormatPercent(bd.Magnitude))
	p.Printf("Activity Pattern:   %s\n", FormatPercent(bd.Temporal))
	p.Printf("Similarity Score:   %s\n", p.score.Render(FormatPercent(bd.Composite)))
}
