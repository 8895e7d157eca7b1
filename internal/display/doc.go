// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

/*
Package display renders profiles and match results for terminal output.

Scores from the similarity package are raw values in [0,1]; this package
owns every presentation decision: whole-hour playtime (minutes/60),
percentage scaling with two decimals, and the peak play hour listing.

Headings are styled with lipgloss. The renderer is bound to the output
writer, so styling is dropped automatically when the writer is not a
terminal (pipes, files, test buffers).

Example:

	p := display.NewPrinter(os.Stdout)
	p.Matches(matches, r.Get)
	if err := p.Err(); err != nil {
	    return err
	}
*/
package display
