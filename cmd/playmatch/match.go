// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/playmatch/internal/api"
	"github.com/tomtom215/playmatch/internal/display"
	"github.com/tomtom215/playmatch/internal/logging"
	"github.com/tomtom215/playmatch/internal/roster"
)

func newMatchCmd(c *cli) *cobra.Command {
	var (
		file    string
		target  string
		k       int
		workers int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank the profiles in a roster file against its target",
		Example: `  playmatch match --file roster.yaml -k 3
  playmatch match -f roster.json --target alice --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := roster.LoadFile(file)
			if err != nil {
				return err
			}
			if target != "" {
				if err := r.SetTarget(target); err != nil {
					return err
				}
			}

			if !cmd.Flags().Changed("k") {
				k = c.cfg.Match.DefaultK
			}
			k = c.cfg.Match.ClampK(k)
			if !cmd.Flags().Changed("workers") {
				workers = c.cfg.Match.EffectiveWorkers()
			}

			matches, err := r.FindSimilar(cmd.Context(), k, workers)
			if err != nil {
				return err
			}

			logging.Ctx(cmd.Context()).Info().
				Str("file", file).
				Str("target", r.TargetName()).
				Int("k", k).
				Int("matches", len(matches)).
				Msg("Match complete")

			if asJSON {
				return writeJSON(c.out, api.NewMatchResponse(r.TargetName(), k, matches))
			}
			p := display.NewPrinter(c.out)
			p.Matches(matches, r.Get)
			return p.Err()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "roster file (.yaml, .yml, .json)")
	cmd.Flags().StringVarP(&target, "target", "t", "", "target profile name (overrides the file's target)")
	cmd.Flags().IntVarP(&k, "k", "k", 0, "number of matches to return (default from config)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "scoring goroutines (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write results as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
