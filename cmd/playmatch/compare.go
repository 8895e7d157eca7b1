// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/playmatch/internal/api"
	"github.com/tomtom215/playmatch/internal/display"
	"github.com/tomtom215/playmatch/internal/metrics"
	"github.com/tomtom215/playmatch/internal/roster"
	"github.com/tomtom215/playmatch/internal/similarity"
)

func newCompareCmd(c *cli) *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "compare NAME_A NAME_B",
		Short:   "Show the per-signal similarity of two profiles in a roster file",
		Example: `  playmatch compare --file roster.yaml alice bob`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := roster.LoadFile(file)
			if err != nil {
				return err
			}
			a, err := r.Get(args[0])
			if err != nil {
				return err
			}
			b, err := r.Get(args[1])
			if err != nil {
				return err
			}

			bd := similarity.Compare(a, b)
			metrics.RecordSimilarity()

			if asJSON {
				return writeJSON(c.out, api.SimilarityResponse{
					A:         a.Name(),
					B:         b.Name(),
					Breakdown: bd,
					Percent:   display.Percent(bd.Composite),
				})
			}
			p := display.NewPrinter(c.out)
			p.Breakdown(a.Name(), b.Name(), bd)
			return p.Err()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "roster file (.yaml, .yml, .json)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the breakdown as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
