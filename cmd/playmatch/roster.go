// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/playmatch/internal/display"
	"github.com/tomtom215/playmatch/internal/roster"
)

func newRosterCmd(c *cli) *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Validate and print a roster file",
		Long: `Load a roster file, validate every profile, and print it as text or
re-encode it as YAML or JSON. Converting between formats:

  playmatch roster -f roster.yaml -o json > roster.json`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r, err := roster.LoadFile(file)
			if err != nil {
				return err
			}

			switch output {
			case "text":
				p := display.NewPrinter(c.out)
				if name := r.TargetName(); name != "" {
					p.Printf("Target: %s\n", name)
				}
				p.Profiles(r.All())
				return p.Err()
			case string(roster.FormatYAML), string(roster.FormatJSON):
				return r.Encode(c.out, roster.Format(output))
			default:
				return fmt.Errorf("unknown output %q (want text, yaml or json)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "roster file (.yaml, .yml, .json)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, yaml or json")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
