// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tomtom215/playmatch/internal/config"
	"github.com/tomtom215/playmatch/internal/logging"
)

// cli carries the streams and loaded configuration shared by every command.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string

	cfg *config.Config
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	c := &cli{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "playmatch",
		Short: "Find players with similar play habits",
		Long: `playmatch compares player profiles by the games they play, how much
they play, and when during the day they play, and ranks the players most
similar to a target.

Run without a subcommand to start the interactive menu.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runMenu(cmd.Context(), "")
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file path (default: $PLAYMATCH_CONFIG or ./playmatch.yaml)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(
		newMenuCmd(c),
		newMatchCmd(c),
		newCompareCmd(c),
		newRosterCmd(c),
		newServeCmd(c),
		newVersionCmd(c),
	)
	return root
}

// setup loads configuration and initializes the global logger before any
// subcommand runs. Logs go to the error stream so command output stays clean.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.logLevel != "" {
		cfg.Logging.Level = c.logLevel
	}
	c.cfg = cfg

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: c.errOut,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.ContextWithNewCorrelationID(ctx)
	ctx = logging.ContextWithLogger(ctx, logging.WithComponent("cli").With().
		Str("command", cmd.Name()).
		Logger())
	cmd.SetContext(ctx)

	logging.Ctx(ctx).Debug().
		Int("default_k", cfg.Match.DefaultK).
		Int("max_k", cfg.Match.MaxK).
		Int("workers", cfg.Match.EffectiveWorkers()).
		Msg("Configuration loaded")
	return nil
}
