// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

// Package logging provides centralized zerolog-based logging for Playmatch.
//
// A single global zerolog logger is configured once at startup from the
// logging section of the configuration and shared by the CLI, the HTTP API
// and the supervisor tree.
//
//   - JSON output for production, console output for development
//   - Context-aware logging with request and correlation IDs
//   - slog.Handler adapter for libraries that only speak log/slog
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Warn().Str("file", path).Msg("Duplicate profile skipped")
//	logging.Ctx(ctx).Debug().Int("k", k).Msg("Ranking candidates")
//
// # Output Streams
//
// Logs always go to stderr unless Config.Output says otherwise. The CLI
// writes profiles and rankings to stdout, so log lines never interleave
// with piped results.
//
// # Configuration
//
// Environment Variables (see internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller info (default: false)
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Warn().Str("key", "value").Msg("message")  // Correct
//	logging.Warn().Str("key", "value")                 // WRONG - log not emitted
package logging
