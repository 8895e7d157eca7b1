// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

// Package main is the entry point for the playmatch command.
//
// playmatch ranks players by how closely their play habits match a target
// player. Each comparison combines three signals:
//
//   - Catalog overlap: Jaccard index over the games both players own
//   - Engagement: ratio of total playtime
//   - Activity pattern: cosine similarity of minutes played per hour of day
//
// # Commands
//
//	playmatch menu                          # interactive friend-finder menu
//	playmatch match --file roster.yaml -k 3 # rank a roster file
//	playmatch compare --file roster.yaml alice bob
//	playmatch roster --file roster.yaml --output json
//	playmatch serve                         # HTTP matching API
//	playmatch version
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (PLAYMATCH_DEFAULT_K, HTTP_PORT, LOG_LEVEL, ...)
//   - Config file (--config, PLAYMATCH_CONFIG, or playmatch.yaml)
//   - Built-in defaults
//
// # Signal Handling
//
// serve shuts down gracefully on SIGINT and SIGTERM, waiting up to the
// configured shutdown timeout for in-flight requests.
package main

import (
	"fmt"
	"os"
)

// Build information, set via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
