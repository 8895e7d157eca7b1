// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

// Package config loads Playmatch configuration with Koanf v2.
//
// Sources are layered, later layers overriding earlier ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file: --config flag, PLAYMATCH_CONFIG, ./playmatch.yaml,
//     ./playmatch.yml, /etc/playmatch/config.yaml
//  3. Environment variables (see envMappings)
//
// Example playmatch.yaml:
//
//	match:
//	  default_k: 5
//	  max_k: 100
//	  workers: 4
//	server:
//	  host: 127.0.0.1
//	  port: 8080
//	  cors_origins: ["https://example.com"]
//	logging:
//	  level: debug
//	  format: console
//
// Environment Variables:
//   - PLAYMATCH_DEFAULT_K, PLAYMATCH_MAX_K, PLAYMATCH_WORKERS
//   - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
//   - CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW,
//     DISABLE_RATE_LIMIT, MAX_CANDIDATES
//   - MATCH_CACHE_SIZE (0 disables), MATCH_CACHE_TTL
//   - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
package config
