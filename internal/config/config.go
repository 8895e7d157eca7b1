// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

package config

import (
	"net"
	"runtime"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Match   MatchConfig   `koanf:"match"`
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
}

// MatchConfig holds top-k selection settings shared by the CLI and the API.
type MatchConfig struct {
	// DefaultK is used when a caller does not ask for a specific count.
	DefaultK int `koanf:"default_k"`

	// MaxK caps the count a caller may request. Larger requests are clamped.
	MaxK int `koanf:"max_k"`

	// Workers is the number of goroutines scoring candidates in parallel.
	// 0 means runtime.NumCPU(); 1 scores serially.
	Workers int `koanf:"workers"`
}

// EffectiveWorkers resolves Workers, mapping 0 to the CPU count.
func (m MatchConfig) EffectiveWorkers() int {
	if m.Workers <= 0 {
		return runtime.NumCPU()
	}
	return m.Workers
}

// ClampK bounds a requested k to MaxK. Negative values pass through so the
// selector can reject them.
func (m MatchConfig) ClampK(k int) int {
	if m.MaxK > 0 && k > m.MaxK {
		return m.MaxK
	}
	return k
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// MaxCandidates bounds the candidate list accepted in one match request.
	MaxCandidates int `koanf:"max_candidates"`

	// CacheSize is the number of match responses kept in memory. 0 disables the cache.
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}
