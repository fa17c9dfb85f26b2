// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath is the SQLite database file backing the dashboard datasets.
	DBPath string `koanf:"db_path"`

	// CacheTTLSeconds bounds how long a query result is served from cache.
	CacheTTLSeconds int `koanf:"cache_ttl_seconds"`

	// MaxTableLimit caps GET /table?limit.
	MaxTableLimit int `koanf:"max_table_limit"`

	// ReadTimeoutSeconds and WriteTimeoutSeconds bound HTTP I/O.
	ReadTimeoutSeconds  int `koanf:"read_timeout_seconds"`
	WriteTimeoutSeconds int `koanf:"write_timeout_seconds"`

	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `koanf:"shutdown_timeout_seconds"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and currently
// unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:               "info",
		Addr:                   ":9080",
		DBPath:                 "pulse.db",
		CacheTTLSeconds:        3600,
		MaxTableLimit:          100,
		ReadTimeoutSeconds:     10,
		WriteTimeoutSeconds:    20,
		ShutdownTimeoutSeconds: 10,
	}
	return c
}
