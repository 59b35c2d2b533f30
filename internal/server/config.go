package server

import "time"

// Config holds query-server configuration, grounded on
// pkg/server/config.go's plain-struct-plus-DefaultConfig shape,
// trimmed to what a read-only query server needs (no TLS/data-dir/
// buffer-pool options, since there is no persistent mutable store
// here).
type Config struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	EnableCORS     bool
	AllowedOrigins []string
	EnableLogging  bool
	EnableGraphQL  bool
	EnableProgress bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:           "localhost",
		Port:           8080,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxRequestSize: 1 * 1024 * 1024,
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		EnableLogging:  true,
		EnableGraphQL:  false,
		EnableProgress: false,
	}
}
