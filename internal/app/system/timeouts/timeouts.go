// Package timeouts provides centralized timeout values for handler operations.
//
// Timeouts can be configured at startup using Configure(). If not configured,
// the defaults below are used.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: fetch-log reads and writes
//   - Fetch: the outbound request that loads a view's user batch
package timeouts

import (
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing  = 2 * time.Second
	DefaultShort = 5 * time.Second
	DefaultFetch = 10 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	ping  = DefaultPing
	short = DefaultShort
	fetch = DefaultFetch
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single fetch-log operations.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Fetch returns the timeout for loading a user batch from the source API.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping  time.Duration
	Short time.Duration
	Fetch time.Duration
}

// Configure sets custom timeout values. Zero values in the config are ignored,
// keeping the current (or default) values. Call during startup before
// handlers are built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Fetch > 0 {
		fetch = cfg.Fetch
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	fetch = DefaultFetch
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Ping:  ping,
		Short: short,
		Fetch: fetch,
	}
}
