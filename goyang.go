package goyang

import (
	"log/slog"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (tokens, statements, fetches).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// Option configures Parse and Resolve.
type Option func(*config)

type config struct {
	logger *slog.Logger
	cache  CacheLookup
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithCache sets a lookup consulted before any import is fetched. A hit
// short-circuits that import entirely; cached modules are not re-listed in
// the resolution result.
func WithCache(lookup CacheLookup) Option {
	return func(c *config) { c.cache = lookup }
}

// CacheLookup returns an already resolved module for a name and revision,
// or false when the cache has none. An empty revision means any revision.
type CacheLookup func(name, revision string) (*Module, bool)
