// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package config

import (
	"fmt"
	"time"
)

// Config is the complete server configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Upstream UpstreamConfig `koanf:"upstream"`
	Storage  StorageConfig  `koanf:"storage"`
	UI       UIConfig       `koanf:"ui"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Demo     DemoConfig     `koanf:"demo"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development or production
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// UpstreamConfig describes the recommendation backend.
//
// Environment Variables:
//   - UPSTREAM_URL: base URL serving /recommend and /trending
//   - UPSTREAM_TIMEOUT: per-request timeout (default: 15s)
//   - UPSTREAM_RATE_LIMIT: outbound requests per second, 0 disables (default: 10)
//   - UPSTREAM_RATE_BURST: limiter burst (default: 20)
//   - UPSTREAM_BREAKER_FAILURES: consecutive failures before the breaker opens (default: 5)
//   - UPSTREAM_BREAKER_TIMEOUT: open-state duration (default: 30s)
//   - TRENDING_CACHE_TTL: trending row cache lifetime (default: 5m)
//   - TRENDING_CACHE_SIZE: trending cache entries (default: 8)
type UpstreamConfig struct {
	BaseURL           string        `koanf:"base_url"`
	Timeout           time.Duration `koanf:"timeout"`
	RateLimit         float64       `koanf:"rate_limit"`
	RateBurst         int           `koanf:"rate_burst"`
	BreakerFailures   uint32        `koanf:"breaker_failures"`
	BreakerTimeout    time.Duration `koanf:"breaker_timeout"`
	TrendingCacheTTL  time.Duration `koanf:"trending_cache_ttl"`
	TrendingCacheSize int           `koanf:"trending_cache_size"`
}

// StorageConfig selects the persisted list store backend.
type StorageConfig struct {
	// Backend is "badger" or "memory". A badger backend that fails to
	// open falls back to memory at startup.
	Backend    string        `koanf:"backend"`
	Path       string        `koanf:"path"`
	GCInterval time.Duration `koanf:"gc_interval"` // badger value log GC
}

// UIConfig holds page behaviour settings.
type UIConfig struct {
	HistoryCap       int           `koanf:"history_cap"`
	TrailerSearchURL string        `koanf:"trailer_search_url"`
	LookupSearchURL  string        `koanf:"lookup_search_url"`
	ProfileCookie    string        `koanf:"profile_cookie"`
	ProfileCookieTTL time.Duration `koanf:"profile_cookie_ttl"`
	MaxProfiles      int           `koanf:"max_profiles"` // resident page states
}

// SecurityConfig holds inbound protection settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	SecureCookies     bool          `koanf:"secure_cookies"`
}

// LoggingConfig mirrors logging.Config.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DemoConfig toggles the built-in stand-in recommendation backend.
type DemoConfig struct {
	Enabled bool `koanf:"enabled"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads defaults, the optional config file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
