// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Upstream.Timeout != 15*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 15s", cfg.Upstream.Timeout)
	}
	if cfg.UI.HistoryCap != 20 {
		t.Errorf("UI.HistoryCap = %d, want 20", cfg.UI.HistoryCap)
	}
	if cfg.UI.ProfileCookie != "katha_profile" {
		t.Errorf("UI.ProfileCookie = %q", cfg.UI.ProfileCookie)
	}
	if cfg.Storage.Backend != "badger" {
		t.Errorf("Storage.Backend = %q, want badger", cfg.Storage.Backend)
	}
	if !cfg.Demo.Enabled {
		t.Error("Demo.Enabled should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 9000}
	if got := s.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"bad environment", func(c *Config) { c.Server.Environment = "staging" }, "ENVIRONMENT"},
		{"upstream scheme", func(c *Config) { c.Upstream.BaseURL = "ftp://x" }, "UPSTREAM_URL"},
		{"upstream no host", func(c *Config) { c.Upstream.BaseURL = "http://" }, "UPSTREAM_URL"},
		{"upstream query", func(c *Config) { c.Upstream.BaseURL = "http://x?a=1" }, "UPSTREAM_URL"},
		{"timeout", func(c *Config) { c.Upstream.Timeout = 0 }, "UPSTREAM_TIMEOUT"},
		{"negative rate", func(c *Config) { c.Upstream.RateLimit = -1 }, "UPSTREAM_RATE_LIMIT"},
		{"burst", func(c *Config) { c.Upstream.RateBurst = 0 }, "UPSTREAM_RATE_BURST"},
		{"breaker", func(c *Config) { c.Upstream.BreakerFailures = 0 }, "UPSTREAM_BREAKER_FAILURES"},
		{"cache size", func(c *Config) { c.Upstream.TrendingCacheSize = 0 }, "TRENDING_CACHE_SIZE"},
		{"backend", func(c *Config) { c.Storage.Backend = "redis" }, "STORAGE_BACKEND"},
		{"badger path", func(c *Config) { c.Storage.Path = "" }, "STORAGE_PATH"},
		{"history cap", func(c *Config) { c.UI.HistoryCap = 0 }, "HISTORY_CAP"},
		{"cookie", func(c *Config) { c.UI.ProfileCookie = "" }, "PROFILE_COOKIE"},
		{"profiles", func(c *Config) { c.UI.MaxProfiles = 0 }, "MAX_PROFILES"},
		{"trailer url", func(c *Config) { c.UI.TrailerSearchURL = "/relative" }, "TRAILER_SEARCH_URL"},
		{"rate reqs", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate window", func(c *Config) { c.Security.RateLimitWindow = 0 }, "RATE_LIMIT_WINDOW"},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAcceptsRelaxedSettings(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Storage.Backend = "memory"
	cfg.Storage.Path = ""
	cfg.Upstream.RateLimit = 0
	cfg.Upstream.RateBurst = 0
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("development mode should not warn")
	}
	cfg.Server.Environment = "production"
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard origin in production should warn")
	}
	cfg.Security.CORSOrigins = []string{"https://katha.example"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("explicit origin should not warn")
	}
}
