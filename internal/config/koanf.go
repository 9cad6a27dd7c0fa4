// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/whichkatha/config.yaml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// Defaults returns the built-in configuration without reading files or the
// environment.
func Defaults() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Upstream: UpstreamConfig{
			BaseURL:           "http://127.0.0.1:8080",
			Timeout:           15 * time.Second,
			RateLimit:         10,
			RateBurst:         20,
			BreakerFailures:   5,
			BreakerTimeout:    30 * time.Second,
			TrendingCacheTTL:  5 * time.Minute,
			TrendingCacheSize: 8,
		},
		Storage: StorageConfig{
			Backend:    "badger",
			Path:       "/data/whichkatha",
			GCInterval: 10 * time.Minute,
		},
		UI: UIConfig{
			HistoryCap:       20,
			TrailerSearchURL: "https://www.youtube.com/results?search_query=",
			LookupSearchURL:  "https://www.google.com/search?q=",
			ProfileCookie:    "katha_profile",
			ProfileCookieTTL: 365 * 24 * time.Hour,
			MaxProfiles:      10000,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   60,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Demo: DemoConfig{
			Enabled: true,
		},
	}
}

// LoadWithKoanf builds the configuration from all layers and validates it.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values for list keys.
// Values already loaded as lists from YAML are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var envMappings = map[string]string{
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	"upstream_url":              "upstream.base_url",
	"upstream_timeout":          "upstream.timeout",
	"upstream_rate_limit":       "upstream.rate_limit",
	"upstream_rate_burst":       "upstream.rate_burst",
	"upstream_breaker_failures": "upstream.breaker_failures",
	"upstream_breaker_timeout":  "upstream.breaker_timeout",
	"trending_cache_ttl":        "upstream.trending_cache_ttl",
	"trending_cache_size":       "upstream.trending_cache_size",

	"storage_backend":     "storage.backend",
	"storage_path":        "storage.path",
	"storage_gc_interval": "storage.gc_interval",

	"history_cap":        "ui.history_cap",
	"trailer_search_url": "ui.trailer_search_url",
	"lookup_search_url":  "ui.lookup_search_url",
	"profile_cookie":     "ui.profile_cookie",
	"profile_cookie_ttl": "ui.profile_cookie_ttl",
	"max_profiles":       "ui.max_profiles",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"secure_cookies":      "security.secure_cookies",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"demo_enabled": "demo.enabled",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unknown variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
