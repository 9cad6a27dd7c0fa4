// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

// Package config loads the Which Katha server configuration.
//
// Values are layered with Koanf v2, later layers winning:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml,
//     /etc/whichkatha/config.yaml
//  3. Environment variables, mapped explicitly in envTransformFunc
//
// Unmapped environment variables are ignored. Comma-separated values are
// split for the list-valued keys in sliceConfigPaths.
//
// Example config.yaml:
//
//	server:
//	  port: 8080
//	upstream:
//	  base_url: http://recommender:5000
//	  timeout: 15s
//	storage:
//	  backend: badger
//	  path: /data/katha
//	ui:
//	  history_cap: 20
//	demo:
//	  enabled: false
//
// The returned *Config is immutable after Load and safe for concurrent reads.
package config
