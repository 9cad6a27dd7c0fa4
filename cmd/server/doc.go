// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

/*
Package main is the entry point for the Which Katha server.

The server renders the single-page recommendation front end and proxies
searches to a recommendation backend. Per-visitor watchlist and history
live in an embedded BadgerDB store, falling back to memory when the
store cannot be opened.

# Process Layout

	RootSupervisor ("whichkatha")
	├── StorageSupervisor ("storage-layer")
	│   └── store-gc (BadgerDB value log GC, skipped when disabled)
	└── WebSupervisor ("web-layer")
	    └── http-server (chi router, pages and /api/v1)

# Configuration

Koanf v2 layers, highest priority first: environment variables,
config.yaml (CONFIG_PATH), built-in defaults. Common variables:

	UPSTREAM_URL        recommendation backend base URL
	STORAGE_BACKEND     badger or memory
	STORAGE_PATH        BadgerDB directory
	DEMO_ENABLED        serve the canned backend on this listener
	LOG_LEVEL           trace, debug, info, warn, error
	LOG_FORMAT          json or console

The defaults point the upstream client at the built-in demo backend on
the same listener, so a bare start is self-contained:

	STORAGE_BACKEND=memory ./whichkatha

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests within HTTP_SHUTDOWN_TIMEOUT, then the store is
closed.
*/
package main
