// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

// Package logging provides the process-wide zerolog logger for Which Katha.
//
// A single global logger is configured once from main via Init and read
// everywhere else through the level helpers (Info, Warn, Err, ...) or through
// Ctx, which decorates events with the request and profile identifiers
// carried on a context.Context.
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Ctx(r.Context()).Info().Str("section", id).Msg("section shown")
//
// The SlogHandler type bridges log/slog callers (suture's event hook) onto
// the same zerolog output.
//
// Environment (read through internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include file:line (default: false)
package logging
