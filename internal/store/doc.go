// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

// Package store persists the per-profile history and watchlist.
//
// Lists are stored as JSON arrays of models.MovieRecord under the key
// "profile:<id>:<list>" in a Backend. Two backends exist: BadgerDB for
// durable storage and an in-memory map used when badger is not configured
// or fails to open (see OpenWithFallback).
//
// Reads never fail from the caller's point of view: a missing key is an
// empty list and an undecodable value is logged and treated as empty.
// Each read-modify-write (AddToHistory, ToggleWatchlist) is serialized
// within the process.
package store
