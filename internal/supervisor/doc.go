// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

/*
Package supervisor runs the long-lived parts of Which Katha under a suture v4
supervisor tree.

	RootSupervisor ("whichkatha")
	├── StorageSupervisor ("storage-layer")
	│   └── StoreGCService (badger backend only)
	└── WebSupervisor ("web-layer")
	    └── HTTPServerService

A crashed service is restarted with backoff; a failure in the storage layer
never takes the web layer down with it. Supervisor events are logged through
sutureslog into the zerolog-backed slog adapter of the logging package.

Canceling the context passed to Serve shuts the tree down; each service gets
TreeConfig.ShutdownTimeout to stop.
*/
package supervisor
