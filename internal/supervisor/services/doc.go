// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

/*
Package services adapts Which Katha components to suture.Service.

  - HTTPServerService runs an *http.Server and shuts it down gracefully when
    its context is canceled.
  - StoreGCService runs list store maintenance on an interval.

Both implement fmt.Stringer so supervisor events name them.
*/
package services
