// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

/*
Package models defines the data structures exchanged between the Which Katha
front-end server, the recommendation backend, and browser clients.

Key Components:

  - MovieRecord: canonical shape of a recommended or trending movie
  - RecommendRequest: search form payload posted to the backend's /recommend
  - RecommendResponse: normalized backend answer (error message or results)
  - APIResponse: standardized JSON envelope for the /api/v1 endpoints

Identity:

MovieRecord has no numeric id. Lists deduplicate and look up records by
MovieRecord.Key, which is the title. Two distinct movies that share a title
collide; Key is the single place to change if the backend ever assigns ids.

Lenient fields:

Rating and ReleaseYear accept both JSON numbers and numeric strings. A year
that is not a whole number decodes as unknown instead of failing the record.
*/
package models
