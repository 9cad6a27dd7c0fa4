// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/whichkatha/internal/logging"
)

type profileKey struct{}

// ProfileCookie configures the browser profile cookie.
type ProfileCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Profile assigns every browser a stable profile id. A missing or malformed
// cookie is replaced with a fresh uuid; the id is stored on the request
// context for ProfileID and for log lines.
func Profile(pc ProfileCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(pc.Name); err == nil {
				if u, perr := uuid.Parse(c.Value); perr == nil {
					id = u.String()
				}
			}
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     pc.Name,
					Value:    id,
					Path:     "/",
					MaxAge:   int(pc.TTL.Seconds()),
					HttpOnly: true,
					Secure:   pc.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), profileKey{}, id)
			ctx = logging.ContextWithProfileID(ctx, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ProfileID returns the profile id placed on ctx by Profile, or "".
func ProfileID(ctx context.Context) string {
	id, _ := ctx.Value(profileKey{}).(string)
	return id
}
