package http

import (
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/mdshakil05382/genzzone-frontend/internal/client"
	"github.com/mdshakil05382/genzzone-frontend/internal/session"
)

// SessionCookie names the shopper session cookie.
const SessionCookie = "genz_session"

// SessionMiddleware guarantees every request a live session token. The
// token rides the context so the backend clients attach it to their
// calls.
func SessionMiddleware(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var current string
			if c, err := r.Cookie(SessionCookie); err == nil {
				current = c.Value
			}

			token, created, err := sessions.Ensure(r.Context(), current)
			if err != nil {
				log.Printf("session ensure failed: %v", err)
				respondError(w, http.StatusServiceUnavailable, "session_unavailable", "could not establish a session")
				return
			}
			// The cookie carries no Expires; the redis TTL alone
			// governs session lifetime.
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := client.WithSession(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}
