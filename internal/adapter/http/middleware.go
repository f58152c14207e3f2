package adapthttp

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"momentum/internal/app"
	"momentum/internal/auth"
	"momentum/internal/domain"
)

type contextKey string

const identityContextKey contextKey = "identity"

// requireAuth resolves the bearer token into a per-request identity. The
// token only says which user row to read; role and status come from that
// fresh read, so a deleted user is locked out even with a still-valid token.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized. Please log in.")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[1] == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized. Token missing.")
			return
		}

		identity, err := s.auth.ResolveSession(r.Context(), parts[1])
		switch {
		case err == nil:
		case errors.Is(err, auth.ErrTokenExpired), errors.Is(err, auth.ErrTokenMalformed):
			writeError(w, http.StatusForbidden, "Forbidden. Invalid token.")
			return
		case errors.Is(err, app.ErrUserNotFound):
			writeError(w, http.StatusUnauthorized, "Unauthorized. User not found.")
			return
		default:
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole gates a route on a policy over the already-resolved identity.
func (s *Server) requireRole(allow app.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allow(identityFrom(r.Context())) {
				writeError(w, http.StatusForbidden, "Forbidden. Admin access required.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// identityFrom returns the request identity, or nil outside requireAuth.
func identityFrom(ctx context.Context) *domain.Identity {
	id, _ := ctx.Value(identityContextKey).(*domain.Identity)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
