package http

import (
	"net/http"
	"strings"

	"communityserve-backend/internal/domain"
	"communityserve-backend/internal/logger"
	"communityserve-backend/internal/security"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with an id for log correlation.
// An incoming X-Request-ID is honored so upstream proxies can trace calls.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

// AuthMiddleware validates the Bearer token and stores the acting user's
// claims in the request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeErrorMessage(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Debug("token validation failed", "request_id", requestIDFrom(r.Context()), "error", err)
				writeErrorMessage(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// requireRole guards a handler to accounts of the given role.
func requireRole(role domain.Role, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(r.Context())
		if !ok || claims.Role != string(role) {
			writeErrorMessage(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		h(w, r)
	}
}
