package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/arolabs/aronotes/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDFromContext returns the authenticated user id placed into the
// request context by the auth middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// requestIDMiddleware tags every request with a generated id and logs the
// method and path through the server logger.
func (s *Server) requestIDMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)

		log := s.logger.With("request_id", reqID)
		log.Info(r.Context(), "request", "method", r.Method, "path", r.URL.Path)

		h.ServeHTTP(w, r)
	})
}

// tokenFromHeader extracts the session token from the Authorization header.
// Both "Bearer <token>" and a bare token are accepted; the original web
// client sends the token without a scheme.
func tokenFromHeader(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" || header == "null" {
		return ""
	}
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:]
	}
	return header
}

// authMiddleware verifies the session token and stores the asserted user id
// in the request context. Requests without a valid token get 401.
func (s *Server) authMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromHeader(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		h.ServeHTTP(w, r.WithContext(ctx))
	})
}
