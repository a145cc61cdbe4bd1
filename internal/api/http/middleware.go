package httpapi

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const callerIDKey contextKey = "callerID"

// requireAuth resolves the bearer token to a user id and stores it on the
// request context for the wrapped handler.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeMessage(w, http.StatusUnauthorized, "authorization token required")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		userID, err := h.Auth.Authenticate(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), callerIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}

func callerID(r *http.Request) int {
	if id, ok := r.Context().Value(callerIDKey).(int); ok {
		return id
	}
	return 0
}
