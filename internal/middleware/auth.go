package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenVerifier is the part of the token manager the gate needs.
// Satisfied by *auth.TokenManager.
type TokenVerifier interface {
	Verify(tokenString string) (uuid.UUID, error)
}

// userIDKey is the private context key under which the verified user ID
// is stored. A package-private struct type cannot collide with keys from
// other packages.
type userIDKey struct{}

// RequireAuth returns a middleware that gates protected routes behind a
// Bearer token. It is strictly a precondition check: on any failure the
// wrapped handler never runs and the response is a 401 with a structured
// error body. On success the verified user ID is stored in the request
// context for retrieval via UserID.
func RequireAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "Authorization header missing")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				unauthorized(w, "Authorization header must be of the form 'Bearer <token>'")
				return
			}

			userID, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user ID stored by RequireAuth.
// The second return is false on routes that did not pass through the gate.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok
}

// unauthorized writes the 401 error body. The gate writes JSON directly
// rather than importing the handler package, which would be a dependency
// cycle.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
