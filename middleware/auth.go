package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go-salesforce-cart/utils"
)

// Key type for context
type contextKey string

// UserContextKey holds the authenticated user's claims.
const UserContextKey = contextKey("user")

// Auth returns a middleware that verifies the bearer JWT and attaches its
// claims to the request context.
func Auth(tm *utils.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				unauthorized(w, "No token provided")
				return
			}

			claims, err := tm.Parse(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts the claims set by Auth.
func ClaimsFromContext(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*utils.Claims)
	return claims, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
