package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"Quill/internal/core/accounts"
)

// Context keys for storing request-scoped auth state
type contextKey string

const accountKey contextKey = "account"

// AuthMiddleware enforces bearer-token authentication for protected
// routes. The token is resolved to a full Account at entry so handlers
// and services receive the actor explicitly instead of re-reading any
// ambient state.
type AuthMiddleware struct {
	auth accounts.AuthService
}

// NewAuthMiddleware creates a new bearer auth middleware
func NewAuthMiddleware(auth accounts.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth ensures the request carries a valid bearer token.
// If not authenticated, returns 401. If authenticated, injects the
// resolved account into the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		account, err := m.auth.Authenticate(r.Context(), token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), accountKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAccount extracts the authenticated account from the request context.
// Returns nil if not authenticated.
func GetAccount(r *http.Request) *accounts.Account {
	account, _ := r.Context().Value(accountKey).(*accounts.Account)
	return account
}

// SetTestAccount sets the account in the context for testing purposes.
// This function should ONLY be used in tests to mock authenticated users.
func SetTestAccount(ctx context.Context, account *accounts.Account) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthenticationRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
