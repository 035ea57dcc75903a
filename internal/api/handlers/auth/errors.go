package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/accounts"
)

// handleServiceError maps auth service errors onto HTTP responses.
// Credential failures stay deliberately vague; storage failures are
// logged server-side and surfaced as an opaque 503.
func handleServiceError(w http.ResponseWriter, err error) {
	if valErr, ok := accounts.AsValidationError(err); ok {
		handlers.WriteValidationErrors(w, valErr.Fields)
		return
	}

	if errors.Is(err, accounts.ErrInvalidCredentials) {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationFailed",
			accounts.ErrInvalidCredentials.Error())
		return
	}

	if errors.Is(err, accounts.ErrInvalidToken) {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired",
			"Authentication required")
		return
	}

	slog.Error("auth operation failed", slog.String("error", err.Error()))
	handlers.WriteError(w, http.StatusServiceUnavailable, "ServiceUnavailable",
		"Service temporarily unavailable")
}
