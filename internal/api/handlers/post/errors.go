package post

import (
	"errors"
	"log/slog"
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/posts"
)

// handleServiceError maps moderation engine errors onto HTTP responses.
// Authorization failures are always 403, never detail which check failed.
// Storage failures are logged server-side and surfaced as an opaque 503.
func handleServiceError(w http.ResponseWriter, err error) {
	if valErr, ok := posts.AsValidationError(err); ok {
		handlers.WriteValidationErrors(w, valErr.Fields)
		return
	}

	switch {
	case errors.Is(err, posts.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "Forbidden", "Forbidden")
	case errors.Is(err, posts.ErrNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Post not found")
	case errors.Is(err, posts.ErrAlreadyDecided):
		handlers.WriteError(w, http.StatusConflict, "AlreadyDecided",
			"Post has already been decided")
	default:
		slog.Error("post operation failed", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusServiceUnavailable, "ServiceUnavailable",
			"Service temporarily unavailable")
	}
}
