package post

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/posts"
)

// FeedHandler serves the public feed of approved posts
type FeedHandler struct {
	service posts.Service
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(service posts.Service) *FeedHandler {
	return &FeedHandler{service: service}
}

// HandleFeed handles GET /posts
// Returns approved posts only; pending and rejected posts never appear
func (h *FeedHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	visible, err := h.service.ListVisible(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, visible)
}
