package post

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/posts"
)

// SearchHandler serves substring search over posts
type SearchHandler struct {
	service posts.Service
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service posts.Service) *SearchHandler {
	return &SearchHandler{service: service}
}

// HandleSearch handles GET /posts/search?search=
// Matches title, description or author name case-insensitively. Unlike
// the feed, results span all moderation states.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")

	matches, err := h.service.Search(r.Context(), term)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, matches)
}
