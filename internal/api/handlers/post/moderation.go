package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers"
	"Quill/internal/api/middleware"
	"Quill/internal/core/posts"
)

// ModerationHandler serves the admin moderation queue and records
// approve/reject decisions
type ModerationHandler struct {
	service posts.Service
}

// NewModerationHandler creates a new moderation handler
func NewModerationHandler(service posts.Service) *ModerationHandler {
	return &ModerationHandler{service: service}
}

// HandleQueue handles GET /posts-approve-reject
// Returns pending posts that have never been decided. Admin only.
func (h *ModerationHandler) HandleQueue(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetAccount(r)

	pending, err := h.service.ListPendingModeration(r.Context(), actor)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, pending)
}

// HandleDecide handles PUT /posts/{id}
// Approves or rejects a pending post. Admin only; deciding a post that
// has already been decided returns 409.
func (h *ModerationHandler) HandleDecide(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 4*1024)

	var req posts.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	actor := middleware.GetAccount(r)
	postID := chi.URLParam(r, "id")

	decided, err := h.service.Decide(r.Context(), actor, postID, req.Approve)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, decided)
}
