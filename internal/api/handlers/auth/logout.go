package auth

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/api/middleware"
	"Quill/internal/core/accounts"
)

// LogoutHandler handles logout requests
type LogoutHandler struct {
	service accounts.AuthService
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(service accounts.AuthService) *LogoutHandler {
	return &LogoutHandler{service: service}
}

// HandleLogout handles POST /logout
// Revokes every outstanding token for the calling account, not just the
// one used for this request
func (h *LogoutHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetAccount(r)
	if actor == nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), actor); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "logged out",
	})
}
