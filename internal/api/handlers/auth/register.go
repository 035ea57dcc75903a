package auth

import (
	"encoding/json"
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/accounts"
)

// RegisterHandler handles account registration requests
type RegisterHandler struct {
	service accounts.AuthService
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(service accounts.AuthService) *RegisterHandler {
	return &RegisterHandler{service: service}
}

// HandleRegister handles POST /register
// Creates an account with the standard role and issues its first token
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req accounts.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	session, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, accountSummary(session))
}

// accountSummary is the body returned on register and login: the account
// identity plus the freshly issued token
func accountSummary(session *accounts.Session) map[string]interface{} {
	return map[string]interface{}{
		"id":    session.Account.ID,
		"name":  session.Account.Name,
		"role":  session.Account.Role,
		"token": session.Token,
	}
}
