package auth

import (
	"encoding/json"
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/accounts"
)

// LoginHandler handles login requests
type LoginHandler struct {
	service accounts.AuthService
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service accounts.AuthService) *LoginHandler {
	return &LoginHandler{service: service}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles POST /login
// Issues a fresh token on success; earlier tokens stay valid
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		handlers.WriteValidationErrors(w, map[string]string{
			"credentials": "email and password are required",
		})
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, accountSummary(session))
}
