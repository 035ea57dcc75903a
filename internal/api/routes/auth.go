package routes

import (
	"github.com/go-chi/chi/v5"

	authHandlers "Quill/internal/api/handlers/auth"
	"Quill/internal/api/middleware"
	"Quill/internal/core/accounts"
)

// mountAuthRoutes registers the session endpoints.
// Register and login are public; logout requires a valid token.
func mountAuthRoutes(r chi.Router, service accounts.AuthService, authMw *middleware.AuthMiddleware) {
	registerH := authHandlers.NewRegisterHandler(service)
	loginH := authHandlers.NewLoginHandler(service)
	logoutH := authHandlers.NewLogoutHandler(service)

	r.Post("/register", registerH.HandleRegister)
	r.Post("/login", loginH.HandleLogin)
	r.With(authMw.RequireAuth).Post("/logout", logoutH.HandleLogout)
}
