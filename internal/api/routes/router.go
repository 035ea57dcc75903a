package routes

import (
	"github.com/go-chi/chi/v5"

	"Quill/internal/api/middleware"
	"Quill/internal/core/accounts"
	"Quill/internal/core/posts"
)

// Register wires the API endpoints onto the router: session endpoints
// plus the token-gated post lifecycle
func Register(r chi.Router, authService accounts.AuthService, postService posts.Service) {
	authMw := middleware.NewAuthMiddleware(authService)

	mountAuthRoutes(r, authService, authMw)
	mountPostRoutes(r, postService, authMw)
}
