package routes

import (
	"github.com/go-chi/chi/v5"

	postHandlers "Quill/internal/api/handlers/post"
	"Quill/internal/api/middleware"
	"Quill/internal/core/posts"
)

// mountPostRoutes registers the post lifecycle endpoints.
// Every route requires a valid token; moderation rules (admin-only
// decide/queue, author-or-admin delete) are enforced by the service.
func mountPostRoutes(r chi.Router, service posts.Service, authMw *middleware.AuthMiddleware) {
	createH := postHandlers.NewCreateHandler(service)
	feedH := postHandlers.NewFeedHandler(service)
	moderationH := postHandlers.NewModerationHandler(service)
	getH := postHandlers.NewGetHandler(service)
	searchH := postHandlers.NewSearchHandler(service)
	deleteH := postHandlers.NewDeleteHandler(service)

	r.Route("/posts", func(r chi.Router) {
		r.Use(authMw.RequireAuth)

		r.Get("/", feedH.HandleFeed)
		r.Post("/", createH.HandleCreate)
		r.Get("/search", searchH.HandleSearch)
		r.Get("/{id}", getH.HandleGet)
		r.Put("/{id}", moderationH.HandleDecide)
		r.Delete("/{id}", deleteH.HandleDelete)
	})

	r.With(authMw.RequireAuth).Get("/posts-approve-reject", moderationH.HandleQueue)
}
