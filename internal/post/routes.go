package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mixes public reads with authenticated writes, so it receives the
// auth middleware instead of being mounted inside the protected group.
func Routes(h *Handler, authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Post("/", h.Create)
		r.Post("/{id}/reactions", h.React)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/comments", h.AddComment)
		r.Delete("/comments/{commentID}", h.DeleteComment)
	})
	return r
}
