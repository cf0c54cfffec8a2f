package admin

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/users", h.ListUsers)
	r.Put("/users/{id}/score", h.SetUserScore)
	r.Delete("/users/{id}", h.DeleteUser)

	r.Get("/posts", h.ListPosts)
	r.Post("/posts/{id}/restore", h.RestorePost)
	r.Delete("/posts/{id}", h.DeletePost)
	return r
}
