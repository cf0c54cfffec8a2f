package post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yeonjeyeong/economy-lingo/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
	}

	posts, err := h.service.List(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("failed to list posts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if posts == nil {
		posts = []*Post{}
	}
	config.JSON(w, http.StatusOK, posts)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, comments, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if comments == nil {
		comments = []*Comment{}
	}
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"post":     p,
		"comments": comments,
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, p)
}

func (h *Handler) React(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Reaction string `json:"reaction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.React(r.Context(), id, req.Reaction); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "reaction recorded"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	c, err := h.service.AddComment(r.Context(), id, input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, c)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID := chi.URLParam(r, "commentID")

	if err := h.service.DeleteComment(r.Context(), commentID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "title and content are required", http.StatusBadRequest)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrPostNotFound):
		http.Error(w, "post not found", http.StatusNotFound)
	case errors.Is(err, ErrCommentNotFound):
		http.Error(w, "comment not found", http.StatusNotFound)
	default:
		config.WithContext(r.Context()).WithError(err).Error("post operation failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
