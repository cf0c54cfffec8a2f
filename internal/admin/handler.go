package admin

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

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to list users")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, users)
}

// SetUserScore expects {"score": <integer>}. Anything that is not a plain
// integer is rejected before touching the database.
func (h *Handler) SetUserScore(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req struct {
		Score json.Number `json:"score"`
	}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	score, err := strconv.Atoi(req.Score.String())
	if err != nil {
		http.Error(w, "score must be an integer", http.StatusBadRequest)
		return
	}

	u, err := h.service.SetUserScore(r.Context(), userID, score)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
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

	posts, err := h.service.ListPosts(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("failed to list posts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, posts)
}

func (h *Handler) RestorePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	p, err := h.service.RestorePost(r.Context(), postID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	if err := h.service.DeletePost(r.Context(), postID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	case errors.Is(err, ErrPostNotFound):
		http.Error(w, "post not found", http.StatusNotFound)
	default:
		config.WithContext(r.Context()).WithError(err).Error("admin operation failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
