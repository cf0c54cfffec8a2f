package history

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/yeonjeyeong/economy-lingo/internal/auth"
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

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
	}

	results, err := h.service.ListByUser(r.Context(), claims.UserID, limit)
	if err != nil {
		if errors.Is(err, ErrInvalidUserID) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("failed to list quiz history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if results == nil {
		results = []*QuizResult{}
	}
	config.JSON(w, http.StatusOK, results)
}
