package ranking

import (
	"net/http"
	"strconv"

	"github.com/yeonjeyeong/economy-lingo/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
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

	entries, err := h.service.TopUsers(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("failed to load rankings")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []Entry{}
	}
	config.JSON(w, http.StatusOK, entries)
}
