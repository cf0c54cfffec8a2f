package calendar

import (
	"net/http"

	"github.com/yeonjeyeong/economy-lingo/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Upcoming(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	events, err := h.service.Upcoming(r.Context(), r.URL.Query().Get("country"))
	if err != nil {
		log.WithError(err).Error("failed to build calendar")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"schedule": events,
	})
}
