package news

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

// Fetch serves the news list. A feed outage degrades to an empty list so the
// client keeps rendering.
func (h *Handler) Fetch(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	items, err := h.service.Fetch(r.Context(), r.URL.Query().Get("stock"))
	if err != nil {
		log.WithError(err).Warn("news feed unavailable")
		items = []Item{}
	}
	if items == nil {
		items = []Item{}
	}

	config.JSON(w, http.StatusOK, items)
}
