package ledger

import (
	"net/http"

	"github.com/yeonjeyeong/economy-lingo/internal/auth"
	"github.com/yeonjeyeong/economy-lingo/internal/config"
	"github.com/yeonjeyeong/economy-lingo/internal/question"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListWrongAnswers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("failed to load wrong-answer ledger")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []question.Question{}
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"wrongAnswers": entries,
	})
}

func (h *Handler) ClearWrongAnswers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.Clear(r.Context(), claims.UserID); err != nil {
		log.WithError(err).Error("failed to clear wrong-answer ledger")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "wrong answers cleared",
	})
}
