package question

import (
	"net/http"
	"strconv"

	"github.com/yeonjeyeong/economy-lingo/internal/config"
)

type Handler struct {
	static *StaticSource
}

func NewHandler(static *StaticSource) *Handler {
	return &Handler{static: static}
}

const defaultCount = 5

// ListQuestions serves the static bank: GET /questions?count=&difficulty=.
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	count := defaultCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "count must be a positive integer", http.StatusBadRequest)
			return
		}
		count = parsed
	}

	difficulty, err := ParseDifficulty(r.URL.Query().Get("difficulty"))
	if err != nil {
		http.Error(w, "difficulty must be one of easy, medium, hard", http.StatusBadRequest)
		return
	}

	questions, err := h.static.Fetch(r.Context(), count, difficulty)
	if err != nil {
		log.WithError(err).Error("failed to fetch static questions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
	})
}
