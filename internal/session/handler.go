package session

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/yeonjeyeong/economy-lingo/internal/auth"
	"github.com/yeonjeyeong/economy-lingo/internal/config"
	"github.com/yeonjeyeong/economy-lingo/internal/question"
)

type Handler struct {
	manager *Manager
}

func NewHandler(m *Manager) *Handler {
	return &Handler{manager: m}
}

type startRequest struct {
	Count      int    `json:"count"`
	Difficulty string `json:"difficulty"`
}

const defaultCount = 5

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// An empty body means defaults; a malformed one is a client error.
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Count <= 0 {
		req.Count = defaultCount
	}
	difficulty, err := question.ParseDifficulty(req.Difficulty)
	if err != nil {
		http.Error(w, "difficulty must be one of easy, medium, hard", http.StatusBadRequest)
		return
	}
	if difficulty == question.DifficultyAny {
		difficulty = question.DifficultyMedium
	}

	snap, err := h.manager.Start(r.Context(), claims.UserID, req.Count, difficulty)
	if err != nil {
		if errors.Is(err, ErrEmptySession) {
			// No quiz available; the client surfaces its empty state.
			http.Error(w, "no quiz available", http.StatusServiceUnavailable)
			return
		}
		log.WithError(err).Error("failed to start quiz session")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, snap)
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	snap, err := h.manager.Current(claims.UserID)
	if err != nil {
		http.Error(w, "no active session", http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusOK, snap)
}

type selectRequest struct {
	Option int `json:"option"`
}

func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	snap, err := h.manager.Select(claims.UserID, req.Option)
	if err != nil {
		h.writeTransitionError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.manager.Submit(r.Context(), claims.UserID)
	if err != nil {
		h.writeTransitionError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	snap, err := h.manager.Advance(r.Context(), claims.UserID)
	if err != nil {
		h.writeTransitionError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	snap, err := h.manager.Restart(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			http.Error(w, "no active session", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("failed to restart quiz session")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusCreated, snap)
}

// writeTransitionError maps state machine rejections to client errors so an
// out-of-order action never reads as a server fault.
func (h *Handler) writeTransitionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNoSession):
		http.Error(w, "no active session", http.StatusNotFound)
	case errors.Is(err, ErrInvalidOption):
		http.Error(w, "option index out of range", http.StatusBadRequest)
	case errors.Is(err, ErrNoSelection):
		http.Error(w, "select an option first", http.StatusConflict)
	case errors.Is(err, ErrAnswerShown):
		http.Error(w, "answer already shown", http.StatusConflict)
	case errors.Is(err, ErrNotSubmitted):
		http.Error(w, "submit an answer first", http.StatusConflict)
	case errors.Is(err, ErrSessionComplete):
		http.Error(w, "session is complete", http.StatusConflict)
	default:
		config.WithContext(r.Context()).WithError(err).Error("session transition failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
