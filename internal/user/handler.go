package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yeonjeyeong/economy-lingo/internal/auth"
	"github.com/yeonjeyeong/economy-lingo/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

// LoginURL hands the client the Google consent URL to redirect to.
func (h *Handler) LoginURL(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	config.JSON(w, http.StatusOK, map[string]string{
		"url": h.service.AuthURL(state),
	})
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		http.Error(w, "authorization code is required", http.StatusBadRequest)
		return
	}

	u, token, err := h.service.Login(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "invalid Google sign-in", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("login failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetTokenCookie(w, token)
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"user": u,
	})
}

// RefreshToken reissues the session cookie for a still-valid token.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("jwt")
	if err != nil || cookie.Value == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	claims, err := auth.ValidateJWT(cookie.Value)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateJWT(claims.UserID, claims.Email, claims.Role, auth.AccessTokenTTL)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("failed to refresh token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetTokenCookie(w, token)
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "token refreshed",
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	u, err := h.service.GetUser(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("failed to load user")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, u)
}
