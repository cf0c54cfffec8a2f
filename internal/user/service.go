package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/yeonjeyeong/economy-lingo/internal/auth"
	"github.com/yeonjeyeong/economy-lingo/internal/config"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrUserNotFound = errors.New("user not found")
)

// anonymousName mirrors the display-name fallback the web client used.
const anonymousName = "Anonymous"

// ScoreBoard mirrors score changes into the ranking board. Failures there
// must never block the accrual itself.
type ScoreBoard interface {
	Increment(ctx context.Context, userID string, delta int) error
}

type UserService interface {
	AuthURL(state string) string
	Login(ctx context.Context, code string) (*User, string, error)
	GetUser(ctx context.Context) (*User, error)
	Accrue(ctx context.Context, userID string, sessionScore int) error
}

type userService struct {
	repo     UserRepository
	verifier GoogleVerifier
	board    ScoreBoard
	now      func() time.Time
}

func NewService(repo UserRepository, verifier GoogleVerifier, board ScoreBoard) UserService {
	return &userService{
		repo:     repo,
		verifier: verifier,
		board:    board,
		now:      time.Now,
	}
}

func (s *userService) AuthURL(state string) string {
	return s.verifier.AuthURL(state)
}

// Login verifies the Google authorization code, upserts the user and issues
// a session JWT. The Google refresh token is stored encrypted.
func (s *userService) Login(ctx context.Context, code string) (*User, string, error) {
	log := config.WithContext(ctx)

	identity, err := s.verifier.Verify(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Google sign-in rejected")
		return nil, "", ErrUnauthorized
	}

	u, err := s.repo.FindByGoogleID(identity.GoogleID)
	if err != nil {
		return nil, "", err
	}

	name := identity.Name
	if name == "" {
		name = anonymousName
	}

	if u == nil {
		u = &User{
			ID:         uuid.New(),
			GoogleID:   identity.GoogleID,
			Username:   name,
			Email:      identity.Email,
			Avatar:     identity.Avatar,
			LastActive: s.now(),
		}
		if err := s.encryptRefreshToken(u, identity.RefreshToken); err != nil {
			return nil, "", err
		}
		if err := s.repo.Create(u); err != nil {
			return nil, "", err
		}
		log.Infof("created user %s", u.ID)
	} else {
		u.Username = name
		u.Email = identity.Email
		u.Avatar = identity.Avatar
		u.LastActive = s.now()
		if err := s.encryptRefreshToken(u, identity.RefreshToken); err != nil {
			return nil, "", err
		}
		if err := s.repo.Save(u); err != nil {
			return nil, "", err
		}
	}

	role := auth.RoleUser
	if config.IsAdminEmail(u.Email) {
		role = auth.RoleAdmin
	}

	token, err := auth.GenerateJWT(u.ID.String(), u.Email, role, auth.AccessTokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *userService) encryptRefreshToken(u *User, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	encrypted, err := config.Encrypt(refreshToken)
	if err != nil {
		return err
	}
	u.RefreshToken = encrypted
	return nil
}

func (s *userService) GetUser(ctx context.Context) (*User, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	u, err := s.repo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Accrue merges a completed session's score into the user's record:
// create-if-absent, else increment in place. The session score may be
// negative and the stored total is allowed to go below zero. The read and
// write are not transactional; two completions racing for the same user can
// lose one update, which is an accepted limitation.
func (s *userService) Accrue(ctx context.Context, userID string, sessionScore int) error {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByID(userID)
	if err != nil {
		return err
	}

	if u == nil {
		id, err := uuid.Parse(userID)
		if err != nil {
			return err
		}
		fresh := &User{
			ID:           id,
			Username:     anonymousName,
			Score:        sessionScore,
			QuizzesTaken: 1,
			LastActive:   s.now(),
		}
		// Profile fields come from the authenticated identity when
		// available, empty strings otherwise.
		if claims, err := auth.GetUserClaimsFromContext(ctx); err == nil {
			fresh.Email = claims.Email
		}
		if err := s.repo.Create(fresh); err != nil {
			return err
		}
	} else {
		u.Score += sessionScore
		u.QuizzesTaken++
		u.LastActive = s.now()
		if err := s.repo.Save(u); err != nil {
			return err
		}
	}

	if err := s.board.Increment(ctx, userID, sessionScore); err != nil {
		log.WithError(err).Warn("failed to update ranking board")
	}
	return nil
}
