package ranking

import (
	"context"

	"github.com/yeonjeyeong/economy-lingo/internal/config"
	"github.com/yeonjeyeong/economy-lingo/internal/user"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Entry is one row of the public leaderboard.
type Entry struct {
	Rank         int    `json:"rank"`
	Username     string `json:"username"`
	Score        int    `json:"score"`
	QuizzesTaken int    `json:"quizzes_taken"`
	Avatar       string `json:"avatar,omitempty"`
}

type Service interface {
	TopUsers(ctx context.Context, limit int) ([]Entry, error)
}

type service struct {
	board Board
	users user.UserRepository
}

func NewService(board Board, users user.UserRepository) Service {
	return &service{board: board, users: users}
}

// TopUsers reads the leaderboard from the sorted set, resolving profiles from
// the user table. An empty board falls back to the table directly and rebuilds
// the set on the way out.
func (s *service) TopUsers(ctx context.Context, limit int) ([]Entry, error) {
	log := config.WithContext(ctx)

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	members, err := s.board.Top(ctx, limit)
	if err != nil {
		log.WithError(err).Warn("ranking board unavailable, falling back to database")
		members = nil
	}

	if len(members) == 0 {
		return s.fromDatabase(ctx, limit)
	}

	entries := make([]Entry, 0, len(members))
	for _, m := range members {
		id, ok := m.Member.(string)
		if !ok {
			continue
		}
		u, err := s.users.FindByID(id)
		if err != nil {
			return nil, err
		}
		if u == nil {
			continue
		}
		entries = append(entries, Entry{
			Rank:         len(entries) + 1,
			Username:     u.Username,
			Score:        u.Score,
			QuizzesTaken: u.QuizzesTaken,
			Avatar:       u.Avatar,
		})
	}
	return entries, nil
}

func (s *service) fromDatabase(ctx context.Context, limit int) ([]Entry, error) {
	log := config.WithContext(ctx)

	users, err := s.users.ListByScore(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(users))
	for i, u := range users {
		entries = append(entries, Entry{
			Rank:         i + 1,
			Username:     u.Username,
			Score:        u.Score,
			QuizzesTaken: u.QuizzesTaken,
			Avatar:       u.Avatar,
		})
		if err := s.board.Set(ctx, u.ID.String(), u.Score); err != nil {
			log.WithError(err).Warn("failed to rebuild ranking board")
			break
		}
	}
	return entries, nil
}
