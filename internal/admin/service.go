package admin

import (
	"context"
	"errors"

	"github.com/yeonjeyeong/economy-lingo/internal/config"
	"github.com/yeonjeyeong/economy-lingo/internal/post"
	"github.com/yeonjeyeong/economy-lingo/internal/ranking"
	"github.com/yeonjeyeong/economy-lingo/internal/user"
)

const userListLimit = 100

var (
	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")
)

type Service interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	SetUserScore(ctx context.Context, userID string, score int) (*user.User, error)
	DeleteUser(ctx context.Context, userID string) error

	ListPosts(ctx context.Context, limit int) ([]*post.Post, error)
	RestorePost(ctx context.Context, postID string) (*post.Post, error)
	DeletePost(ctx context.Context, postID string) error
}

type service struct {
	users user.UserRepository
	posts post.Repository
	board ranking.Board
}

func NewService(users user.UserRepository, posts post.Repository, board ranking.Board) Service {
	return &service{users: users, posts: posts, board: board}
}

func (s *service) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.users.ListByScore(userListLimit)
}

// SetUserScore overwrites a user's cumulative score and syncs the ranking
// board to the new value.
func (s *service) SetUserScore(ctx context.Context, userID string, score int) (*user.User, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	u.Score = score
	if err := s.users.Save(u); err != nil {
		return nil, err
	}

	if err := s.board.Set(ctx, userID, score); err != nil {
		config.WithContext(ctx).WithError(err).Warn("failed to sync ranking board")
	}
	return u, nil
}

func (s *service) DeleteUser(ctx context.Context, userID string) error {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	return s.users.Delete(userID)
}

// ListPosts includes soft-deleted posts so moderators can review them.
func (s *service) ListPosts(ctx context.Context, limit int) ([]*post.Post, error) {
	if limit <= 0 {
		limit = userListLimit
	}
	return s.posts.List(limit, true)
}

func (s *service) RestorePost(ctx context.Context, postID string) (*post.Post, error) {
	p, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}

	p.IsDeleted = false
	if err := s.posts.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeletePost(ctx context.Context, postID string) error {
	p, err := s.posts.FindByID(postID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}
	return s.posts.HardDelete(postID)
}
