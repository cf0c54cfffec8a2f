package post

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/yeonjeyeong/economy-lingo/internal/auth"
	"github.com/yeonjeyeong/economy-lingo/internal/config"
)

const defaultListLimit = 50

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidInput    = errors.New("invalid input")
)

type CreatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

type CreateCommentInput struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

type Service interface {
	List(ctx context.Context, limit int) ([]*Post, error)
	Get(ctx context.Context, id string) (*Post, []*Comment, error)
	Create(ctx context.Context, input CreatePostInput) (*Post, error)
	React(ctx context.Context, id, reaction string) error
	Delete(ctx context.Context, id string) error

	AddComment(ctx context.Context, postID string, input CreateCommentInput) (*Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, limit int) ([]*Post, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.List(limit, false)
}

// Get returns a post with its comments and counts the view. Soft-deleted
// posts are hidden from everyone but admins.
func (s *service) Get(ctx context.Context, id string) (*Post, []*Comment, error) {
	log := config.WithContext(ctx)

	p, err := s.visiblePost(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.IncrementCounter(id, "views", 1); err != nil {
		log.WithError(err).Warn("failed to count post view")
	} else {
		p.Views++
	}

	comments, err := s.repo.ListComments(id)
	if err != nil {
		return nil, nil, err
	}
	return p, comments, nil
}

func (s *service) Create(ctx context.Context, input CreatePostInput) (*Post, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, ErrInvalidInput
	}

	authorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = "익명"
	}

	p := &Post{
		ID:       uuid.New(),
		Title:    title,
		Content:  content,
		Author:   author,
		AuthorID: authorID,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// React records a like or dislike on a post.
func (s *service) React(ctx context.Context, id, reaction string) error {
	if reaction != "like" && reaction != "dislike" {
		return ErrInvalidInput
	}
	if _, err := s.visiblePost(ctx, id); err != nil {
		return err
	}
	return s.repo.IncrementCounter(id, reaction+"s", 1)
}

// Delete soft-deletes a post. Only the author or an admin may do it.
func (s *service) Delete(ctx context.Context, id string) error {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	p, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if p == nil || p.IsDeleted {
		return ErrPostNotFound
	}

	if p.AuthorID.String() != claims.UserID && claims.Role != auth.RoleAdmin {
		return ErrForbidden
	}

	p.IsDeleted = true
	return s.repo.Save(p)
}

func (s *service) AddComment(ctx context.Context, postID string, input CreateCommentInput) (*Comment, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.visiblePost(ctx, postID); err != nil {
		return nil, err
	}

	authorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = "익명"
	}

	c := &Comment{
		ID:       uuid.New(),
		PostID:   uuid.MustParse(postID),
		Author:   author,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.repo.CreateComment(c); err != nil {
		return nil, err
	}
	if err := s.repo.IncrementCounter(postID, "comments", 1); err != nil {
		config.WithContext(ctx).WithError(err).Warn("failed to bump comment counter")
	}
	return c, nil
}

// DeleteComment removes a comment permanently and decrements the post's
// comment counter. Author-or-admin only.
func (s *service) DeleteComment(ctx context.Context, commentID string) error {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	c, err := s.repo.FindCommentByID(commentID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCommentNotFound
	}

	if c.AuthorID.String() != claims.UserID && claims.Role != auth.RoleAdmin {
		return ErrForbidden
	}

	if err := s.repo.DeleteComment(commentID); err != nil {
		return err
	}
	if err := s.repo.IncrementCounter(c.PostID.String(), "comments", -1); err != nil {
		config.WithContext(ctx).WithError(err).Warn("failed to drop comment counter")
	}
	return nil
}

func (s *service) visiblePost(ctx context.Context, id string) (*Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrPostNotFound
	}

	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	if p.IsDeleted {
		if claims, err := auth.GetUserClaimsFromContext(ctx); err != nil || claims.Role != auth.RoleAdmin {
			return nil, ErrPostNotFound
		}
	}
	return p, nil
}
