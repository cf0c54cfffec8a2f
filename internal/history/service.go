package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/yeonjeyeong/economy-lingo/internal/session"
)

const defaultListLimit = 50

var ErrInvalidUserID = errors.New("invalid user id")

type Service interface {
	Record(ctx context.Context, userID string, summary session.Summary) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*QuizResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Record persists a completed session summary for the user.
func (s *service) Record(ctx context.Context, userID string, summary session.Summary) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return ErrInvalidUserID
	}

	questions, err := json.Marshal(summary.Questions)
	if err != nil {
		return fmt.Errorf("failed to encode questions: %w", err)
	}

	result := &QuizResult{
		ID:             uuid.New(),
		UserID:         uid,
		Score:          summary.Score,
		CorrectCount:   summary.CorrectCount,
		TotalQuestions: summary.TotalQuestions,
		Questions:      questions,
	}
	return s.repo.Create(result)
}

func (s *service) ListByUser(ctx context.Context, userID string, limit int) ([]*QuizResult, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrInvalidUserID
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.ListByUser(userID, limit)
}
