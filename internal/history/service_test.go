package history_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yeonjeyeong/economy-lingo/internal/history"
	"github.com/yeonjeyeong/economy-lingo/internal/question"
	"github.com/yeonjeyeong/economy-lingo/internal/session"
)

type fakeRepo struct {
	created []*history.QuizResult
}

func (r *fakeRepo) Create(result *history.QuizResult) error {
	r.created = append(r.created, result)
	return nil
}

func (r *fakeRepo) ListByUser(userID string, limit int) ([]*history.QuizResult, error) {
	var out []*history.QuizResult
	for _, res := range r.created {
		if res.UserID.String() == userID {
			out = append(out, res)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestRecord(t *testing.T) {
	ctx := context.Background()

	summary := session.Summary{
		Score:          200,
		CorrectCount:   3,
		TotalQuestions: 5,
		Questions: []question.Question{{
			ID:            1,
			Text:          "질문",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: 0,
			Difficulty:    question.DifficultyMedium,
		}},
	}

	t.Run("PersistsSummary", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := history.NewService(repo)
		userID := uuid.New()

		require.NoError(t, svc.Record(ctx, userID.String(), summary))
		require.Len(t, repo.created, 1)

		saved := repo.created[0]
		require.Equal(t, userID, saved.UserID)
		require.Equal(t, 200, saved.Score)
		require.Equal(t, 3, saved.CorrectCount)
		require.Equal(t, 5, saved.TotalQuestions)

		var questions []question.Question
		require.NoError(t, json.Unmarshal(saved.Questions, &questions))
		require.Len(t, questions, 1)
		require.Equal(t, "질문", questions[0].Text)
	})

	t.Run("RejectsBadUserID", func(t *testing.T) {
		svc := history.NewService(&fakeRepo{})
		require.ErrorIs(t, svc.Record(ctx, "not-a-uuid", summary), history.ErrInvalidUserID)
	})
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := history.NewService(repo)
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Record(ctx, userID.String(), session.Summary{Score: i * 100, TotalQuestions: 5}))
	}

	results, err := svc.ListByUser(ctx, userID.String(), 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	_, err = svc.ListByUser(ctx, "nope", 10)
	require.ErrorIs(t, err, history.ErrInvalidUserID)
}
