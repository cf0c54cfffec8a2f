package admin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yeonjeyeong/economy-lingo/internal/admin"
	"github.com/yeonjeyeong/economy-lingo/internal/post"
	"github.com/yeonjeyeong/economy-lingo/internal/user"
)

type fakeService struct {
	setScoreCalls int
	lastScore     int
	setScoreErr   error
}

func (s *fakeService) ListUsers(ctx context.Context) ([]user.User, error) {
	return []user.User{}, nil
}

func (s *fakeService) SetUserScore(ctx context.Context, userID string, score int) (*user.User, error) {
	s.setScoreCalls++
	s.lastScore = score
	if s.setScoreErr != nil {
		return nil, s.setScoreErr
	}
	return &user.User{ID: uuid.New(), Score: score}, nil
}

func (s *fakeService) DeleteUser(ctx context.Context, userID string) error { return nil }

func (s *fakeService) ListPosts(ctx context.Context, limit int) ([]*post.Post, error) {
	return []*post.Post{}, nil
}

func (s *fakeService) RestorePost(ctx context.Context, postID string) (*post.Post, error) {
	return nil, admin.ErrPostNotFound
}

func (s *fakeService) DeletePost(ctx context.Context, postID string) error {
	return admin.ErrPostNotFound
}

func putScore(t *testing.T, svc admin.Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := admin.Routes(admin.NewHandler(svc))

	req := httptest.NewRequest(http.MethodPut, "/users/"+uuid.New().String()+"/score", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSetUserScoreValidation(t *testing.T) {
	t.Run("AcceptsInteger", func(t *testing.T) {
		svc := &fakeService{}
		rec := putScore(t, svc, `{"score": 250}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 1, svc.setScoreCalls)
		require.Equal(t, 250, svc.lastScore)
	})

	t.Run("AcceptsNegativeInteger", func(t *testing.T) {
		svc := &fakeService{}
		rec := putScore(t, svc, `{"score": -50}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, -50, svc.lastScore)
	})

	t.Run("RejectsString", func(t *testing.T) {
		svc := &fakeService{}
		rec := putScore(t, svc, `{"score": "100"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Zero(t, svc.setScoreCalls)
	})

	t.Run("RejectsFloat", func(t *testing.T) {
		svc := &fakeService{}
		rec := putScore(t, svc, `{"score": 10.5}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Zero(t, svc.setScoreCalls)
	})

	t.Run("RejectsGarbage", func(t *testing.T) {
		svc := &fakeService{}
		rec := putScore(t, svc, `not json`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Zero(t, svc.setScoreCalls)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc := &fakeService{setScoreErr: admin.ErrUserNotFound}
		rec := putScore(t, svc, `{"score": 100}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
