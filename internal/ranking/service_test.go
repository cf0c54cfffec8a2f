package ranking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/yeonjeyeong/economy-lingo/internal/ranking"
	"github.com/yeonjeyeong/economy-lingo/internal/user"
)

type fakeBoard struct {
	members []redis.Z
	sets    map[string]int
	topErr  error
}

func newFakeBoard() *fakeBoard {
	return &fakeBoard{sets: make(map[string]int)}
}

func (b *fakeBoard) Increment(ctx context.Context, userID string, delta int) error {
	return nil
}

func (b *fakeBoard) Set(ctx context.Context, userID string, score int) error {
	b.sets[userID] = score
	return nil
}

func (b *fakeBoard) Top(ctx context.Context, limit int) ([]redis.Z, error) {
	if b.topErr != nil {
		return nil, b.topErr
	}
	if limit > len(b.members) {
		limit = len(b.members)
	}
	return b.members[:limit], nil
}

type fakeUserRepo struct {
	users map[string]*user.User
}

func (r *fakeUserRepo) Create(u *user.User) error { return nil }
func (r *fakeUserRepo) Save(u *user.User) error   { return nil }
func (r *fakeUserRepo) Delete(id string) error    { return nil }

func (r *fakeUserRepo) FindByID(id string) (*user.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByGoogleID(googleID string) (*user.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) ListByScore(limit int) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	// Deterministic enough for these tests, which use at most one user here.
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func seedUsers(n int) (*fakeUserRepo, []uuid.UUID) {
	repo := &fakeUserRepo{users: make(map[string]*user.User)}
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
		repo.users[ids[i].String()] = &user.User{
			ID:           ids[i],
			Username:     "경제왕",
			Score:        (n - i) * 100,
			QuizzesTaken: n - i,
		}
	}
	return repo, ids
}

func TestTopUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("RanksBoardMembers", func(t *testing.T) {
		repo, ids := seedUsers(3)
		board := newFakeBoard()
		for i, id := range ids {
			board.members = append(board.members, redis.Z{Score: float64((3 - i) * 100), Member: id.String()})
		}
		svc := ranking.NewService(board, repo)

		entries, err := svc.TopUsers(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		require.Equal(t, 1, entries[0].Rank)
		require.Equal(t, 300, entries[0].Score)
		require.Equal(t, 3, entries[2].Rank)
	})

	t.Run("SkipsDanglingMembers", func(t *testing.T) {
		repo, ids := seedUsers(1)
		board := newFakeBoard()
		board.members = []redis.Z{
			{Score: 500, Member: uuid.New().String()}, // deleted user
			{Score: 100, Member: ids[0].String()},
		}
		svc := ranking.NewService(board, repo)

		entries, err := svc.TopUsers(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, 1, entries[0].Rank)
	})

	t.Run("EmptyBoardFallsBackAndRebuilds", func(t *testing.T) {
		repo, ids := seedUsers(1)
		board := newFakeBoard()
		svc := ranking.NewService(board, repo)

		entries, err := svc.TopUsers(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, 100, entries[0].Score)
		require.Equal(t, 100, board.sets[ids[0].String()])
	})

	t.Run("BoardErrorFallsBack", func(t *testing.T) {
		repo, _ := seedUsers(1)
		board := newFakeBoard()
		board.topErr = errors.New("redis down")
		svc := ranking.NewService(board, repo)

		entries, err := svc.TopUsers(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})
}
