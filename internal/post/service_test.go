package post_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yeonjeyeong/economy-lingo/internal/auth"
	"github.com/yeonjeyeong/economy-lingo/internal/post"
)

type fakeRepo struct {
	posts    map[string]*post.Post
	comments map[string]*post.Comment
	counters map[string]map[string]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		posts:    make(map[string]*post.Post),
		comments: make(map[string]*post.Comment),
		counters: make(map[string]map[string]int),
	}
}

func (r *fakeRepo) Create(p *post.Post) error {
	r.posts[p.ID.String()] = p
	return nil
}

func (r *fakeRepo) Save(p *post.Post) error {
	r.posts[p.ID.String()] = p
	return nil
}

func (r *fakeRepo) FindByID(id string) (*post.Post, error) {
	return r.posts[id], nil
}

func (r *fakeRepo) List(limit int, includeDeleted bool) ([]*post.Post, error) {
	var out []*post.Post
	for _, p := range r.posts {
		if !includeDeleted && p.IsDeleted {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeRepo) IncrementCounter(id, column string, delta int) error {
	if r.counters[id] == nil {
		r.counters[id] = make(map[string]int)
	}
	r.counters[id][column] += delta
	return nil
}

func (r *fakeRepo) HardDelete(id string) error {
	delete(r.posts, id)
	return nil
}

func (r *fakeRepo) CreateComment(c *post.Comment) error {
	r.comments[c.ID.String()] = c
	return nil
}

func (r *fakeRepo) FindCommentByID(id string) (*post.Comment, error) {
	return r.comments[id], nil
}

func (r *fakeRepo) ListComments(postID string) ([]*post.Comment, error) {
	var out []*post.Comment
	for _, c := range r.comments {
		if c.PostID.String() == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteComment(id string) error {
	delete(r.comments, id)
	return nil
}

func userCtx(userID uuid.UUID, role string) context.Context {
	return auth.ContextWithClaims(context.Background(), &auth.Claims{
		UserID: userID.String(),
		Email:  "player@example.com",
		Role:   role,
	})
}

func TestCreate(t *testing.T) {
	author := uuid.New()

	t.Run("RequiresAuth", func(t *testing.T) {
		svc := post.NewService(newFakeRepo())
		_, err := svc.Create(context.Background(), post.CreatePostInput{Title: "제목", Content: "내용"})
		require.ErrorIs(t, err, post.ErrUnauthorized)
	})

	t.Run("RejectsEmptyFields", func(t *testing.T) {
		svc := post.NewService(newFakeRepo())
		_, err := svc.Create(userCtx(author, auth.RoleUser), post.CreatePostInput{Title: "  ", Content: "내용"})
		require.ErrorIs(t, err, post.ErrInvalidInput)
	})

	t.Run("DefaultsAnonymousAuthor", func(t *testing.T) {
		svc := post.NewService(newFakeRepo())
		p, err := svc.Create(userCtx(author, auth.RoleUser), post.CreatePostInput{Title: "제목", Content: "내용"})
		require.NoError(t, err)
		require.Equal(t, "익명", p.Author)
		require.Equal(t, author, p.AuthorID)
	})
}

func TestGet(t *testing.T) {
	repo := newFakeRepo()
	svc := post.NewService(repo)
	author := uuid.New()

	p, err := svc.Create(userCtx(author, auth.RoleUser), post.CreatePostInput{
		Title: "경제 공부법", Content: "매일 퀴즈 풀기", Author: "경제왕",
	})
	require.NoError(t, err)

	t.Run("CountsView", func(t *testing.T) {
		got, _, err := svc.Get(context.Background(), p.ID.String())
		require.NoError(t, err)
		require.Equal(t, 1, got.Views)
		require.Equal(t, 1, repo.counters[p.ID.String()]["views"])
	})

	t.Run("UnknownID", func(t *testing.T) {
		_, _, err := svc.Get(context.Background(), uuid.New().String())
		require.ErrorIs(t, err, post.ErrPostNotFound)
	})

	t.Run("MalformedID", func(t *testing.T) {
		_, _, err := svc.Get(context.Background(), "not-a-uuid")
		require.ErrorIs(t, err, post.ErrPostNotFound)
	})
}

func TestReact(t *testing.T) {
	repo := newFakeRepo()
	svc := post.NewService(repo)
	author := uuid.New()

	p, err := svc.Create(userCtx(author, auth.RoleUser), post.CreatePostInput{Title: "제목", Content: "내용"})
	require.NoError(t, err)

	require.NoError(t, svc.React(context.Background(), p.ID.String(), "like"))
	require.NoError(t, svc.React(context.Background(), p.ID.String(), "dislike"))
	require.Equal(t, 1, repo.counters[p.ID.String()]["likes"])
	require.Equal(t, 1, repo.counters[p.ID.String()]["dislikes"])

	require.ErrorIs(t, svc.React(context.Background(), p.ID.String(), "love"), post.ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()

	newPost := func(t *testing.T) (*fakeRepo, post.Service, *post.Post) {
		t.Helper()
		repo := newFakeRepo()
		svc := post.NewService(repo)
		p, err := svc.Create(userCtx(author, auth.RoleUser), post.CreatePostInput{Title: "제목", Content: "내용"})
		require.NoError(t, err)
		return repo, svc, p
	}

	t.Run("AuthorCanSoftDelete", func(t *testing.T) {
		repo, svc, p := newPost(t)
		require.NoError(t, svc.Delete(userCtx(author, auth.RoleUser), p.ID.String()))
		require.True(t, repo.posts[p.ID.String()].IsDeleted)

		// Hidden from the public read path afterwards.
		_, _, err := svc.Get(context.Background(), p.ID.String())
		require.ErrorIs(t, err, post.ErrPostNotFound)
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		_, svc, p := newPost(t)
		require.ErrorIs(t, svc.Delete(userCtx(stranger, auth.RoleUser), p.ID.String()), post.ErrForbidden)
	})

	t.Run("AdminMaySoftDelete", func(t *testing.T) {
		repo, svc, p := newPost(t)
		require.NoError(t, svc.Delete(userCtx(stranger, auth.RoleAdmin), p.ID.String()))
		require.True(t, repo.posts[p.ID.String()].IsDeleted)
	})
}

func TestComments(t *testing.T) {
	author := uuid.New()
	commenter := uuid.New()

	repo := newFakeRepo()
	svc := post.NewService(repo)
	p, err := svc.Create(userCtx(author, auth.RoleUser), post.CreatePostInput{Title: "제목", Content: "내용"})
	require.NoError(t, err)

	c, err := svc.AddComment(userCtx(commenter, auth.RoleUser), p.ID.String(), post.CreateCommentInput{
		Content: "좋은 글이네요", Author: "독자",
	})
	require.NoError(t, err)
	require.Equal(t, 1, repo.counters[p.ID.String()]["comments"])

	t.Run("EmptyContentRejected", func(t *testing.T) {
		_, err := svc.AddComment(userCtx(commenter, auth.RoleUser), p.ID.String(), post.CreateCommentInput{Content: "  "})
		require.ErrorIs(t, err, post.ErrInvalidInput)
	})

	t.Run("StrangerCannotDelete", func(t *testing.T) {
		err := svc.DeleteComment(userCtx(author, auth.RoleUser), c.ID.String())
		require.ErrorIs(t, err, post.ErrForbidden)
	})

	t.Run("AuthorHardDeletesAndDecrements", func(t *testing.T) {
		require.NoError(t, svc.DeleteComment(userCtx(commenter, auth.RoleUser), c.ID.String()))
		require.Equal(t, 0, repo.counters[p.ID.String()]["comments"])
		require.Empty(t, repo.comments)
	})
}
