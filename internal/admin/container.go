package admin

import (
	"github.com/yeonjeyeong/economy-lingo/internal/post"
	"github.com/yeonjeyeong/economy-lingo/internal/ranking"
	"github.com/yeonjeyeong/economy-lingo/internal/user"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(users user.UserRepository, posts post.Repository, board ranking.Board) *Container {
	service := NewService(users, posts, board)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
