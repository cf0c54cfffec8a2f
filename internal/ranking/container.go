package ranking

import (
	"github.com/redis/go-redis/v9"

	"github.com/yeonjeyeong/economy-lingo/internal/user"
)

type Container struct {
	Handler *Handler
	Service Service
	Board   Board
}

func NewContainer(client *redis.Client, users user.UserRepository) *Container {
	board := NewRedisBoard(client)
	service := NewService(board, users)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Board:   board,
	}
}
