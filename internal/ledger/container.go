package ledger

import "github.com/redis/go-redis/v9"

type Container struct {
	Handler *Handler
	Service *Service
}

func NewContainer(client *redis.Client) *Container {
	service := NewService(NewRedisStore(client))
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
