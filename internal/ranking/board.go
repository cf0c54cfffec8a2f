package ranking

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const boardKey = "ranking:score"

// Board is the sorted-set view of user scores. It is a cache over the user
// table and can be rebuilt from it at any time.
type Board interface {
	Increment(ctx context.Context, userID string, delta int) error
	Set(ctx context.Context, userID string, score int) error
	Top(ctx context.Context, limit int) ([]redis.Z, error)
}

type redisBoard struct {
	client *redis.Client
}

func NewRedisBoard(client *redis.Client) Board {
	return &redisBoard{client: client}
}

func (b *redisBoard) Increment(ctx context.Context, userID string, delta int) error {
	return b.client.ZIncrBy(ctx, boardKey, float64(delta), userID).Err()
}

func (b *redisBoard) Set(ctx context.Context, userID string, score int) error {
	return b.client.ZAdd(ctx, boardKey, redis.Z{Score: float64(score), Member: userID}).Err()
}

func (b *redisBoard) Top(ctx context.Context, limit int) ([]redis.Z, error) {
	return b.client.ZRevRangeWithScores(ctx, boardKey, 0, int64(limit-1)).Result()
}
