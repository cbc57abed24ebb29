package cache

import (
	"context"
	"errors"
	"time"

	"payplan/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisQuoteCache stores serialized quotes in Redis.
type RedisQuoteCache struct {
	client *redis.Client
}

var _ interfaces.IQuoteCache = (*RedisQuoteCache)(nil)

func NewRedisQuoteCache(client *redis.Client) *RedisQuoteCache {
	return &RedisQuoteCache{client: client}
}

func (c *RedisQuoteCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisQuoteCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
