package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campuspay/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// pendingTTL bounds how stale a cached PENDING snapshot may be. It only has
// to outlive one browser polling interval.
const pendingTTL = 5 * time.Second

const pendingValue = "PENDING"

// RedisStatusCache implements the optional polling throttle on Redis. Only
// PENDING is ever stored; terminal outcomes always go back to the gateway
// and the record store.

type RedisStatusCache struct {
	client *redis.Client
}

var _ interfaces.IStatusCache = (*RedisStatusCache)(nil)

func NewRedisStatusCache(client *redis.Client) *RedisStatusCache {
	return &RedisStatusCache{client: client}
}

func (c *RedisStatusCache) GetPending(ctx context.Context, reference string) (bool, error) {
	val, err := c.client.Get(ctx, pendingKey(reference)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == pendingValue, nil
}

func (c *RedisStatusCache) SetPending(ctx context.Context, reference string) error {
	return c.client.Set(ctx, pendingKey(reference), pendingValue, pendingTTL).Err()
}

func pendingKey(reference string) string {
	return fmt.Sprintf("payment-status:%s", reference)
}
