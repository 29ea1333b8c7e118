package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisAdapter backs the worker's idempotency guard. It exposes only
// the key-claim primitives the guard needs, not a generic cache.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(c *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: c}
}

// Connect opens a client against addr and verifies it with a ping.
func Connect(ctx context.Context, addr, password string, db int) (*RedisAdapter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return &RedisAdapter{client: client}, nil
}

func (r *RedisAdapter) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return r.client.SetNX(ctx, key, value, expiration).Result()
}

func (r *RedisAdapter) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisAdapter) Close() error {
	return r.client.Close()
}
