package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis stores values as plain redis strings without expiration.
type Redis struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedis uses client for every operation. The client is owned by the caller.
func NewRedis(client *redis.Client, timeout time.Duration) *Redis {
	return &Redis{client: client, timeout: timeout}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	opCtx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	data, err := r.client.Get(opCtx, key).Bytes()
	switch {
	case err == redis.Nil:
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	return data, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	opCtx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.client.Set(opCtx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s into redis: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return nil
}
