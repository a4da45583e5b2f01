package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKey = "storage.%s"

// Cached puts a redis cache in front of another Storage.
// Cache failures are logged and the primary storage is used instead.
type Cached struct {
	log     *zap.SugaredLogger
	primary Storage
	cache   *redis.Client
	ttl     time.Duration
	timeout time.Duration
}

func NewCached(log *zap.SugaredLogger, primary Storage, cache *redis.Client, ttl, timeout time.Duration) *Cached {
	return &Cached{
		log:     log,
		primary: primary,
		cache:   cache,
		ttl:     ttl,
		timeout: timeout,
	}
}

func (c *Cached) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ck := fmt.Sprintf(cacheKey, key)

	tcCtx, tcCancel := withTimeout(ctx, c.timeout)
	defer tcCancel()
	get, err := c.cache.Get(tcCtx, ck).Bytes()
	if err != nil && err != redis.Nil {
		c.log.Errorw("cache", "status", "failure to get from cache", "key", ck, "ERROR", err)
	}
	if err == nil {
		return get, true, nil
	}

	data, found, err := c.primary.Get(ctx, key)
	if err != nil || !found {
		return data, found, err
	}

	c.store(ctx, ck, data)
	return data, true, nil
}

func (c *Cached) Set(ctx context.Context, key string, value []byte) error {
	ck := fmt.Sprintf(cacheKey, key)

	if err := c.primary.Set(ctx, key, value); err != nil {
		c.evict(ctx, ck)
		return err
	}

	c.store(ctx, ck, value)
	return nil
}

func (c *Cached) Close() error {
	return c.primary.Close()
}

func (c *Cached) store(ctx context.Context, ck string, value []byte) {
	tcCtx, tcCancel := withTimeout(ctx, c.timeout)
	defer tcCancel()

	if err := c.cache.Set(tcCtx, ck, value, c.ttl).Err(); err != nil {
		c.log.Errorw("cache", "status", "failure to set into cache", "key", ck, "ERROR", err)
		c.evict(ctx, ck)
	}
}

// evict drops a possibly stale entry so the next read goes to the primary.
func (c *Cached) evict(ctx context.Context, ck string) {
	tcCtx, tcCancel := withTimeout(ctx, c.timeout)
	defer tcCancel()

	if err := c.cache.Del(tcCtx, ck).Err(); err != nil {
		c.log.Errorw("cache", "status", "failure to evict from cache", "key", ck, "ERROR", err)
	}
}
