// Package cache provides an optional Redis-backed byte cache used by the
// movie metadata service. A nil *Cache is valid and behaves as a miss on
// every lookup, so callers never branch on whether caching is configured.
package cache

import (
	"context"
	"fmt"
	"time"

	"movie-reviews/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Cache struct {
	client *redis.Client
	log    *zap.Logger
}

func New(config utils.RedisConfig, log *zap.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", config.Addr, err)
	}

	return &Cache{
		client: client,
		log:    log.With(zap.String("component", "cache")),
	}, nil
}

// Get returns the cached value and whether it was present.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("Cache get failed", zap.Error(err), zap.String("key", key))
		return nil, false
	}

	return val, true
}

// Set stores a value with a TTL. Failures are logged and swallowed; the
// cache is never allowed to fail a request.
func (c *Cache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if c == nil {
		return
	}

	if err := c.client.Set(ctx, key, val, ttl).Err(); err != nil {
		c.log.Warn("Cache set failed", zap.Error(err), zap.String("key", key))
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
