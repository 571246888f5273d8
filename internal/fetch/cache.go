package fetch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "page:"

// PageCache caches fetched vendor markup by URL. Implementations are
// best-effort: a cache failure must never fail a fetch.
type PageCache interface {
	Get(ctx context.Context, url string) (string, bool)
	Set(ctx context.Context, url, body string)
}

// NopCache is the PageCache used when caching is disabled.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (string, bool) { return "", false }
func (NopCache) Set(context.Context, string, string)        {}

// RedisPageCache is a short-TTL Redis-backed PageCache.
type RedisPageCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisPageCache creates a Redis-backed page cache with the given TTL.
func NewRedisPageCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisPageCache {
	return &RedisPageCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached markup for a URL, if present.
func (c *RedisPageCache) Get(ctx context.Context, url string) (string, bool) {
	body, err := c.client.Get(ctx, cacheKeyPrefix+url).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "page cache get failed",
				slog.String("url", url),
				slog.String("error", err.Error()),
			)
		}
		return "", false
	}
	return body, true
}

// Set stores fetched markup under its URL with the configured TTL.
func (c *RedisPageCache) Set(ctx context.Context, url, body string) {
	if err := c.client.Set(ctx, cacheKeyPrefix+url, body, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "page cache set failed",
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
	}
}
