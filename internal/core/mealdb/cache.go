package mealdb

import (
	"context"

	"github.com/ivanmeda/recipe-finder/internal/infrastructure/config"
	"github.com/ivanmeda/recipe-finder/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ttlClass selects a cache lifetime for a provider response. The windows
// mirror the provider's own revalidation intervals.
type ttlClass int

const (
	ttlNone ttlClass = iota
	ttlShort
	ttlLong
)

// ResponseCache is a redis-backed cache of raw provider response bodies
// keyed by request path. Cache errors never fail a request.
type ResponseCache struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewResponseCache connects to redis and returns a cache, or nil when the
// cache is disabled or redis is unreachable. A nil cache is valid: the
// client degrades to direct fetches.
func NewResponseCache(cfg *config.CacheConfig) *ResponseCache {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		common.LogWarn("Redis unreachable, provider cache disabled",
			zap.Error(err),
			zap.String("addr", cfg.RedisAddr),
		)
		_ = client.Close()
		return nil
	}

	common.LogInfo("Provider response cache enabled",
		zap.String("addr", cfg.RedisAddr),
		zap.Duration("long_ttl", cfg.LongTTL),
		zap.Duration("short_ttl", cfg.ShortTTL),
	)

	return &ResponseCache{
		client: client,
		config: cfg,
	}
}

// Close releases the redis connection.
func (c *ResponseCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *ResponseCache) get(ctx context.Context, path string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.key(path)).Bytes()
	if err != nil {
		if err != redis.Nil {
			common.LogWarn("Cache read failed", zap.Error(err), zap.String("path", path))
		}
		return nil, false
	}
	return data, true
}

func (c *ResponseCache) set(ctx context.Context, path string, body []byte, ttl ttlClass) {
	d := c.config.ShortTTL
	if ttl == ttlLong {
		d = c.config.LongTTL
	}
	if err := c.client.Set(ctx, c.key(path), body, d).Err(); err != nil {
		common.LogWarn("Cache write failed", zap.Error(err), zap.String("path", path))
	}
}

func (c *ResponseCache) key(path string) string {
	return "mealdb:" + path
}
