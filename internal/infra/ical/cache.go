package ical

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const feedCacheKeyPrefix = "stayhub:feed:"

// RedisFeedCache keeps raw feed bodies for a short TTL so that bursts of
// booking attempts against the same unit do not hammer the external host.
// Every failure degrades to a cache miss; correctness never depends on it.
type RedisFeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFeedCache(client *redis.Client, ttl time.Duration) *RedisFeedCache {
	return &RedisFeedCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisFeedCache) Get(ctx context.Context, url string) ([]byte, bool) {
	body, err := c.client.Get(ctx, feedCacheKeyPrefix+url).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("feed cache read failed", "error", err.Error())
		}
		return nil, false
	}
	return body, true
}

func (c *RedisFeedCache) Set(ctx context.Context, url string, body []byte) {
	if err := c.client.Set(ctx, feedCacheKeyPrefix+url, body, c.ttl).Err(); err != nil {
		slog.Warn("feed cache write failed", "error", err.Error())
	}
}
