package bootstrap

import (
	"context"
	"log/slog"

	"stayhub/internal/infra/ical"
	"stayhub/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewRedisClient,
		NewFeedCache,
		ical.NewExternalSource,
	),
)

// NewRedisClient returns nil when no Redis address is configured; the
// calendar source then runs without a feed cache.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		slog.Info("redis not configured, calendar feed cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewFeedCache(client *redis.Client, cfg config.Config) ical.FeedCache {
	if client == nil {
		return nil
	}
	return ical.NewRedisFeedCache(client, cfg.Redis.FeedTTL)
}
