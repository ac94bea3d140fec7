// Package cache holds the Redis-backed availability day cache. Cache failures
// are logged and swallowed: availability must keep working when Redis is down.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisAvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAvailabilityCache(client *redis.Client, cfg config.RedisConfig) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{client: client, ttl: cfg.CacheTTL}
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

func cacheKey(professionalID uuid.UUID, date string) string {
	return fmt.Sprintf("availability:%s:%s", professionalID, date)
}

func (c *RedisAvailabilityCache) Get(ctx context.Context, professionalID uuid.UUID, date string) (*queries.AvailabilityView, bool) {
	raw, err := c.client.Get(ctx, cacheKey(professionalID, date)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("availability cache read failed", "error", err.Error())
		}
		return nil, false
	}

	var view queries.AvailabilityView
	if err := json.Unmarshal(raw, &view); err != nil {
		slog.Warn("availability cache entry corrupt, discarding", "error", err.Error())
		c.Invalidate(ctx, professionalID, date)
		return nil, false
	}
	return &view, true
}

func (c *RedisAvailabilityCache) Set(ctx context.Context, professionalID uuid.UUID, date string, view *queries.AvailabilityView) {
	raw, err := json.Marshal(view)
	if err != nil {
		slog.Warn("availability cache encode failed", "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, cacheKey(professionalID, date), raw, c.ttl).Err(); err != nil {
		slog.Warn("availability cache write failed", "error", err.Error())
	}
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, professionalID uuid.UUID, date string) {
	if err := c.client.Del(ctx, cacheKey(professionalID, date)).Err(); err != nil {
		slog.Warn("availability cache invalidation failed", "error", err.Error())
	}
}

// NoopCache is wired when no Redis address is configured.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) Get(context.Context, uuid.UUID, string) (*queries.AvailabilityView, bool) {
	return nil, false
}
func (NoopCache) Set(context.Context, uuid.UUID, string, *queries.AvailabilityView) {}
func (NoopCache) Invalidate(context.Context, uuid.UUID, string)                     {}
