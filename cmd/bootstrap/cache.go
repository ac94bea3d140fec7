package bootstrap

import (
	"context"
	"log/slog"

	"salon-booking/internal/infra/cache"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewAvailabilityCache,
	),
)

// NewAvailabilityCache wires Redis when an address is configured and the
// noop cache otherwise, so availability always works without Redis.
func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config) (queries.AvailabilityCache, error) {
	if !cfg.Redis.Enabled() {
		slog.Info("availability cache disabled, no Redis address configured")
		return cache.NewNoopCache(), nil
	}

	client, cleanup, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return cache.NewRedisAvailabilityCache(client, cfg.Redis), nil
}
