package bootstrap

import (
	"context"
	"log/slog"

	"hotel-storefront/internal/infra/cache"
	"hotel-storefront/internal/infra/db"
	"hotel-storefront/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

var CacheModule = fx.Module("cache",
	fx.Provide(NewRedis),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	closeOnStop(lc, cleanup)
	return pool, nil
}

// NewRedis returns nil when neither the rate limiter nor the CSRF store is
// configured for Redis, so single-instance deployments need no Redis at all.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if cfg.RateLimit.Backend != config.BackendRedis && cfg.CSRF.Backend != config.BackendRedis {
		logger.Info("redis disabled, using in-memory protection stores")
		return nil, nil
	}

	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}
	closeOnStop(lc, cleanup)
	return client, nil
}

func closeOnStop(lc fx.Lifecycle, cleanup func()) {
	lc.Append(fx.StopHook(func(context.Context) error {
		cleanup()
		return nil
	}))
}
