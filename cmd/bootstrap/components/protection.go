package components

import (
	"context"
	"log/slog"

	"hotel-storefront/internal/handler/middleware"
	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/config"
	"hotel-storefront/internal/pkg/csrf"
	"hotel-storefront/internal/pkg/honeypot"
	"hotel-storefront/internal/pkg/metrics"
	"hotel-storefront/internal/pkg/ratelimit"
	"hotel-storefront/internal/usecase/secureform"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var ProtectionModule = fx.Module("protection",
	fx.Provide(
		metrics.New,
		NewRateLimitStore,
		NewLimiter,
		NewPresets,
		NewCSRFTokenStore,
		csrf.NewManager,
		NewCSRFMiddleware,
		NewDetector,
		NewGuard,
		NewForms,
	),
)

func NewRateLimitStore(cfg config.Config, client *redis.Client, logger *slog.Logger) ratelimit.Store {
	if cfg.RateLimit.Backend == config.BackendRedis {
		if client != nil {
			return ratelimit.NewRedisStore(client, cfg.RateLimit.KeyPrefix, cfg.RateLimit.IdleTTL)
		}
		logger.Warn("redis client unavailable, rate limiter falls back to memory")
	}
	return ratelimit.NewMemoryStore()
}

// NewLimiter ties the sweeper goroutine to the application lifecycle.
func NewLimiter(lc fx.Lifecycle, store ratelimit.Store, clk clock.Clock, logger *slog.Logger, cfg config.Config) *ratelimit.Limiter {
	limiter := ratelimit.NewLimiter(store, clk, logger,
		ratelimit.WithSweepInterval(cfg.RateLimit.SweepInterval),
		ratelimit.WithIdleTTL(cfg.RateLimit.IdleTTL),
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// The start context is cancelled once startup finishes.
			limiter.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			limiter.Stop()
			return nil
		},
	})

	return limiter
}

func NewPresets(cfg config.Config) ratelimit.Presets {
	return ratelimit.PresetsFromConfig(cfg.RateLimit)
}

// NewCSRFTokenStore ties the memory store's expiry sweep to the application
// lifecycle. Redis expires tokens on its own.
func NewCSRFTokenStore(lc fx.Lifecycle, cfg config.Config, client *redis.Client, clk clock.Clock, logger *slog.Logger) csrf.TokenStore {
	if cfg.CSRF.Backend == config.BackendRedis {
		if client != nil {
			return csrf.NewRedisTokenStore(client, cfg.CSRF.KeyPrefix, cfg.CSRF.TokenTTL)
		}
		logger.Warn("redis client unavailable, csrf tokens fall back to memory")
	}

	store := csrf.NewMemoryTokenStore(clk, cfg.CSRF.TokenTTL)
	if cfg.CSRF.SweepInterval <= 0 {
		return store
	}

	var (
		cancel context.CancelFunc
		done   chan struct{}
	)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			done = make(chan struct{})
			go func() {
				defer close(done)
				store.Run(ctx, cfg.CSRF.SweepInterval)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
	return store
}

func NewCSRFMiddleware(manager *csrf.Manager, m *metrics.Metrics, cfg config.Config) *middleware.CSRFMiddleware {
	return middleware.NewCSRFMiddleware(manager, m, cfg.Cookie, cfg.CSRF)
}

func NewDetector(clk clock.Clock, cfg config.Config) *honeypot.Detector {
	return honeypot.NewDetector(clk, cfg.Honeypot)
}

func NewGuard(limiter *ratelimit.Limiter, detector *honeypot.Detector, m *metrics.Metrics, clk clock.Clock, logger *slog.Logger) *secureform.Guard {
	return secureform.NewGuard(limiter, detector, m, clk, logger)
}

func NewForms(presets ratelimit.Presets, cfg config.Config) secureform.Forms {
	forms := secureform.NewForms(presets)
	if !cfg.Honeypot.Enabled {
		forms = forms.WithoutHoneypot()
	}
	return forms
}
