//go:build unit

package components_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"hotel-storefront/cmd/bootstrap/components"
	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/config"
	"hotel-storefront/internal/pkg/csrf"
	"hotel-storefront/internal/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestProtectionStores(t *testing.T) {
	t.Run("memory設定ならメモリストア", func(t *testing.T) {
		cfg := config.NewTestConfig()
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		assert.IsType(t, &ratelimit.MemoryStore{}, components.NewRateLimitStore(cfg, nil, logger))
		assert.IsType(t, &csrf.MemoryTokenStore{},
			components.NewCSRFTokenStore(fxtest.NewLifecycle(t), cfg, nil, clock.NewRealClock(), logger))
		assert.Empty(t, buf.String())
	})

	t.Run("redis設定でクライアントなしは警告してメモリ", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.RateLimit.Backend = config.BackendRedis
		cfg.CSRF.Backend = config.BackendRedis
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		assert.IsType(t, &ratelimit.MemoryStore{}, components.NewRateLimitStore(cfg, nil, logger))
		assert.IsType(t, &csrf.MemoryTokenStore{},
			components.NewCSRFTokenStore(fxtest.NewLifecycle(t), cfg, nil, clock.NewRealClock(), logger))
		assert.Contains(t, buf.String(), "rate limiter falls back to memory")
		assert.Contains(t, buf.String(), "csrf tokens fall back to memory")
	})

	t.Run("メモリCSRFストアの掃除はライフサイクルで停止", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.CSRF.SweepInterval = time.Millisecond
		clk := clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
		lc := fxtest.NewLifecycle(t)

		store := components.NewCSRFTokenStore(lc, cfg, nil, clk, slog.Default())
		mem, ok := store.(*csrf.MemoryTokenStore)
		require.True(t, ok)
		require.NoError(t, store.SetToken(context.Background(), "s1", "token"))

		lc.RequireStart()
		clk.Add(cfg.CSRF.TokenTTL)
		assert.Eventually(t, func() bool { return mem.Len() == 0 }, time.Second, 5*time.Millisecond)
		lc.RequireStop()
	})
}
