//go:build unit

package ratelimit_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	baseTime = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	testCfg  = ratelimit.Policy{MaxAttempts: 3, Window: 60 * time.Second, BlockDuration: 300 * time.Second}
)

func newLimiter(t *testing.T) (*ratelimit.Limiter, *ratelimit.MemoryStore, *clock.MockClock) {
	t.Helper()
	store := ratelimit.NewMemoryStore()
	clk := clock.NewMockClock(baseTime)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ratelimit.NewLimiter(store, clk, logger), store, clk
}

func TestLimiter_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("3回まで許可され4回目でブロック", func(t *testing.T) {
		limiter, _, clk := newLimiter(t)

		for i, expected := range []int{2, 1, 0} {
			clk.Add(time.Second)
			status := limiter.Check(ctx, "x", testCfg)
			assert.True(t, status.Allowed, "attempt %d", i+1)
			assert.Equal(t, expected, status.RemainingAttempts, "attempt %d", i+1)
			assert.Nil(t, status.ResetTime)
		}

		clk.Add(time.Second)
		status := limiter.Check(ctx, "x", testCfg)
		assert.False(t, status.Allowed)
		assert.Equal(t, 0, status.RemainingAttempts)
		require.NotNil(t, status.ResetTime)
		assert.Equal(t, clk.Now().Add(300*time.Second), *status.ResetTime)
		assert.Equal(t, 300*time.Second, status.RetryAfter(clk.Now()))
	})

	t.Run("ブロック中は状態を変更しない", func(t *testing.T) {
		limiter, store, clk := newLimiter(t)
		for range 4 {
			limiter.Check(ctx, "x", testCfg)
		}
		before, err := store.Get(ctx, "x")
		require.NoError(t, err)

		clk.Add(10 * time.Second)
		status := limiter.Check(ctx, "x", testCfg)

		after, err := store.Get(ctx, "x")
		require.NoError(t, err)
		assert.False(t, status.Allowed)
		assert.Equal(t, *before.BlockedUntil, *status.ResetTime)
		assert.Equal(t, before, after)
	})

	t.Run("ウィンドウ経過で初期化", func(t *testing.T) {
		limiter, _, clk := newLimiter(t)
		limiter.Check(ctx, "x", testCfg)
		limiter.Check(ctx, "x", testCfg)

		clk.Add(61 * time.Second)
		status := limiter.Check(ctx, "x", testCfg)

		assert.True(t, status.Allowed)
		assert.Equal(t, 2, status.RemainingAttempts)
	})

	t.Run("ウィンドウ境界ちょうどは同じウィンドウ", func(t *testing.T) {
		limiter, _, clk := newLimiter(t)
		limiter.Check(ctx, "x", testCfg)

		clk.Add(60 * time.Second)
		status := limiter.Check(ctx, "x", testCfg)

		assert.Equal(t, 1, status.RemainingAttempts)
	})

	t.Run("ブロック期間経過後は新規扱い", func(t *testing.T) {
		limiter, _, clk := newLimiter(t)
		for range 4 {
			limiter.Check(ctx, "x", testCfg)
		}

		clk.Add(301 * time.Second)
		status := limiter.Check(ctx, "x", testCfg)

		assert.True(t, status.Allowed)
		assert.Equal(t, 2, status.RemainingAttempts)
	})

	t.Run("識別子ごとに独立", func(t *testing.T) {
		limiter, _, _ := newLimiter(t)
		for range 4 {
			limiter.Check(ctx, "a", testCfg)
		}

		assert.False(t, limiter.Check(ctx, "a", testCfg).Allowed)
		assert.True(t, limiter.Check(ctx, "b", testCfg).Allowed)
	})
}

func TestLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	limiter, store, _ := newLimiter(t)

	for range 4 {
		limiter.Check(ctx, "x", testCfg)
	}
	limiter.Reset(ctx, "x")

	assert.Equal(t, 0, store.Len())
	status := limiter.Check(ctx, "x", testCfg)
	assert.True(t, status.Allowed)
	assert.Equal(t, testCfg.MaxAttempts-1, status.RemainingAttempts)

	assert.NotPanics(t, func() { limiter.Reset(ctx, "unknown") })
}

func TestLimiter_Peek(t *testing.T) {
	ctx := context.Background()

	t.Run("未知の識別子は満額", func(t *testing.T) {
		limiter, store, _ := newLimiter(t)

		status := limiter.Peek(ctx, "x", testCfg)

		assert.True(t, status.Allowed)
		assert.Equal(t, 3, status.RemainingAttempts)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("試行を消費しない", func(t *testing.T) {
		limiter, store, _ := newLimiter(t)
		limiter.Check(ctx, "x", testCfg)
		before, _ := store.Get(ctx, "x")

		for range 5 {
			status := limiter.Peek(ctx, "x", testCfg)
			assert.Equal(t, 2, status.RemainingAttempts)
		}

		after, _ := store.Get(ctx, "x")
		assert.Equal(t, before, after)
		assert.Equal(t, 1, limiter.Check(ctx, "x", testCfg).RemainingAttempts)
	})

	t.Run("ブロック中はブロックを報告", func(t *testing.T) {
		limiter, _, clk := newLimiter(t)
		for range 4 {
			limiter.Check(ctx, "x", testCfg)
		}
		clk.Add(90 * time.Second)

		status := limiter.Peek(ctx, "x", testCfg)

		assert.False(t, status.Allowed)
		require.NotNil(t, status.ResetTime)
		assert.Equal(t, 210*time.Second, status.RetryAfter(clk.Now()))
	})
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (*ratelimit.Entry, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Update(context.Context, string, ratelimit.UpdateFunc) error {
	return errors.New("connection refused")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("connection refused")
}

func (failingStore) Sweep(context.Context, time.Time) (int, error) {
	return 0, errors.New("connection refused")
}

func TestLimiter_StoreFailure(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	limiter := ratelimit.NewLimiter(failingStore{}, clock.NewMockClock(baseTime), logger)

	check := limiter.Check(ctx, "x", testCfg)
	assert.False(t, check.Allowed)
	assert.Equal(t, 0, check.RemainingAttempts)
	assert.Nil(t, check.ResetTime)

	peek := limiter.Peek(ctx, "x", testCfg)
	assert.False(t, peek.Allowed)

	assert.NotPanics(t, func() { limiter.Reset(ctx, "x") })
	assert.Equal(t, 0, limiter.Sweep(ctx))
}

func TestLimiter_Sweep(t *testing.T) {
	ctx := context.Background()
	limiter, store, clk := newLimiter(t)

	limiter.Check(ctx, "stale", testCfg)
	clk.Add(50 * time.Minute)
	limiter.Check(ctx, "recent", testCfg)
	clk.Add(11 * time.Minute)

	removed := limiter.Sweep(ctx)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())
	entry, err := store.Get(ctx, "recent")
	require.NoError(t, err)
	assert.NotNil(t, entry)
}

func TestLimiter_StartStop(t *testing.T) {
	store := ratelimit.NewMemoryStore()
	clk := clock.NewMockClock(baseTime)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	limiter := ratelimit.NewLimiter(store, clk, logger,
		ratelimit.WithSweepInterval(5*time.Millisecond),
		ratelimit.WithIdleTTL(time.Hour),
	)

	ctx := context.Background()
	limiter.Check(ctx, "x", testCfg)
	clk.Add(2 * time.Hour)

	limiter.Start(ctx)
	limiter.Start(ctx)
	defer limiter.Stop()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	limiter.Stop()
	limiter.Stop()
}

func TestLimiter_Concurrent(t *testing.T) {
	ctx := context.Background()
	limiter, _, _ := newLimiter(t)
	policy := ratelimit.Policy{MaxAttempts: 50, Window: time.Minute, BlockDuration: time.Minute}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Check(ctx, "x", policy).Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
