//go:build e2e

package protection_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/csrf"
	"hotel-storefront/internal/pkg/ratelimit"
	"hotel-storefront/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var policy = ratelimit.Policy{MaxAttempts: 5, Window: 15 * time.Minute, BlockDuration: 30 * time.Minute}

type redisStoreSuite struct {
	e2e.SharedSuite

	prefix string
	clock  *clock.MockClock
}

func TestRedisStoreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(redisStoreSuite))
}

func (s *redisStoreSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.prefix = s.Config.RateLimit.KeyPrefix + "store-" + uuid.NewString() + ":"
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
}

func (s *redisStoreSuite) newLimiter() *ratelimit.Limiter {
	store := ratelimit.NewRedisStore(s.Redis, s.prefix, time.Hour)
	return ratelimit.NewLimiter(store, s.clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *redisStoreSuite) TestLimiter() {
	ctx := context.Background()

	s.Run("5回まで許可され6回目でブロック", func() {
		limiter := s.newLimiter()

		for i := range 5 {
			status := limiter.Check(ctx, "login:192.0.2.10", policy)
			s.True(status.Allowed, "attempt %d", i+1)
			s.Equal(4-i, status.RemainingAttempts)
		}

		status := limiter.Check(ctx, "login:192.0.2.10", policy)
		s.False(status.Allowed)
		s.Require().NotNil(status.ResetTime)
		s.Equal(30*time.Minute, status.RetryAfter(s.clock.Now()))

		ttl, err := s.Redis.TTL(ctx, s.prefix+"login:192.0.2.10").Result()
		s.Require().NoError(err)
		s.Greater(ttl, 30*time.Minute, "key outlives the block")
	})

	s.Run("ブロック解除後に再び許可", func() {
		limiter := s.newLimiter()
		for range 6 {
			limiter.Check(ctx, "k", policy)
		}
		s.False(limiter.Peek(ctx, "k", policy).Allowed)

		s.clock.Add(30*time.Minute + time.Second)
		status := limiter.Check(ctx, "k", policy)
		s.True(status.Allowed)
		s.Equal(4, status.RemainingAttempts)
	})

	s.Run("リセットでキーが消える", func() {
		limiter := s.newLimiter()
		limiter.Check(ctx, "k", policy)

		limiter.Reset(ctx, "k")

		n, err := s.Redis.Exists(ctx, s.prefix+"k").Result()
		s.Require().NoError(err)
		s.Zero(n)
		s.Equal(policy.MaxAttempts, limiter.Peek(ctx, "k", policy).RemainingAttempts)
	})

	s.Run("並行アクセスでも上限を超えない", func() {
		// Two limiters over one Redis stand in for two app instances.
		a, b := s.newLimiter(), s.newLimiter()

		var allowed atomic.Int32
		var wg sync.WaitGroup
		for i := range 20 {
			wg.Add(1)
			go func(l *ratelimit.Limiter) {
				defer wg.Done()
				if l.Check(ctx, "shared", policy).Allowed {
					allowed.Add(1)
				}
			}(map[bool]*ratelimit.Limiter{true: a, false: b}[i%2 == 0])
		}
		wg.Wait()

		// Contention beyond the WATCH retries is denied, never allowed.
		s.LessOrEqual(allowed.Load(), int32(policy.MaxAttempts))
		s.Positive(allowed.Load())
	})
}

func (s *redisStoreSuite) TestCSRFTokenStore() {
	ctx := context.Background()

	s.Run("トークンの保存と検証", func() {
		store := csrf.NewRedisTokenStore(s.Redis, s.prefix, time.Hour)
		manager := csrf.NewManager(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

		token, err := manager.Init(ctx, "session-1")
		s.Require().NoError(err)
		s.Len(token, 64)
		s.True(manager.Validate(ctx, "session-1", token))
		s.False(manager.Validate(ctx, "session-2", token))

		again, err := manager.Init(ctx, "session-1")
		s.Require().NoError(err)
		s.Equal(token, again)

		rotated, err := manager.Refresh(ctx, "session-1")
		s.Require().NoError(err)
		s.NotEqual(token, rotated)
		s.False(manager.Validate(ctx, "session-1", token))
		s.True(manager.Validate(ctx, "session-1", rotated))

		ttl, err := s.Redis.TTL(ctx, s.prefix+"session-1").Result()
		s.Require().NoError(err)
		s.Greater(ttl, time.Duration(0))
	})

	s.Run("未知のセッションは空", func() {
		store := csrf.NewRedisTokenStore(s.Redis, s.prefix, time.Hour)
		token, err := store.GetToken(ctx, "missing")
		s.Require().NoError(err)
		s.Empty(token)
	})
}
