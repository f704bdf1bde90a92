package csrf

import (
	"context"
	"errors"
	"sync"
	"time"

	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// TokenStore holds one token per session. GetToken returns "" when the
// session has none.
type TokenStore interface {
	GetToken(ctx context.Context, session string) (string, error)
	SetToken(ctx context.Context, session, token string) error
}

type memoryToken struct {
	value     string
	expiresAt time.Time
}

// MemoryTokenStore keeps tokens for ttl after they were set. Expired tokens
// read as missing; Sweep drops them.
type MemoryTokenStore struct {
	clock clock.Clock
	ttl   time.Duration

	mu     sync.Mutex
	tokens map[string]memoryToken
}

func NewMemoryTokenStore(clk clock.Clock, ttl time.Duration) *MemoryTokenStore {
	return &MemoryTokenStore{
		clock:  clk,
		ttl:    ttl,
		tokens: make(map[string]memoryToken),
	}
}

func (s *MemoryTokenStore) GetToken(_ context.Context, session string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tokens[session]
	if !ok {
		return "", nil
	}
	if !s.clock.Now().Before(t.expiresAt) {
		delete(s.tokens, session)
		return "", nil
	}
	return t.value, nil
}

func (s *MemoryTokenStore) SetToken(_ context.Context, session, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[session] = memoryToken{value: token, expiresAt: s.clock.Now().Add(s.ttl)}
	return nil
}

// Sweep removes expired tokens and reports how many were dropped.
func (s *MemoryTokenStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0
	for session, t := range s.tokens {
		if !now.Before(t.expiresAt) {
			delete(s.tokens, session)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (s *MemoryTokenStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *MemoryTokenStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

type RedisTokenStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisTokenStore(client *redis.Client, prefix string, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisTokenStore) GetToken(ctx context.Context, session string) (string, error) {
	val, err := s.client.Get(ctx, s.prefix+session).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errs.Wrap(err, "redis get csrf token")
	}
	return val, nil
}

func (s *RedisTokenStore) SetToken(ctx context.Context, session, token string) error {
	if err := s.client.Set(ctx, s.prefix+session, token, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set csrf token")
	}
	return nil
}
