package ratelimit

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel-storefront/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const maxTxRetries = 5

var ErrStoreContention = errors.New("rate limit entry kept changing during update")

// RedisStore shares rate-limit state between instances. Keys expire after the
// idle TTL (or after the block, whichever is later) so no sweep is needed.
type RedisStore struct {
	client  *redis.Client
	prefix  string
	idleTTL time.Duration
}

func NewRedisStore(client *redis.Client, prefix string, idleTTL time.Duration) *RedisStore {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &RedisStore{client: client, prefix: prefix, idleTTL: idleTTL}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Entry, error) {
	return readEntry(ctx, s.client, s.key(key))
}

func (s *RedisStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	redisKey := s.key(key)

	txf := func(tx *redis.Tx) error {
		current, err := readEntry(ctx, tx, redisKey)
		if err != nil {
			return err
		}
		next := fn(current)
		if next == nil {
			return nil
		}
		payload, err := json.Marshal(next)
		if err != nil {
			return errs.Wrap(err, "failed to encode rate limit entry")
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, redisKey, payload, s.ttlFor(next))
			return nil
		})
		return err
	}

	for range maxTxRetries {
		err := s.client.Watch(ctx, txf, redisKey)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return errs.Wrap(err, "failed to update rate limit entry")
	}
	return ErrStoreContention
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errs.Wrap(err, "failed to delete rate limit entry")
	}
	return nil
}

// Sweep is a no-op: Redis expires idle keys by itself.
func (s *RedisStore) Sweep(context.Context, time.Time) (int, error) {
	return 0, nil
}

func (s *RedisStore) ttlFor(e *Entry) time.Duration {
	ttl := s.idleTTL
	if e.BlockedUntil != nil {
		if d := e.BlockedUntil.Sub(e.LastAttempt); d > ttl {
			ttl = d
		}
	}
	return ttl
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readEntry(ctx context.Context, g getter, key string) (*Entry, error) {
	raw, err := g.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to read rate limit entry")
	}

	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, errs.Wrap(err, "failed to decode rate limit entry")
	}
	return &e, nil
}
