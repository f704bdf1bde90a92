package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-storefront/internal/pkg/clock"
)

const (
	DefaultSweepInterval = 5 * time.Minute
	DefaultIdleTTL       = time.Hour
)

// Limiter counts attempts per identifier and locks an identifier out once it
// exceeds its policy. It never returns errors: a failing store is logged and
// the attempt is denied.
type Limiter struct {
	store  Store
	clock  clock.Clock
	logger *slog.Logger

	sweepInterval time.Duration
	idleTTL       time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

type Option func(*Limiter)

func WithSweepInterval(d time.Duration) Option {
	return func(l *Limiter) {
		if d > 0 {
			l.sweepInterval = d
		}
	}
}

func WithIdleTTL(d time.Duration) Option {
	return func(l *Limiter) {
		if d > 0 {
			l.idleTTL = d
		}
	}
}

func NewLimiter(store Store, clk clock.Clock, logger *slog.Logger, opts ...Option) *Limiter {
	l := &Limiter{
		store:         store,
		clock:         clk,
		logger:        logger,
		sweepInterval: DefaultSweepInterval,
		idleTTL:       DefaultIdleTTL,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Key namespaces an identifier by the protected action so that, for example,
// login failures do not eat into the contact form budget.
func Key(scope, identifier string) string {
	return scope + ":" + identifier
}

// Check records one attempt for identifier and reports whether it may proceed.
func (l *Limiter) Check(ctx context.Context, identifier string, policy Policy) Status {
	now := l.clock.Now()

	var status Status
	err := l.store.Update(ctx, identifier, func(current *Entry) *Entry {
		if current != nil && current.blockedAt(now) {
			status = blockedStatus(*current.BlockedUntil)
			return nil
		}

		if current == nil || current.windowExpired(now, policy.Window) {
			status = Status{Allowed: true, RemainingAttempts: max(policy.MaxAttempts-1, 0)}
			return &Entry{Attempts: 1, FirstAttempt: now, LastAttempt: now}
		}

		next := *current
		next.Attempts++
		next.LastAttempt = now

		if next.Attempts > policy.MaxAttempts {
			until := now.Add(policy.BlockDuration)
			next.BlockedUntil = &until
			status = blockedStatus(until)
			return &next
		}

		status = Status{Allowed: true, RemainingAttempts: policy.MaxAttempts - next.Attempts}
		return &next
	})
	if err != nil {
		l.logger.Error("rate limit store failed, denying attempt",
			"identifier", identifier,
			"error", err)
		return deniedStatus()
	}

	if !status.Allowed {
		l.logger.Warn("rate limit exceeded",
			"identifier", identifier,
			"reset_time", status.ResetTime)
	}
	return status
}

// Peek reports the state Check would observe without recording an attempt.
func (l *Limiter) Peek(ctx context.Context, identifier string, policy Policy) Status {
	now := l.clock.Now()

	current, err := l.store.Get(ctx, identifier)
	if err != nil {
		l.logger.Error("rate limit store failed on peek",
			"identifier", identifier,
			"error", err)
		return deniedStatus()
	}

	switch {
	case current != nil && current.blockedAt(now):
		return blockedStatus(*current.BlockedUntil)
	case current == nil || current.windowExpired(now, policy.Window):
		return Status{Allowed: true, RemainingAttempts: policy.MaxAttempts}
	default:
		return Status{Allowed: true, RemainingAttempts: max(policy.MaxAttempts-current.Attempts, 0)}
	}
}

// Reset forgets identifier entirely.
func (l *Limiter) Reset(ctx context.Context, identifier string) {
	if err := l.store.Delete(ctx, identifier); err != nil {
		l.logger.Error("failed to reset rate limit entry",
			"identifier", identifier,
			"error", err)
	}
}

// Sweep removes entries idle for longer than the idle TTL.
func (l *Limiter) Sweep(ctx context.Context) int {
	removed, err := l.store.Sweep(ctx, l.clock.Now().Add(-l.idleTTL))
	if err != nil {
		l.logger.Error("rate limit sweep failed", "error", err)
		return 0
	}
	if removed > 0 {
		l.logger.Debug("rate limit sweep", "removed", removed)
	}
	return removed
}

// Start launches the periodic sweep. Calling it on a running limiter is a no-op.
func (l *Limiter) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})

	go l.run(ctx, l.done)
}

// Stop halts the sweep and waits for it to exit.
func (l *Limiter) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (l *Limiter) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(l.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep(ctx)
		}
	}
}
