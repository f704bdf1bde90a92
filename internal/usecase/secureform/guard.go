package secureform

//go:generate mockgen -source=guard.go -destination=../../../tests/mock/secureform/guard_mock.go -package=secureformmock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/errs"
	"hotel-storefront/internal/pkg/honeypot"
	"hotel-storefront/internal/pkg/metrics"
	"hotel-storefront/internal/pkg/ratelimit"
)

var (
	ErrRejected             = errors.New("submission rejected")
	ErrBlocked              = errors.New("too many attempts")
	ErrSubmissionInProgress = errors.New("submission already in progress")
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailure    State = "failure"
	StateBlocked    State = "blocked"
	StateRejected   State = "rejected"
)

type Result struct {
	State             State
	RemainingAttempts int
	RetryAfter        time.Duration
	Warning           string
}

// Handler is the real submit logic behind a protected form.
type Handler func(ctx context.Context) error

type RateLimiter interface {
	Check(ctx context.Context, identifier string, policy ratelimit.Policy) ratelimit.Status
	Peek(ctx context.Context, identifier string, policy ratelimit.Policy) ratelimit.Status
	Reset(ctx context.Context, identifier string)
}

type BotDetector interface {
	ValidateForm(values map[string]string) honeypot.Verdict
}

type EventRecorder interface {
	ProtectionEvent(guard, outcome string)
}

// Guard runs the abuse-protection pipeline in front of a form handler.
type Guard struct {
	limiter  RateLimiter
	detector BotDetector
	events   EventRecorder
	clock    clock.Clock
	logger   *slog.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewGuard(limiter RateLimiter, detector BotDetector, events EventRecorder, clk clock.Clock, logger *slog.Logger) *Guard {
	return &Guard{
		limiter:  limiter,
		detector: detector,
		events:   events,
		clock:    clk,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// Submit runs the honeypot, in-flight and rate limit checks for identifier,
// then the handler. A handler error is returned wrapped with the failure result.
func (g *Guard) Submit(ctx context.Context, form Form, identifier string, values map[string]string, handler Handler) (Result, error) {
	key := ratelimit.Key(form.Kind, identifier)

	if form.EnableHoneypot {
		verdict := g.detector.ValidateForm(values)
		if verdict.IsBot {
			g.logger.Warn("honeypot rejected submission",
				"form", form.Kind,
				"identifier", identifier,
				"reason", verdict.Reason)
			g.events.ProtectionEvent(metrics.GuardHoneypot, metrics.OutcomeRejected)
			return Result{State: StateRejected}, ErrRejected
		}
	}

	if !g.begin(key) {
		return g.duplicate(ctx, form, key)
	}
	defer g.end(key)

	var remaining int
	if form.EnableRateLimit {
		status := g.limiter.Check(ctx, key, form.Policy)
		if !status.Allowed {
			return g.blocked(status), ErrBlocked
		}
		g.events.ProtectionEvent(metrics.GuardRateLimit, metrics.OutcomeAllowed)
		remaining = status.RemainingAttempts
	}

	if err := handler(ctx); err != nil {
		result := Result{State: StateFailure, RemainingAttempts: remaining}
		if form.EnableRateLimit {
			status := g.limiter.Peek(ctx, key, form.Policy)
			result.RemainingAttempts = status.RemainingAttempts
			result.Warning = remainingWarning(status.RemainingAttempts)
		}
		return result, errs.Wrap(err, form.Kind+" submission failed")
	}

	if form.EnableRateLimit {
		g.limiter.Reset(ctx, key)
	}
	return Result{State: StateSuccess, RemainingAttempts: form.Policy.MaxAttempts}, nil
}

// duplicate answers a submission that arrived while another one for the same
// key is running. It only reads the limiter, so no attempt is charged; an
// active block still takes precedence.
func (g *Guard) duplicate(ctx context.Context, form Form, key string) (Result, error) {
	if !form.EnableRateLimit {
		return Result{State: StateSubmitting}, ErrSubmissionInProgress
	}
	status := g.limiter.Peek(ctx, key, form.Policy)
	if !status.Allowed {
		return g.blocked(status), ErrBlocked
	}
	return Result{State: StateSubmitting, RemainingAttempts: status.RemainingAttempts}, ErrSubmissionInProgress
}

func (g *Guard) blocked(status ratelimit.Status) Result {
	g.events.ProtectionEvent(metrics.GuardRateLimit, metrics.OutcomeBlocked)
	retryAfter := status.RetryAfter(g.clock.Now())
	return Result{
		State:      StateBlocked,
		RetryAfter: retryAfter,
		Warning:    blockedWarning(retryAfter),
	}
}

func (g *Guard) begin(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[key]; busy {
		return false
	}
	g.inFlight[key] = struct{}{}
	return true
}

func (g *Guard) end(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, key)
}

// Submitting reports whether a submission for identifier is in flight.
func (g *Guard) Submitting(form Form, identifier string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inFlight[ratelimit.Key(form.Kind, identifier)]
	return busy
}

func remainingWarning(remaining int) string {
	switch {
	case remaining <= 0:
		return "The next failed attempt will temporarily lock this form."
	case remaining == 1:
		return "1 attempt remaining before a temporary lockout."
	case remaining == 2:
		return "2 attempts remaining before a temporary lockout."
	default:
		return ""
	}
}

func blockedWarning(retryAfter time.Duration) string {
	minutes := int((retryAfter + time.Minute - 1) / time.Minute)
	if minutes <= 1 {
		return "Too many attempts. Please try again in 1 minute."
	}
	return fmt.Sprintf("Too many attempts. Please try again in %d minutes.", minutes)
}
