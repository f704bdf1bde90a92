package middleware

import (
	"context"
	"strconv"

	"hotel-storefront/internal/handler/httperr"
	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/metrics"
	"hotel-storefront/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// APIScope keys the per-IP budget shared by all /api routes.
const APIScope = "api"

type RateChecker interface {
	Check(ctx context.Context, identifier string, policy ratelimit.Policy) ratelimit.Status
}

// RateLimit applies policy per client IP to every request it wraps.
func RateLimit(limiter RateChecker, policy ratelimit.Policy, events ProtectionRecorder, clk clock.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := limiter.Check(c.Request.Context(), ratelimit.Key(APIScope, c.ClientIP()), policy)
		if !status.Allowed {
			events.ProtectionEvent(metrics.GuardRateLimit, metrics.OutcomeBlocked)
			retryAfter := status.RetryAfter(clk.Now())
			httperr.AbortTooManyRequests(c, retryAfter, nil, "Too many requests", nil)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(policy.MaxAttempts))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(status.RemainingAttempts))
		c.Next()
	}
}
