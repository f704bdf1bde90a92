//go:build unit

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-storefront/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtectionEvent(t *testing.T) {
	m := metrics.New()

	m.ProtectionEvent(metrics.GuardRateLimit, metrics.OutcomeBlocked)
	m.ProtectionEvent(metrics.GuardRateLimit, metrics.OutcomeBlocked)
	m.ProtectionEvent(metrics.GuardHoneypot, metrics.OutcomeRejected)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProtectionEvents.WithLabelValues("rate_limit", "blocked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProtectionEvents.WithLabelValues("honeypot", "rejected")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ProtectionEvents.WithLabelValues("csrf", "rejected")))
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodPost, "/api/contact", http.StatusTooManyRequests, 15*time.Millisecond)
	m.ProtectionEvent(metrics.GuardCSRF, metrics.OutcomeRejected)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `storefront_protection_events_total{guard="csrf",outcome="rejected"} 1`)
	assert.Contains(t, string(body), `storefront_http_requests_total{method="POST",route="/api/contact",status="429"} 1`)
}

func TestNewIsolated(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New()
		metrics.New()
	})
}
