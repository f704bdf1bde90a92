package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"hotel-storefront/internal/handler/httperr"
	"hotel-storefront/internal/pkg/config"
	"hotel-storefront/internal/pkg/cookie"
	"hotel-storefront/internal/pkg/csrf"
	"hotel-storefront/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxCSRFSessionKey = "csrf_session"

type CSRFTokens interface {
	Init(ctx context.Context, session string) (string, error)
	Refresh(ctx context.Context, session string) (string, error)
	Validate(ctx context.Context, session, token string) bool
}

type ProtectionRecorder interface {
	ProtectionEvent(guard, outcome string)
}

// CSRFMiddleware binds the token manager to an HttpOnly session cookie and
// the X-CSRF-Token request header.
type CSRFMiddleware struct {
	tokens     CSRFTokens
	events     ProtectionRecorder
	cookieCfg  config.CookieConfig
	sessionTTL time.Duration
}

func NewCSRFMiddleware(tokens CSRFTokens, events ProtectionRecorder, cookieCfg config.CookieConfig, csrfCfg config.CSRFConfig) *CSRFMiddleware {
	return &CSRFMiddleware{
		tokens:     tokens,
		events:     events,
		cookieCfg:  cookieCfg,
		sessionTTL: csrfCfg.TokenTTL,
	}
}

// EnsureSession issues the session cookie on first contact.
func (m *CSRFMiddleware) EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := cookie.GetCSRFSession(c)
		if _, err := uuid.Parse(session); err != nil {
			session = uuid.NewString()
			cookie.SetCSRFSession(c, m.cookieCfg, session, m.sessionTTL)
		}
		c.Set(ctxCSRFSessionKey, session)
		c.Next()
	}
}

// RequireCSRF answers 403 unless the header token matches the session's.
func (m *CSRFMiddleware) RequireCSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetCSRFSession(c)
		token := c.GetHeader(csrf.HeaderName)

		if !m.tokens.Validate(c.Request.Context(), session, token) {
			m.events.ProtectionEvent(metrics.GuardCSRF, metrics.OutcomeRejected)
			slog.Warn("csrf validation failed",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
				"has_session", session != "",
				"has_token", token != "")
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Invalid or missing CSRF token", nil)
			return
		}

		m.events.ProtectionEvent(metrics.GuardCSRF, metrics.OutcomeAllowed)
		c.Next()
	}
}

// Issue returns the session's token, creating it if needed.
func (m *CSRFMiddleware) Issue(c *gin.Context) (string, error) {
	return m.tokens.Init(c.Request.Context(), GetCSRFSession(c))
}

// Rotate replaces the session's token and exposes the new one in the
// response header.
func (m *CSRFMiddleware) Rotate(c *gin.Context) {
	session := GetCSRFSession(c)
	if session == "" {
		return
	}
	token, err := m.tokens.Refresh(c.Request.Context(), session)
	if err != nil {
		slog.Error("failed to rotate csrf token", "error", err.Error())
		return
	}
	c.Header(csrf.HeaderName, token)
}

func GetCSRFSession(c *gin.Context) string {
	if v, ok := c.Get(ctxCSRFSessionKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return cookie.GetCSRFSession(c)
}
