package csrf

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"hotel-storefront/internal/pkg/errs"
)

const (
	HeaderName = "X-CSRF-Token"
	tokenBytes = 32
)

func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to read random bytes for csrf token")
	}
	return hex.EncodeToString(buf), nil
}

// Manager issues and checks the per-session token that state-changing
// requests must echo back.
type Manager struct {
	store  TokenStore
	logger *slog.Logger
}

func NewManager(store TokenStore, logger *slog.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// Init returns the session's current token, creating one on first use.
func (m *Manager) Init(ctx context.Context, session string) (string, error) {
	existing, err := m.store.GetToken(ctx, session)
	if err != nil {
		return "", errs.Wrap(err, "failed to load csrf token")
	}
	if existing != "" {
		return existing, nil
	}
	return m.Refresh(ctx, session)
}

// Refresh replaces the session's token unconditionally.
func (m *Manager) Refresh(ctx context.Context, session string) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}
	if err := m.store.SetToken(ctx, session, token); err != nil {
		return "", errs.Wrap(err, "failed to store csrf token")
	}
	return token, nil
}

// Validate reports whether token matches the stored one. A missing token on
// either side is invalid.
func (m *Manager) Validate(ctx context.Context, session, token string) bool {
	if session == "" || token == "" {
		return false
	}
	stored, err := m.store.GetToken(ctx, session)
	if err != nil {
		m.logger.Error("failed to load csrf token", "error", err)
		return false
	}
	if stored == "" {
		return false
	}
	return hmac.Equal([]byte(stored), []byte(token))
}
