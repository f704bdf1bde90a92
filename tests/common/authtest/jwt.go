//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-storefront/internal/domain/user"
	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/config"
	"hotel-storefront/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, clock.NewRealClock())
	token, _, err := service.GenerateToken(userID, role.String())
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose lifetime ended a minute ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issuedAt := clock.NewMockClock(time.Now().Add(-h.cfg.Duration - time.Minute))
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, issuedAt)
	token, _, err := service.GenerateToken(userID, role.String())
	require.NoError(t, err)
	return token
}
