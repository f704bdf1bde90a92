//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"hotel-storefront/internal/domain/user"
	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/errs"
	"hotel-storefront/internal/pkg/jwt"
	"hotel-storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour, clock.NewRealClock())
	validator := usecase.NewTokenValidator(svc)

	t.Run("有効なトークン", func(t *testing.T) {
		userID := uuid.New()
		token, _, err := svc.GenerateToken(userID, "admin")
		require.NoError(t, err)

		gotID, role, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, user.RoleAdmin, role)
	})

	t.Run("未知のロールNG", func(t *testing.T) {
		token, _, err := svc.GenerateToken(uuid.New(), "operator")
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		require.ErrorIs(t, err, user.ErrInvalidRole)
		assert.True(t, errs.Is(err, usecase.ErrInvalidToken))
	})

	t.Run("署名違いNG", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour, clock.NewRealClock())
		token, _, err := other.GenerateToken(uuid.New(), "customer")
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.True(t, errs.Is(err, usecase.ErrInvalidToken))
	})

	t.Run("subjectなしNG", func(t *testing.T) {
		token, _, err := svc.GenerateToken(uuid.Nil, "customer")
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.True(t, errs.Is(err, usecase.ErrInvalidToken))
	})

	t.Run("期限切れNG", func(t *testing.T) {
		past := jwt.NewService("secret", time.Hour, clock.NewMockClock(time.Now().Add(-2*time.Hour)))
		token, _, err := past.GenerateToken(uuid.New(), "customer")
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.True(t, errs.Is(err, usecase.ErrInvalidToken))
	})
}
