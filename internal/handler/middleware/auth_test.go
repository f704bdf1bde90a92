//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-storefront/internal/domain/user"
	"hotel-storefront/internal/handler/middleware"
	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/cookie"
	"hotel-storefront/internal/pkg/jwt"
	"hotel-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clk := clock.NewMockClock(baseTime)
	svc := jwt.NewService("test-secret", time.Hour, clk)
	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	token := func(t *testing.T, role user.Role) (uuid.UUID, string) {
		id := uuid.New()
		tok, _, err := svc.GenerateToken(id, string(role))
		require.NoError(t, err)
		return id, tok
	}

	router := gin.New()
	echo := func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, id.String())
	}
	router.GET("/me", mw.RequireAuth(), echo)
	router.GET("/admin", mw.RequireAuth(), mw.RequireRoleAtLeast(user.RoleAdmin), echo)
	router.GET("/optional", mw.OptionalAuth(), echo)

	t.Run("RequireAuth", func(t *testing.T) {
		id, tok := token(t, user.RoleCustomer)

		rec := doRequest(router, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + tok})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id.String(), rec.Body.String())

		rec = doRequest(router, http.MethodGet, "/me", map[string]string{"Cookie": cookie.AccessTokenCookieName + "=" + tok})
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(router, http.MethodGet, "/me", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Access token required")

		rec = doRequest(router, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer not-a-jwt"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})

	t.Run("期限切れトークン", func(t *testing.T) {
		_, tok := token(t, user.RoleCustomer)
		clk.Add(2 * time.Hour)
		defer clk.Set(baseTime)

		rec := doRequest(router, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + tok})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("RequireRoleAtLeast", func(t *testing.T) {
		_, customer := token(t, user.RoleCustomer)
		_, admin := token(t, user.RoleAdmin)

		rec := doRequest(router, http.MethodGet, "/admin", map[string]string{"Authorization": "Bearer " + customer})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Insufficient permissions")

		rec = doRequest(router, http.MethodGet, "/admin", map[string]string{"Authorization": "Bearer " + admin})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("OptionalAuth", func(t *testing.T) {
		id, tok := token(t, user.RoleCustomer)

		rec := doRequest(router, http.MethodGet, "/optional", nil)
		assert.Equal(t, "anonymous", rec.Body.String())

		rec = doRequest(router, http.MethodGet, "/optional", map[string]string{"Authorization": "Bearer garbage"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())

		rec = doRequest(router, http.MethodGet, "/optional", map[string]string{"Authorization": "Bearer " + tok})
		assert.Equal(t, id.String(), rec.Body.String())
	})
}
