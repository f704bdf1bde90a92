//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"hotel-storefront/internal/pkg/cookie"
	"hotel-storefront/tests/common/dbtest"
	"hotel-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	CSRFTokenURL = "/api/csrf-token"
	LoginURL     = "/api/auth/login"
	LogoutURL    = "/api/auth/logout"

	DefaultPassword = dbtest.DefaultPassword
)

// LoginUser signs in through the protected login form and returns the
// session that now carries the access token cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) *httptest.FormSession {
	t.Helper()

	sess := httptest.NewFormSession(t, router, CSRFTokenURL)
	body := httptest.HumanForm(map[string]any{
		"email":    email,
		"password": password,
	}, time.Now().Add(-5*time.Second))

	w := sess.Do(http.MethodPost, LoginURL, body, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := sess.Cookie(cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return sess
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) *httptest.FormSession {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, DefaultPassword)
}

func LogoutUser(t *testing.T, sess *httptest.FormSession) {
	t.Helper()

	w := sess.Do(http.MethodPost, LogoutURL, nil, nil)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
