package cookie

import (
	"net/http"
	"time"

	"hotel-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	CSRFSessionCookieName = "csrf_session"
)

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	set(c, cfg, AccessTokenCookieName, token, int(expiry.Seconds()))
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AccessTokenCookieName, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// SetCSRFSession stores the opaque session id the CSRF token is keyed by.
func SetCSRFSession(c *gin.Context, cfg config.CookieConfig, session string, expiry time.Duration) {
	set(c, cfg, CSRFSessionCookieName, session, int(expiry.Seconds()))
}

func GetCSRFSession(c *gin.Context) string {
	session, _ := c.Cookie(CSRFSessionCookieName)
	return session
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		name,
		value,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
