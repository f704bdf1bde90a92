//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-storefront/internal/pkg/csrf"
	"hotel-storefront/internal/pkg/honeypot"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// FormSession plays a browser that fetched a CSRF token and renders
// protected forms.
type FormSession struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
	Token   string
}

// NewFormSession calls tokenPath and keeps the session cookie and token.
func NewFormSession(t *testing.T, router *gin.Engine, tokenPath string) *FormSession {
	t.Helper()

	s := &FormSession{t: t, router: router, cookies: map[string]*http.Cookie{}}
	w := s.Do(http.MethodGet, tokenPath, nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"csrf_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	s.Token = body.Token
	return s
}

// Do sends body with the session cookies and, when set, the CSRF header.
// Cookies and a rotated token from the response are kept.
func (s *FormSession) Do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	s.t.Helper()

	req := NewJSONRequest(s.t, method, path, body)
	if s.Token != "" {
		req.Header.Set(csrf.HeaderName, s.Token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for _, c := range s.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		s.cookies[c.Name] = c
	}
	if rotated := w.Header().Get(csrf.HeaderName); rotated != "" {
		s.Token = rotated
	}
	return w
}

// Cookie returns the stored cookie by name.
func (s *FormSession) Cookie(name string) *http.Cookie {
	return s.cookies[name]
}

// HumanForm adds an empty decoy and a render timestamp old enough to pass
// the timing check.
func HumanForm(fields map[string]any, renderedAt time.Time) map[string]any {
	out := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		out[k] = v
	}
	out[honeypot.DefaultFieldName] = ""
	out[honeypot.TimestampField] = renderedAt.UnixMilli()
	return out
}
