//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	resdto "hotel-storefront/internal/handler/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorBody is the envelope httperr writes for every failed request.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail,omitempty"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target != nil && expectedStatus >= 200 && expectedStatus < 300 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body is not JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error message contains
// expectedMsg, and hands back the decoded envelope.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body ErrorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "error body is not JSON: %s", w.Body.String())
	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg)
	}
	return body
}

// FormDetail decodes the SecureForm outcome attached to a form error.
func FormDetail(t *testing.T, body ErrorBody) resdto.FormResult {
	t.Helper()

	require.NotEmpty(t, body.Detail, "error carries no form detail")
	var out resdto.FormResult
	require.NoError(t, json.Unmarshal(body.Detail, &out))
	return out
}

// AssertBlocked checks a lockout answer: 429 with the Retry-After header in
// whole seconds.
func AssertBlocked(t *testing.T, w *httptest.ResponseRecorder, retryAfterSeconds int) {
	t.Helper()

	assert.Equal(t, http.StatusTooManyRequests, w.Code, "body: %s", w.Body.String())
	AssertHeaders(t, w, map[string]string{"Retry-After": strconv.Itoa(retryAfterSeconds)})
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s", k)
	}
}
