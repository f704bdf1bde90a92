package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	resdto "hotel-storefront/internal/handler/dto/response"
	"hotel-storefront/internal/handler/httperr"
	"hotel-storefront/internal/pkg/csrf"
	"hotel-storefront/internal/pkg/errs"
	"hotel-storefront/internal/pkg/honeypot"
	"hotel-storefront/internal/usecase/secureform"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type FormGuard interface {
	Submit(ctx context.Context, form secureform.Form, identifier string, values map[string]string, handler secureform.Handler) (secureform.Result, error)
}

type HoneypotIssuer interface {
	Create() honeypot.Field
}

type CSRFSession interface {
	Issue(c *gin.Context) (string, error)
	Rotate(c *gin.Context)
}

// FormsHandler serves the render-time pieces every protected form needs.
type FormsHandler struct {
	honeypot HoneypotIssuer
	csrf     CSRFSession
}

func NewFormsHandler(honeypot HoneypotIssuer, csrf CSRFSession) *FormsHandler {
	return &FormsHandler{honeypot: honeypot, csrf: csrf}
}

// @Summary Get CSRF token
// @Description Issue the CSRF token bound to the caller's session cookie
// @Tags forms
// @Produce json
// @Success 200 {object} resdto.CSRFTokenResponse
// @Failure 500 {object} map[string]string
// @Router /csrf-token [get]
func (h *FormsHandler) CSRFToken(c *gin.Context) {
	token, err := h.csrf.Issue(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to issue CSRF token", nil)
		return
	}
	c.Header(csrf.HeaderName, token)
	c.JSON(http.StatusOK, resdto.CSRFTokenResponse{Token: token, Header: csrf.HeaderName})
}

// @Summary Get honeypot field
// @Description Decoy field and render timestamp to embed in a protected form
// @Tags forms
// @Produce json
// @Success 200 {object} resdto.HoneypotFieldResponse
// @Router /forms/honeypot [get]
func (h *FormsHandler) HoneypotField(c *gin.Context) {
	field := h.honeypot.Create()
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, resdto.HoneypotFieldResponse{
		Name:           field.Name,
		Value:          field.Value,
		Timestamp:      field.Timestamp,
		TimestampField: honeypot.TimestampField,
	})
}

// protectedForm runs a bound submission through the guard and renders the
// protection failures every form shares.
type protectedForm struct {
	guard FormGuard
	csrf  CSRFSession
}

// bindForm binds req and also returns the raw body as flat string values, so
// the guard sees fields the DTO does not declare.
func bindForm(c *gin.Context, req any) (map[string]string, error) {
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		return nil, err
	}

	raw, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return map[string]string{}, nil
	}
	body, _ := raw.([]byte)

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, errs.Wrap(err, "failed to decode form values")
	}

	values := make(map[string]string, len(fields))
	for k, v := range fields {
		switch tv := v.(type) {
		case nil:
		case string:
			values[k] = tv
		default:
			values[k] = fmt.Sprint(tv)
		}
	}
	return values, nil
}

// run submits the form. Protection failures are answered here and abort the
// context; any other handler error is left to the caller.
func (p protectedForm) run(c *gin.Context, form secureform.Form, identifier string, values map[string]string, handler secureform.Handler) (secureform.Result, error) {
	result, err := p.guard.Submit(c.Request.Context(), form, identifier, values, handler)
	switch {
	case err == nil:
		p.csrf.Rotate(c)
	case errs.Is(err, secureform.ErrRejected):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Submission could not be processed", nil)
	case errs.Is(err, secureform.ErrBlocked):
		httperr.AbortTooManyRequests(c, result.RetryAfter, err, result.Warning, resdto.FromFormResult(result))
	case errs.Is(err, secureform.ErrSubmissionInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Submission already in progress", resdto.FromFormResult(result))
	}
	return result, err
}
