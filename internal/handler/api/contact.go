package api

import (
	"context"
	"net/http"

	reqdto "hotel-storefront/internal/handler/dto/request"
	resdto "hotel-storefront/internal/handler/dto/response"
	"hotel-storefront/internal/handler/httperr"
	"hotel-storefront/internal/handler/middleware"
	"hotel-storefront/internal/pkg/errs"
	"hotel-storefront/internal/usecase/commands"
	"hotel-storefront/internal/usecase/secureform"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	cmds  commands.ContactCommands
	forms secureform.Forms
	form  protectedForm
}

func NewContactHandler(cmds commands.ContactCommands, guard FormGuard, forms secureform.Forms, csrf CSRFSession) *ContactHandler {
	return &ContactHandler{
		cmds:  cmds,
		forms: forms,
		form:  protectedForm{guard: guard, csrf: csrf},
	}
}

// @Summary Send contact message
// @Description Store a visitor message and queue its notification. Guarded by honeypot, rate limit and CSRF.
// @Tags contact
// @Accept json
// @Produce json
// @Param X-CSRF-Token header string true "CSRF token"
// @Param request body reqdto.ContactRequest true "Contact request"
// @Success 202 {object} resdto.SubmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	values, err := bindForm(c, &req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.form.run(c, h.forms.Contact, submitterID(c), values, func(ctx context.Context) error {
		_, submitErr := h.cmds.Submit(ctx, req)
		return submitErr
	})
	if c.IsAborted() {
		return
	}
	if err != nil {
		if errs.Is(err, commands.ErrInvalidInput) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", resdto.FromFormResult(result))
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to send message", resdto.FromFormResult(result))
		return
	}

	c.JSON(http.StatusAccepted, resdto.SubmissionResponse{
		Message: "Thank you, we will get back to you shortly.",
		Form:    resdto.FromFormResult(result),
	})
}

// submitterID keys signed-in visitors by account and everyone else by IP.
func submitterID(c *gin.Context) string {
	if userID, ok := middleware.GetUserID(c); ok {
		return "user:" + userID.String()
	}
	return c.ClientIP()
}
