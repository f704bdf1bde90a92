package api

import (
	"context"
	"log/slog"
	"net/http"

	"hotel-storefront/internal/handler/httperr"
	"hotel-storefront/internal/handler/middleware"
	"hotel-storefront/internal/pkg/ratelimit"
	"hotel-storefront/internal/usecase/secureform"

	"github.com/gin-gonic/gin"
)

type LockoutResetter interface {
	Reset(ctx context.Context, identifier string)
}

type AdminHandler struct {
	limiter LockoutResetter
}

func NewAdminHandler(limiter LockoutResetter) *AdminHandler {
	return &AdminHandler{limiter: limiter}
}

var resettableScopes = map[string]struct{}{
	secureform.KindLogin:         {},
	secureform.KindRegister:      {},
	secureform.KindContact:       {},
	secureform.KindPasswordReset: {},
	middleware.APIScope:          {},
}

// @Summary Clear a lockout
// @Description Reset the rate-limit entry of one identifier for one form kind
// @Tags admin
// @Security BearerAuth
// @Param scope path string true "Form kind or api"
// @Param identifier path string true "Client IP or user:<id>"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/rate-limits/{scope}/{identifier} [delete]
func (h *AdminHandler) ResetLockout(c *gin.Context) {
	scope := c.Param("scope")
	identifier := c.Param("identifier")
	if _, ok := resettableScopes[scope]; !ok || identifier == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Unknown scope", nil)
		return
	}

	h.limiter.Reset(c.Request.Context(), ratelimit.Key(scope, identifier))

	actor, _ := middleware.GetUserID(c)
	slog.Info("rate limit lockout cleared", "scope", scope, "identifier", identifier, "actor", actor.String())
	c.Status(http.StatusNoContent)
}
