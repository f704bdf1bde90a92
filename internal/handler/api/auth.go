package api

import (
	"context"
	"net/http"

	reqdto "hotel-storefront/internal/handler/dto/request"
	resdto "hotel-storefront/internal/handler/dto/response"
	"hotel-storefront/internal/handler/httperr"
	"hotel-storefront/internal/handler/middleware"
	"hotel-storefront/internal/pkg/config"
	"hotel-storefront/internal/pkg/cookie"
	"hotel-storefront/internal/pkg/errs"
	"hotel-storefront/internal/usecase/commands"
	"hotel-storefront/internal/usecase/queries"
	"hotel-storefront/internal/usecase/secureform"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds    commands.AuthCommands
	queries queries.UserQueries
	forms   secureform.Forms
	form    protectedForm
	cfg     config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, guard FormGuard, forms secureform.Forms, csrf CSRFSession, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:    cmds,
		queries: q,
		forms:   forms,
		form:    protectedForm{guard: guard, csrf: csrf},
		cfg:     cfg,
	}
}

// @Summary User login
// @Description Login with email and password. Guarded by honeypot, rate limit and CSRF.
// @Tags auth
// @Accept json
// @Produce json
// @Param X-CSRF-Token header string true "CSRF token"
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	values, err := bindForm(c, &req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	var login *commands.LoginResult
	result, err := h.form.run(c, h.forms.Login, c.ClientIP(), values, func(ctx context.Context) error {
		var loginErr error
		login, loginErr = h.cmds.Login(ctx, req)
		return loginErr
	})
	if c.IsAborted() {
		return
	}
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", resdto.FromFormResult(result))
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.queries.GetCurrentUser(c.Request.Context(), login.UserID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, login.AccessToken, h.cfg.JWT.Duration)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: login.AccessToken,
		ExpiresAt:   login.ExpiresAt,
		User:        view,
	})
}

// @Summary Register
// @Description Create a customer account. Guarded by honeypot, rate limit and CSRF.
// @Tags auth
// @Accept json
// @Produce json
// @Param X-CSRF-Token header string true "CSRF token"
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	values, err := bindForm(c, &req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	var registered *commands.RegisterResult
	result, err := h.form.run(c, h.forms.Register, c.ClientIP(), values, func(ctx context.Context) error {
		var registerErr error
		registered, registerErr = h.cmds.Register(ctx, req)
		return registerErr
	})
	if c.IsAborted() {
		return
	}
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", resdto.FromFormResult(result))
		case errs.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", resdto.FromFormResult(result))
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{UserID: registered.UserID.String()})
}

// @Summary Request password reset
// @Description Queue a reset email. Always answers 202 so addresses cannot be probed.
// @Tags auth
// @Accept json
// @Produce json
// @Param X-CSRF-Token header string true "CSRF token"
// @Param request body reqdto.PasswordResetRequest true "Password reset request"
// @Success 202 {object} resdto.SubmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/password-reset [post]
func (h *AuthHandler) PasswordReset(c *gin.Context) {
	var req reqdto.PasswordResetRequest
	values, err := bindForm(c, &req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.form.run(c, h.forms.PasswordReset, c.ClientIP(), values, func(ctx context.Context) error {
		return h.cmds.RequestPasswordReset(ctx, req)
	})
	if c.IsAborted() {
		return
	}
	if err != nil {
		if errs.Is(err, commands.ErrInvalidInput) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", resdto.FromFormResult(result))
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusAccepted, resdto.SubmissionResponse{
		Message: "If the address is registered, a reset link is on its way.",
		Form:    resdto.FromFormResult(result),
	})
}

// @Summary User logout
// @Description Clear the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	user, err := h.queries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
