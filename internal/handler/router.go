package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-storefront/internal/domain/user"
	"hotel-storefront/internal/handler/api"
	"hotel-storefront/internal/handler/middleware"
	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/config"
	"hotel-storefront/internal/pkg/metrics"
	"hotel-storefront/internal/pkg/ratelimit"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Contact *api.ContactHandler
	Forms   *api.FormsHandler
	Pricing *api.PricingHandler
	Admin   *api.AdminHandler
}

type Middlewares struct {
	Logger  *middleware.Logger
	Auth    *middleware.AuthMiddleware
	CSRF    *middleware.CSRFMiddleware
	Limiter middleware.RateChecker
	Presets ratelimit.Presets
	Metrics *metrics.Metrics
	Clock   clock.Clock
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(mw.Metrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(mw.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireCSRF := mw.CSRF.RequireCSRF()

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.RateLimit(mw.Limiter, mw.Presets.API, mw.Metrics, mw.Clock))
	apiGroup.Use(mw.CSRF.EnsureSession())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/csrf-token", Handler: h.Forms.CSRFToken},
			{Method: http.MethodGet, Path: "/forms/honeypot", Handler: h.Forms.HoneypotField},
			{Method: http.MethodGet, Path: "/pricing/settings", Handler: h.Pricing.Settings},
			{Method: http.MethodPost, Path: "/pricing/quote", Handler: h.Pricing.Quote},
			{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.Submit, Mw: []gin.HandlerFunc{requireCSRF, mw.Auth.OptionalAuth()}},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{requireCSRF}},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{requireCSRF}},
				{Method: http.MethodPost, Path: "/password-reset", Handler: h.Auth.PasswordReset, Mw: []gin.HandlerFunc{requireCSRF}},
			})

			authRequired := auth.Group("")
			authRequired.Use(mw.Auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(mw.Auth.RequireAuth(), mw.Auth.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodDelete, Path: "/rate-limits/:scope/:identifier", Handler: h.Admin.ResetLockout, Mw: []gin.HandlerFunc{requireCSRF}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
