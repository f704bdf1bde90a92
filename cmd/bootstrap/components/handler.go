package components

import (
	"hotel-storefront/internal/handler"
	"hotel-storefront/internal/handler/api"
	"hotel-storefront/internal/handler/middleware"
	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/config"
	"hotel-storefront/internal/pkg/honeypot"
	"hotel-storefront/internal/pkg/metrics"
	"hotel-storefront/internal/pkg/ratelimit"
	"hotel-storefront/internal/usecase/commands"
	"hotel-storefront/internal/usecase/queries"
	"hotel-storefront/internal/usecase/secureform"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		NewContactHandler,
		NewFormsHandler,
		api.NewPricingHandler,
		NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, guard *secureform.Guard, forms secureform.Forms, csrf *middleware.CSRFMiddleware, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(cmds, q, guard, forms, csrf, cfg)
}

func NewContactHandler(cmds commands.ContactCommands, guard *secureform.Guard, forms secureform.Forms, csrf *middleware.CSRFMiddleware) *api.ContactHandler {
	return api.NewContactHandler(cmds, guard, forms, csrf)
}

func NewFormsHandler(detector *honeypot.Detector, csrf *middleware.CSRFMiddleware) *api.FormsHandler {
	return api.NewFormsHandler(detector, csrf)
}

func NewAdminHandler(limiter *ratelimit.Limiter) *api.AdminHandler {
	return api.NewAdminHandler(limiter)
}

func NewHandlers(auth *api.AuthHandler, contact *api.ContactHandler, forms *api.FormsHandler, pricing *api.PricingHandler, admin *api.AdminHandler) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Contact: contact,
		Forms:   forms,
		Pricing: pricing,
		Admin:   admin,
	}
}

func NewMiddlewares(
	logger *middleware.Logger,
	auth *middleware.AuthMiddleware,
	csrf *middleware.CSRFMiddleware,
	limiter *ratelimit.Limiter,
	presets ratelimit.Presets,
	m *metrics.Metrics,
	clk clock.Clock,
) handler.Middlewares {
	return handler.Middlewares{
		Logger:  logger,
		Auth:    auth,
		CSRF:    csrf,
		Limiter: limiter,
		Presets: presets,
		Metrics: m,
		Clock:   clk,
	}
}
