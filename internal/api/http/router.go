package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/request-tracker/internal/api/http/handlers"
	"github.com/spec-kit/request-tracker/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Metrics        *handlers.MetricsHandler
	Requests       *handlers.RequestsHandler
	Analytics      *handlers.AnalyticsHandler
	ViewState      *handlers.ViewStateHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Get)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/timeline", cfg.Requests.TimelineFromBody)

	requests := protected.Group("/requests/:id")
	requests.Put("/snapshot", auth.RequireStaff(), cfg.Requests.PutSnapshot)
	requests.Get("/timeline", cfg.Requests.Timeline)
	requests.Get("/actions", cfg.Requests.Actions)
	requests.Post("/transition/check", cfg.Requests.CheckTransition)
	requests.Post("/feedback/check", cfg.Requests.CheckFeedback)

	stats := protected.Group("/analytics", auth.RequireStaff())
	stats.Put("/snapshots/:period", cfg.Analytics.PutSnapshot)
	stats.Post("/productivity", cfg.Analytics.Productivity)
	stats.Get("/productivity/:period", cfg.Analytics.StoredProductivity)
	stats.Get("/period-query", cfg.Analytics.PeriodQuery)

	protected.Get("/view-state", cfg.ViewState.Get)
	protected.Put("/view-state", cfg.ViewState.Put)
}
