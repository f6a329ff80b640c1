// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"circlecheck/config"
	"circlecheck/internal/delivery/api/middleware"
	"circlecheck/internal/delivery/api/router/handler"
	"circlecheck/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// HookGroupPath prefixes the database webhook routes
const HookGroupPath = "/hooks"

type RouterParams struct {
	fx.In

	LocationHookHandler *handler.LocationHookHandler
	HookAuthMiddleware  *middleware.HookAuthMiddleware
	Gatherer            prometheus.Gatherer `optional:"true"`
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHookHandler *handler.LocationHookHandler
	hookAuthMiddleware  *middleware.HookAuthMiddleware
	gatherer            prometheus.Gatherer
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHookHandler: params.LocationHookHandler,
		hookAuthMiddleware:  params.HookAuthMiddleware,
		gatherer:            params.Gatherer,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.gatherer != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.gatherer)))
	}

	// Database webhook routes
	hookGroup := e.Group(HookGroupPath)
	hookGroup.Use(r.hookAuthMiddleware.Authenticate)
	{
		hookGroup.POST("/location", r.locationHookHandler.HandleLocationUpdate)
	}
}
