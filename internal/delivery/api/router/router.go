// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sportera/config"
	"sportera/internal/delivery/api/middleware"
	"sportera/internal/delivery/api/router/handler"
	"sportera/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	PlaceHandler   *handler.PlaceHandler
	PartnerHandler *handler.PartnerHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	placeHandler   *handler.PlaceHandler
	partnerHandler *handler.PartnerHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		placeHandler:   params.PlaceHandler,
		partnerHandler: params.PartnerHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Health)
	e.GET("/ping", r.healthHandler.Ping)

	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/logout", r.accountHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.accountHandler.Me, r.authMiddleware.Authenticate)
	}

	apiV1 := e.Group("/api/v1")

	// Public catalog routes
	placesGroup := apiV1.Group("/places")
	{
		placesGroup.GET("", r.placeHandler.Nearby)
		placesGroup.GET("/search", r.placeHandler.Search)
		placesGroup.GET("/all", r.placeHandler.All)
		placesGroup.GET("/sport/:sport", r.placeHandler.BySport)
		placesGroup.GET("/:id", r.placeHandler.GetByID)
		placesGroup.GET("/:id/qr", r.placeHandler.ShareCode)
	}

	// Partner routes require an organization account
	partnerGroup := apiV1.Group("/partner")
	partnerGroup.Use(r.authMiddleware.Authenticate)
	partnerGroup.Use(r.authMiddleware.RequireKind(entity.AccountKindOrganization))
	{
		partnerGroup.GET("/places", r.partnerHandler.ListPlaces)
		partnerGroup.POST("/places", r.partnerHandler.CreatePlace)
		partnerGroup.PATCH("/places/:id", r.partnerHandler.UpdatePlace)
		partnerGroup.DELETE("/places/:id", r.partnerHandler.DeletePlace)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.registry == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		Registry: r.registry,
	})))
}
