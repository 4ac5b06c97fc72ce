// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/forcollegesake07/food-bridge/config"
	"github.com/forcollegesake07/food-bridge/internal/delivery/api/middleware"
	"github.com/forcollegesake07/food-bridge/internal/delivery/api/router/handler"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	ProfileHandler    *handler.ProfileHandler
	RestaurantHandler *handler.RestaurantHandler
	OrphanageHandler  *handler.OrphanageHandler
	DriverHandler     *handler.DriverHandler
	AdminHandler      *handler.AdminHandler
	NoticeHandler     *handler.NoticeHandler
	TestHandler       *handler.TestHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler    *handler.ProfileHandler
	restaurantHandler *handler.RestaurantHandler
	orphanageHandler  *handler.OrphanageHandler
	driverHandler     *handler.DriverHandler
	adminHandler      *handler.AdminHandler
	noticeHandler     *handler.NoticeHandler
	testHandler       *handler.TestHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:    params.ProfileHandler,
		restaurantHandler: params.RestaurantHandler,
		orphanageHandler:  params.OrphanageHandler,
		driverHandler:     params.DriverHandler,
		adminHandler:      params.AdminHandler,
		noticeHandler:     params.NoticeHandler,
		testHandler:       params.TestHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	anyRole := r.authMiddleware.RequireProfile(entity.RoleNone)

	// Side-channel notices
	notices := e.Group("/api", r.authMiddleware.Authenticate, anyRole)
	{
		notices.POST("/claim-food", r.noticeHandler.ClaimFood)
		notices.POST("/confirm-receipt", r.noticeHandler.ConfirmReceipt)
	}

	apiV1 := e.Group("/api/v1", r.authMiddleware.Authenticate)

	// Registration happens before a profile exists, so it skips the gate
	apiV1.POST("/profile", r.profileHandler.Register)

	profileGroup := apiV1.Group("/profile", anyRole)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.PUT("/token", r.profileHandler.UpdateToken)
	}

	restaurantGroup := apiV1.Group("/restaurant", r.authMiddleware.RequireProfile(entity.RoleRestaurant))
	{
		restaurantGroup.POST("/donations", r.restaurantHandler.CreateDonation)
		restaurantGroup.GET("/donations", r.restaurantHandler.ListDonations)
		restaurantGroup.GET("/donations/live", r.restaurantHandler.LiveDonations)
		restaurantGroup.GET("/donations/:id/qr", r.restaurantHandler.PickupQR)
		restaurantGroup.GET("/requests/nearby", r.restaurantHandler.NearbyRequests)
		restaurantGroup.GET("/requests/live", r.restaurantHandler.LiveRequests)
	}

	orphanageGroup := apiV1.Group("/orphanage", r.authMiddleware.RequireProfile(entity.RoleOrphanage))
	{
		orphanageGroup.POST("/requests", r.orphanageHandler.CreateRequest)
		orphanageGroup.GET("/requests", r.orphanageHandler.ListRequests)
		orphanageGroup.POST("/requests/:id/fulfill", r.orphanageHandler.FulfillRequest)
		orphanageGroup.GET("/donations/nearby", r.orphanageHandler.NearbyDonations)
		orphanageGroup.GET("/donations/live", r.orphanageHandler.LiveDonations)
		orphanageGroup.POST("/donations/:id/claim", r.orphanageHandler.Claim)
		orphanageGroup.POST("/donations/:id/confirm", r.orphanageHandler.Confirm)
	}

	driverGroup := apiV1.Group("/driver", r.authMiddleware.RequireProfile(entity.RoleDriver))
	{
		driverGroup.GET("/pickups", r.driverHandler.ListPickups)
	}

	adminGroup := apiV1.Group("/admin", r.authMiddleware.RequireProfile(entity.RoleAdmin))
	{
		adminGroup.POST("/broadcasts", r.adminHandler.CreateBroadcast)
		adminGroup.GET("/broadcasts", r.adminHandler.ListBroadcasts)
		adminGroup.PUT("/profiles/:id/role", r.adminHandler.AssignRole)
		adminGroup.PUT("/profiles/:id/disabled", r.adminHandler.SetDisabled)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.POST("/token", r.testHandler.IssueToken)
		testGroup.GET("/whoami", r.testHandler.WhoAmI, r.authMiddleware.Authenticate)
	}
}
