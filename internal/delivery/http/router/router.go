// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"delishub/internal/delivery/http/middleware"
	"delishub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler        *handler.AccountHandler
	ProfileHandler        *handler.ProfileHandler
	PresenceHandler       *handler.PresenceHandler
	PresenceSocketHandler *handler.PresenceSocketHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler        *handler.AccountHandler
	profileHandler        *handler.ProfileHandler
	presenceHandler       *handler.PresenceHandler
	presenceSocketHandler *handler.PresenceSocketHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:        params.AccountHandler,
		profileHandler:        params.ProfileHandler,
		presenceHandler:       params.PresenceHandler,
		presenceSocketHandler: params.PresenceSocketHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Profile routes, all require authentication
	profileGroup := api.Group("/user-profile", r.authMiddleware.Authenticate)
	{
		profileGroup.PUT("/update-profile", r.accountHandler.UpdateProfile)
		profileGroup.PUT("/update-password", r.accountHandler.UpdatePassword)
		profileGroup.PUT("/update-email", r.accountHandler.UpdateEmail)
		profileGroup.DELETE("/delete-account/:userId", r.accountHandler.DeleteAccount)
	}

	// Account settings routes; the profile read and its QR code are public
	configGroup := api.Group("/user-config")
	{
		configGroup.PUT("/update-email", r.accountHandler.UpdateEmail, r.authMiddleware.Authenticate)
		configGroup.PUT("/update-password", r.accountHandler.UpdatePassword, r.authMiddleware.Authenticate)
		configGroup.DELETE("/delete-account/:userId", r.accountHandler.DeleteAccount, r.authMiddleware.Authenticate)
		configGroup.GET("/:userId", r.profileHandler.GetUserProfile)
		configGroup.GET("/:userId/qrcode", r.profileHandler.GetProfileQRCode)
	}

	presenceGroup := api.Group("/presence", r.authMiddleware.Authenticate)
	{
		presenceGroup.GET("", r.presenceHandler.ListOnline)
		presenceGroup.GET("/:userId", r.presenceHandler.GetPresence)
	}

	e.GET("/ws/presence", r.presenceSocketHandler.Serve, r.authMiddleware.AuthenticateSocket)
}
