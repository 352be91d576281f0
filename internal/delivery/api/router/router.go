// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"paygate/internal/delivery/api/middleware"
	"paygate/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	AccountHandler  *handler.AccountHandler
	TransferHandler *handler.TransferHandler
	WebhookHandler  *handler.WebhookHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	accountHandler  *handler.AccountHandler
	transferHandler *handler.TransferHandler
	webhookHandler  *handler.WebhookHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		accountHandler:  params.AccountHandler,
		transferHandler: params.TransferHandler,
		webhookHandler:  params.WebhookHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Account routes that require authentication
	accountGroup := e.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.PATCH("/email", r.accountHandler.UpdateEmail)
		accountGroup.PATCH("/password", r.accountHandler.UpdatePassword)
		accountGroup.DELETE("", r.accountHandler.Delete)
	}

	// Transfer routes; the gateway webhook is authenticated by its shared hash instead of a token
	transfersGroup := e.Group("/transfers")
	{
		transfersGroup.POST("/verify", r.webhookHandler.Verify)

		transfersGroup.POST("/initialize", r.transferHandler.Initialize, r.authMiddleware.Authenticate)
		transfersGroup.GET("/period", r.transferHandler.ListByPeriod, r.authMiddleware.Authenticate)
		transfersGroup.GET("/:userId", r.transferHandler.ListByUser, r.authMiddleware.Authenticate)
	}
}
