// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pushgate/config"
	"pushgate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	TestHandler         *handler.TestHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	testHandler         *handler.TestHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		testHandler:         params.TestHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api/notifications")
	{
		apiGroup.POST("/register", r.deviceHandler.RegisterDevice)
		apiGroup.POST("/unregister", r.deviceHandler.UnregisterDevice)

		apiGroup.POST("", r.notificationHandler.CreateNotification)
		apiGroup.GET("", r.notificationHandler.ListNotifications)
		apiGroup.GET("/:id", r.notificationHandler.GetNotification)
		apiGroup.GET("/:id/logs", r.notificationHandler.GetDeliveryLogs)
		apiGroup.POST("/dispatch", r.notificationHandler.DispatchNotifications)

		apiGroup.POST("/test", r.testHandler.TestPush)
		apiGroup.GET("/test-connection", r.testHandler.TestConnection)

		// The mock endpoint never reaches the gateway, so it is only
		// exposed when explicitly enabled.
		if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
			apiGroup.POST("/mock-test", r.testHandler.MockTestPush)
		}
	}
}
