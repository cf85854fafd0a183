package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/interfaces/http/handlers"
	"github.com/orris-inc/estatehub/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	IdentityMiddleware  *middleware.IdentityMiddleware
}

// SetupNotificationRoutes serves the caller's own notification feed. Fixed paths
// are registered before /:id.
func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(config.IdentityMiddleware.RequireUser())
	{
		notifications.GET("", config.NotificationHandler.ListNotifications)
		notifications.GET("/unread-count", config.NotificationHandler.GetUnreadCount)
		notifications.POST("/read-all", config.NotificationHandler.MarkAllAsRead)
		notifications.POST("/:id/read", config.NotificationHandler.MarkAsRead)
	}
}
