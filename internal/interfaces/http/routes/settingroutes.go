package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/interfaces/http/handlers"
	"github.com/orris-inc/estatehub/internal/interfaces/http/middleware"
)

// SettingRouteConfig holds the configuration for setting routes
type SettingRouteConfig struct {
	Handler            *handlers.SettingHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// SetupSettingRoutes configures system setting admin routes
func SetupSettingRoutes(engine *gin.Engine, config *SettingRouteConfig) {
	// Admin settings endpoints - all require admin access
	settings := engine.Group("/admin/settings")
	settings.Use(config.IdentityMiddleware.RequireUser())
	settings.Use(config.IdentityMiddleware.RequireAdmin())
	{
		settings.GET("", config.Handler.GetSettings)
		settings.PUT("", config.Handler.UpdateSettings)
	}
}
