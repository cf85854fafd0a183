package http

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/interfaces/http/middleware"
	"github.com/orris-inc/estatehub/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID(c.log.Named("http")))
	c.engine.Use(middleware.Logger(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log.Named("recovery")))
	c.engine.Use(middleware.Metrics())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	routes.SetupSystemRoutes(c.engine, &routes.SystemRouteConfig{
		HealthHandler: c.hdlrs.healthHandler,
	})
	routes.SetupListingRoutes(c.engine, &routes.ListingRouteConfig{
		ListingHandler:     c.hdlrs.listingHandler,
		IdentityMiddleware: c.identityMiddleware,
	})
	routes.SetupInquiryRoutes(c.engine, &routes.InquiryRouteConfig{
		InquiryHandler:     c.hdlrs.inquiryHandler,
		IdentityMiddleware: c.identityMiddleware,
		RateLimiter:        c.inquiryLimiter,
	})
	routes.SetupSettingRoutes(c.engine, &routes.SettingRouteConfig{
		Handler:            c.hdlrs.settingHandler,
		IdentityMiddleware: c.identityMiddleware,
	})
	routes.SetupNotificationRoutes(c.engine, &routes.NotificationRouteConfig{
		NotificationHandler: c.hdlrs.notificationHandler,
		IdentityMiddleware:  c.identityMiddleware,
	})
}

// GetEngine returns the Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}
