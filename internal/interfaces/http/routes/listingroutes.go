package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/interfaces/http/handlers"
	"github.com/orris-inc/estatehub/internal/interfaces/http/middleware"
)

// ListingRouteConfig holds the configuration for listing routes
type ListingRouteConfig struct {
	ListingHandler     *handlers.ListingHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// SetupListingRoutes configures listing and referral bonus routes
func SetupListingRoutes(engine *gin.Engine, config *ListingRouteConfig) {
	listings := engine.Group("/listings")
	{
		listings.POST("", config.IdentityMiddleware.RequireUser(), config.ListingHandler.CreateListing)

		// Specific action endpoints (must come BEFORE /:sid to avoid conflicts)
		listings.PATCH("/:sid/status", config.IdentityMiddleware.RequireUser(), config.ListingHandler.TransitionStatus)

		listings.GET("/:sid", config.ListingHandler.GetListing)
	}

	referrals := engine.Group("/referrals")
	referrals.Use(config.IdentityMiddleware.RequireUser())
	{
		referrals.GET("/bonuses", config.ListingHandler.ListMyBonuses)
	}
}
