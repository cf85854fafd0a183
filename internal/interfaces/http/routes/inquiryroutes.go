package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/interfaces/http/handlers"
	"github.com/orris-inc/estatehub/internal/interfaces/http/middleware"
)

type InquiryRouteConfig struct {
	InquiryHandler     *handlers.InquiryHandler
	IdentityMiddleware *middleware.IdentityMiddleware
	RateLimiter        *middleware.RateLimiter
}

// SetupInquiryRoutes configures inquiry and SLA compliance routes. Buyers are not
// accounts, so creating an inquiry needs no caller identity.
func SetupInquiryRoutes(engine *gin.Engine, config *InquiryRouteConfig) {
	inquiries := engine.Group("/inquiries")
	{
		inquiries.POST("", config.RateLimiter.Limit(), config.InquiryHandler.CreateInquiry)

		agent := inquiries.Group("")
		agent.Use(config.IdentityMiddleware.RequireUser())
		agent.POST("/:sid/response", config.InquiryHandler.RecordResponse)
		agent.POST("/:sid/archive", config.InquiryHandler.ArchiveInquiry)
		agent.GET("/:sid/sla", config.InquiryHandler.GetSLA)
	}

	agents := engine.Group("/agents")
	agents.Use(config.IdentityMiddleware.RequireUser())
	{
		agents.GET("/sla-compliance", config.InquiryHandler.GetAgentCompliance)
	}
}
