package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orris-inc/estatehub/internal/interfaces/http/handlers"
)

type SystemRouteConfig struct {
	HealthHandler *handlers.HealthHandler
}

// SetupSystemRoutes configures the unauthenticated health and metrics endpoints
func SetupSystemRoutes(engine *gin.Engine, config *SystemRouteConfig) {
	engine.GET("/health", config.HealthHandler.HealthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
