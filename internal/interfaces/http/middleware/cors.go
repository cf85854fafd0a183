package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/shared/constants"
)

var (
	corsAllowedHeaders = strings.Join([]string{
		"Content-Type", "Accept", "Origin", "Cache-Control",
		constants.HeaderXUserID, constants.HeaderXRequestID,
	}, ", ")
	corsExposedHeaders = strings.Join([]string{"Content-Length", constants.HeaderXRequestID}, ", ")
)

// CORS lets browser clients from allowedOrigins call the API. Requests from any
// other origin get no CORS headers.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && slices.Contains(allowedOrigins, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", corsAllowedHeaders)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, OPTIONS")
			c.Header("Access-Control-Expose-Headers", corsExposedHeaders)
			c.Header("Access-Control-Max-Age", "86400")
			c.Header("Vary", "Origin")
		}

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
