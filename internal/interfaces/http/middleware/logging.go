package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/shared/constants"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// Logger logs one line per request once the handler chain has finished. It
// prefers the request-scoped logger installed by RequestID.
func Logger(fallback logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log := logger.FromContext(c.Request.Context(), fallback)
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if userID, exists := c.Get(constants.ContextKeyUserID); exists {
			args = append(args, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("request failed", args...)
		case status >= 400:
			log.Warnw("request rejected", args...)
		default:
			log.Debugw("request served", args...)
		}
	}
}
