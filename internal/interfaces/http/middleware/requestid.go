package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/orris-inc/estatehub/internal/shared/constants"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// RequestID propagates X-Request-ID, generating one when the caller sent none.
// The request context carries log tagged with the id.
func RequestID(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)

		ctx := logger.IntoContext(c.Request.Context(), log.With("request_id", requestID))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
