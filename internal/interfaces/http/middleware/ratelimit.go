package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/estatehub/internal/shared/logger"
	"github.com/orris-inc/estatehub/internal/shared/utils"
)

// RateLimiter provides Redis-backed IP rate limiting using a fixed-window counter.
// Each IP gets a counter key with TTL equal to the window duration, shared by all
// instances. A nil client or a non-positive limit disables limiting.
type RateLimiter struct {
	redisClient *redis.Client
	scope       string
	limit       int
	window      time.Duration
	logger      logger.Interface
	now         func() time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window for each
// client IP. scope separates counters of different routes.
func NewRateLimiter(redisClient *redis.Client, scope string, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	if window < time.Second {
		window = time.Minute
	}
	return &RateLimiter{
		redisClient: redisClient,
		scope:       scope,
		limit:       limit,
		window:      window,
		logger:      logger,
		now:         time.Now,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.redisClient == nil || rl.limit <= 0 {
			c.Next()
			return
		}

		windowBucket := rl.now().Unix() / int64(rl.window.Seconds())
		key := fmt.Sprintf("estatehub:ratelimit:%s:%s:%d", rl.scope, c.ClientIP(), windowBucket)
		ctx := c.Request.Context()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			// Redis unavailable: let the request through
			rl.logger.Warnw("rate limiter unavailable", "scope", rl.scope, "error", err)
			c.Next()
			return
		}

		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
