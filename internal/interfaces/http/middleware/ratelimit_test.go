package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/orris-inc/estatehub/internal/shared/logger"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.POST("/inquiries", rl.Limit(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func post(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/inquiries", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_Limit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(client, "inquiries", 2, time.Minute, logger.NewDiscardLogger())
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return fixed }
	r := newLimitedRouter(rl)

	assert.Equal(t, http.StatusCreated, post(r, "10.0.0.1"))
	assert.Equal(t, http.StatusCreated, post(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, post(r, "10.0.0.1"))

	// other clients have their own counter
	assert.Equal(t, http.StatusCreated, post(r, "10.0.0.2"))

	// next window starts fresh
	fixed = fixed.Add(time.Minute)
	assert.Equal(t, http.StatusCreated, post(r, "10.0.0.1"))
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := newLimitedRouter(NewRateLimiter(client, "inquiries", 1, time.Minute, logger.NewDiscardLogger()))
	mr.Close()

	assert.Equal(t, http.StatusCreated, post(r, "10.0.0.1"))
	assert.Equal(t, http.StatusCreated, post(r, "10.0.0.1"))
}

func TestRateLimiter_Disabled(t *testing.T) {
	r := newLimitedRouter(NewRateLimiter(nil, "inquiries", 1, time.Minute, logger.NewDiscardLogger()))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusCreated, post(r, "10.0.0.1"))
	}
}
