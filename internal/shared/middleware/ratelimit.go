package middleware

import (
	"log/slog"

	"github.com/changhyeonkim/member-registry/internal/config"
	sharedError "github.com/changhyeonkim/member-registry/internal/shared/error"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests once the global token bucket is empty.
// A non-positive RPS disables the limiter.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	if cfg.RPS <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			slog.Warn("Rate limit exceeded",
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"ip", c.ClientIP(),
			)
			resp := sharedError.TooManyRequests
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Next()
	}
}
