package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warsztat/internal/infrastructure/ratelimit"
	"warsztat/internal/shared/logger"
)

// LoginRateLimit throttles login attempts per client IP. A nil limiter
// disables throttling entirely; limiter errors fail open so a Redis outage
// does not lock everyone out.
func LoginRateLimit(limiter ratelimit.RateLimiter, perMinute int, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || perMinute <= 0 {
			c.Next()
			return
		}

		key := "login:" + c.ClientIP()
		allowed, err := limiter.Allow(key, ratelimit.RateLimitConfig{
			RequestsPerMinute: perMinute,
		})
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Warnw("login rate limit exceeded", "client_ip", c.ClientIP())
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"type":    "rate_limited",
					"message": "Zbyt wiele prób. Spróbuj ponownie później.",
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
