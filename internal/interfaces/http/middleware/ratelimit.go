package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grievance/internal/infrastructure/ratelimit"
	"grievance/internal/shared/logger"
	"grievance/internal/shared/utils"
)

// RateLimit enforces the given per-IP limit. When the backing store is
// unavailable the request is allowed through rather than blocking traffic.
func RateLimit(limiter ratelimit.RateLimiter, limit ratelimit.Limit, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.ClientIP(), limit)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(),
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
