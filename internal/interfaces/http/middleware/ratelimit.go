package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/photobooth/internal/infrastructure/ratelimit"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
	"github.com/orris-inc/photobooth/internal/shared/utils"
)

type RateLimiter struct {
	limiter ratelimit.RateLimiter
	scope   string
	logger  logger.Interface
}

// NewRateLimiter limits requests per client IP within scope. A nil limiter
// lets every request through.
func NewRateLimiter(limiter ratelimit.RateLimiter, scope string, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		scope:   scope,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limiter == nil {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		result, err := rl.limiter.Allow(c.Request.Context(), rl.scope+":"+clientIP)
		if err != nil {
			// fail open
			rl.logger.Warnw("rate limiter unavailable", "scope", rl.scope, "client_ip", clientIP, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		if !result.Allowed {
			retryAfter := int(result.ResetIn.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			rl.logger.Warnw("rate limit exceeded", "scope", rl.scope, "client_ip", clientIP)
			utils.AbortWithError(c, errors.NewTooManyRequestsError("Too many requests, please try again later"))
			return
		}

		c.Next()
	}
}
