package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/inkfolio/inkfolio/internal/infrastructure/ratelimit"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
	"github.com/inkfolio/inkfolio/internal/shared/utils"
)

// RateLimit enforces policy per client IP within scope. A nil limiter
// disables the check. Store failures let the request through.
func RateLimit(limiter ratelimit.RateLimiter, scope string, policy ratelimit.Policy, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())
		allowed, err := limiter.Allow(c.Request.Context(), key, policy)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}
		if !allowed {
			log.Warnw("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP(), "security_event", true)
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError())
			c.Abort()
			return
		}

		c.Next()
	}
}
