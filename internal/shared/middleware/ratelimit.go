package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"gamereviews-backend/internal/infrastructure/cache"
)

// RateLimit enforces a fixed window per client IP, counted in Redis.
// With a nil client or a non-positive limit it is a pass-through, so the
// server runs fine without Redis in development.
func RateLimit(client *cache.Client, limit int, window time.Duration) gin.HandlerFunc {
	if client == nil || limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := client.Incr(c.Request.Context(), key, window)
		if err != nil {
			// Redis trouble should not take the API down; let the
			// request through and log.
			log.Warn().Err(err).Msg("rate limit check failed")
			c.Next()
			return
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"msg": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
