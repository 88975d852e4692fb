package middleware

import (
	"fmt"
	"time"

	"portfolio/response"
	"portfolio/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware giới hạn số request theo IP trên các endpoint public.
// Redis không khả dụng thì cho request đi qua.
func RateLimitMiddleware(rdb *redis.Client, maxRequests int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())
		count, err := services.IncrWithTTL(c.Request.Context(), rdb, key, window)
		if err != nil {
			c.Next()
			return
		}

		if count > maxRequests {
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
