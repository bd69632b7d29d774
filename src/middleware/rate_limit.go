package middleware

import (
	"fmt"
	"log"
	"math"
	"time"

	"course-marketplace/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type RateLimiter struct {
	redisClient *redis.Client
}

// NewRateLimiter accepts a nil client, in which case every request passes.
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{redisClient: client}
}

// Limit จำกัดจำนวนคำขอต่อ IP ภายในช่วงเวลา window
func (rl *RateLimiter) Limit(scope string, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rl == nil || rl.redisClient == nil || limit <= 0 {
			return c.Next()
		}

		key := fmt.Sprintf("rate_limit:%s:%s", scope, c.IP())
		count, ttl, err := utils.IncrWindow(c.UserContext(), rl.redisClient, key, window)
		if err != nil {
			log.Println("⚠️ Rate limiter unavailable:", err)
			return c.Next()
		}

		if count > int64(limit) {
			retryAfter := int(math.Ceil(ttl.Seconds()))
			c.Set(fiber.HeaderRetryAfter, fmt.Sprint(retryAfter))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message":    "Too many requests",
				"retryAfter": retryAfter,
			})
		}
		return c.Next()
	}
}
