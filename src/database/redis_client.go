package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis connects to Redis. An empty uri leaves RedisClient nil and
// every Redis-backed feature falls back to its disabled path.
func InitRedis(uri string) error {
	if uri == "" {
		return nil
	}

	c := redis.NewClient(&redis.Options{
		Addr: uri, // เช่น localhost:6379
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := c.Ping(ctx).Result(); err != nil {
		_ = c.Close()
		return fmt.Errorf("ping redis: %w", err)
	}

	RedisClient = c
	return nil
}
