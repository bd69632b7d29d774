package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// IncrWindow bumps a fixed-window counter and returns the new count with the
// window's remaining TTL. A counter without an expiry gets one on this hit,
// whether it is new or a previous Expire was lost.
func IncrWindow(ctx context.Context, client *redis.Client, key string, window time.Duration) (int64, time.Duration, error) {
	if client == nil {
		return 0, 0, fmt.Errorf("redis client not initialized")
	}

	pipe := client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttlCmd := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}

	count, ttl := incr.Val(), ttlCmd.Val()
	if ttl < 0 {
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			return count, window, fmt.Errorf("failed to set expiry on %s: %w", key, err)
		}
		ttl = window
	}
	return count, ttl, nil
}
