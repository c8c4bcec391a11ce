package cache

import (
	"context"
	"fmt"
	"time"

	"quiz-brain/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a Redis client. The client dials lazily, so an
// unreachable server only surfaces on the first command.
func NewRedisClient(redisCfg config.RedisConfig) (*redis.Client, error) {
	if redisCfg.Address == "" {
		return nil, fmt.Errorf("redis configuration is missing or address is empty")
	}

	return redis.NewClient(&redis.Options{
		Addr:     redisCfg.Address,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	}), nil
}

// Ping checks connectivity with a short timeout.
func Ping(ctx context.Context, client redis.UniversalClient) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}
