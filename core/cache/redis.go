package cache

import (
	"context"
	"fmt"
	"time"

	"enoki-admin/core/config"
	"enoki-admin/core/logger"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init connects the shared redis client used for presence keys and the
// kiosk live queue.
func Init(cfg config.RedisConfig) (*redis.Client, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to redis", "addr", cfg.Addr, "error", err)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	client = c
	logger.Info("Redis initialized successfully", "addr", cfg.Addr, "db", cfg.DB)
	return c, nil
}

func Get() *redis.Client {
	return client
}
