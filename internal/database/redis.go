package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/barstock/backend/config"
)

// NewRedisClient creates a new Redis client. Returns nil when redis is not
// configured; the inventory and rate limiter are then disabled.
func NewRedisClient(cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	addr := cfg.RedisAddr()
	if addr == "" {
		logger.Info("no redis configured, inventory disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to redis", zap.String("addr", addr))
	return client, nil
}
