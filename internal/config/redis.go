package config

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient shared Redis handle, nil when Redis is not configured
var RedisClient *redis.Client

// InitRedis connects to Redis and pings it until it answers or the retries run out
func InitRedis(ctx context.Context, s *Settings, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     s.RedisAddr,
		Password: s.RedisPassword,
		DB:       s.RedisDB,
	})

	ping := func() error {
		return client.Ping(ctx).Err()
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	if err := backoff.Retry(ping, policy); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error connecting to Redis: %w", err)
	}

	logger.Info("✅ Connected to Redis", zap.String("addr", s.RedisAddr), zap.Int("db", s.RedisDB))
	RedisClient = client
	return client, nil
}
