package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const pageCachePrefix = "feed:global:"

// PageCacheRedis keeps rendered feed pages as plain strings with a TTL
type PageCacheRedis struct {
	Client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewPageCacheRedis(client *redis.Client, ttl time.Duration, logger *zap.Logger) *PageCacheRedis {
	return &PageCacheRedis{
		Client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *PageCacheRedis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.Client.Get(ctx, pageCachePrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *PageCacheRedis) Set(ctx context.Context, key string, value []byte) error {
	return r.Client.Set(ctx, pageCachePrefix+key, value, r.ttl).Err()
}

// Invalidate drops every cached page; other keys in the database are left alone
func (r *PageCacheRedis) Invalidate(ctx context.Context) error {
	var keys []string
	iter := r.Client.Scan(ctx, 0, pageCachePrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.Client.Del(ctx, keys...).Err(); err != nil {
		return err
	}
	r.logger.Debug("feed cache invalidated", zap.Int("keys", len(keys)))
	return nil
}
