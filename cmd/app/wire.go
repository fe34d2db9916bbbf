package main

import (
	"context"
	"fmt"
	"os"

	"inkwell/internal/adapters/cache"
	dbadapter "inkwell/internal/adapters/database"
	redisadapter "inkwell/internal/adapters/redis"
	"inkwell/internal/adapters/storage"
	"inkwell/internal/config"
	feedapp "inkwell/internal/core/feed/service"
	"inkwell/internal/ports/feedcache"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// application the connections and settings every command starts from
type application struct {
	settings *config.Settings
	logger   *zap.Logger
	db       *gorm.DB
}

func bootstrap(c *cli.Context) (*application, error) {
	// flags win over the environment
	for flag, env := range map[string]string{"db-driver": "DB_DRIVER", "db-dsn": "DB_DSN", "port": "APP_PORT"} {
		if c.IsSet(flag) {
			if err := os.Setenv(env, c.String(flag)); err != nil {
				return nil, err
			}
		}
	}
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := config.InitLogger(settings.Env)
	db, err := config.InitDB(settings, logger)
	if err != nil {
		return nil, err
	}
	return &application{settings: settings, logger: logger, db: db}, nil
}

// pageCache the global feed cache the settings select
func (a *application) pageCache(ctx context.Context) (feedcache.PageCache, error) {
	switch a.settings.CacheBackend {
	case "redis":
		client, err := config.InitRedis(ctx, a.settings, a.logger)
		if err != nil {
			return nil, err
		}
		return redisadapter.NewPageCacheRedis(client, a.settings.FeedCacheTTL, a.logger), nil
	case "memory":
		return cache.NewPageCacheMemory(a.settings.FeedCacheTTL, nil), nil
	}
	return nil, fmt.Errorf("unknown cache backend %q", a.settings.CacheBackend)
}

func (a *application) feedService(pageCache feedcache.PageCache) *feedapp.FeedService {
	return feedapp.NewFeedService(
		dbadapter.NewPostRepositoryDatabase(a.db),
		dbadapter.NewGroupRepositoryDatabase(a.db),
		dbadapter.NewUserRepositoryDatabase(a.db),
		dbadapter.NewFollowerRepositoryDatabase(a.db),
		pageCache,
		storage.NewDiskStore(a.settings.MediaRoot, a.settings.MediaURL, a.logger),
		a.settings.PostsPerPage,
		a.logger,
	)
}

// closeResources closes Redis and the database
func (a *application) closeResources() {
	if config.RedisClient != nil {
		if err := config.RedisClient.Close(); err != nil {
			a.logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
	if err := config.CloseDB(a.db); err != nil {
		a.logger.Error("Error closing database connection", zap.Error(err))
	}
	_ = a.logger.Sync()
}
