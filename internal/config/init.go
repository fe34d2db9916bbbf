package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Settings everything the process reads from the environment
type Settings struct {
	Env  string
	Port string

	DBDriver string
	DBDSN    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CacheBackend string
	FeedCacheTTL time.Duration
	PostsPerPage int

	JWTSecret  string
	AdminToken string

	MediaRoot string
	MediaURL  string
}

// LoadEnvFile loads a .env file when one exists; missing files are not an error
func LoadEnvFile(path string) bool {
	if path == "" {
		path = ".env"
	}
	return godotenv.Load(path) == nil
}

// Load reads Settings from the environment and checks the required values
func Load() (*Settings, error) {
	s := &Settings{
		Env:           getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBDSN:         os.Getenv("DB_DSN"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheBackend:  getEnv("CACHE_BACKEND", "memory"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminToken:    os.Getenv("ADMIN_TOKEN"),
		MediaRoot:     getEnv("MEDIA_ROOT", "media"),
		MediaURL:      getEnv("MEDIA_URL", "/media/"),
	}

	var err error
	if s.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if s.PostsPerPage, err = getEnvInt("POSTS_PER_PAGE", 10); err != nil {
		return nil, err
	}
	if s.PostsPerPage <= 0 {
		return nil, fmt.Errorf("POSTS_PER_PAGE must be positive, got %d", s.PostsPerPage)
	}
	ttl := getEnv("FEED_CACHE_TTL", "20s")
	if s.FeedCacheTTL, err = time.ParseDuration(ttl); err != nil {
		return nil, fmt.Errorf("invalid FEED_CACHE_TTL %q: %w", ttl, err)
	}

	if s.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}
	switch s.CacheBackend {
	case "memory":
	case "redis":
		if s.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is not set but CACHE_BACKEND=redis")
		}
	default:
		return nil, fmt.Errorf("unknown CACHE_BACKEND %q", s.CacheBackend)
	}

	return s, nil
}

// CheckServe the settings only the HTTP server needs
func (s *Settings) CheckServe() error {
	if s.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
