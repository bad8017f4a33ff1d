package storage

import (
	"context"
	"os"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"rent-it-server/utils"
)

var Redis *redis.Client

// InitializeRedis sets up the optional cache handle. Like the document store
// it is lazily failing infrastructure: nothing in the request path requires
// it, and the /test diagnostics report its state.
func InitializeRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
		utils.Log().Warn("REDIS_URL not set, using localhost:6379 (development mode)")
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: "",
		DB:       0,
	})

	utils.Log().Info("redis initialized", zap.String("addr", redisURL))
}

// CacheAvailable pings the cache and reports whether it answered.
func CacheAvailable(ctx context.Context) bool {
	if Redis == nil {
		return false
	}
	return Redis.Ping(ctx).Err() == nil
}
