package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"Backend-FormCraft/src/logger"
)

var (
	RedisClient *redis.Client
	RedisURI    string
)

// InitRedis connects to Redis when uri is set. Without Redis the analytics
// cache, token blacklist and asynq queue are disabled.
func InitRedis(uri string) *redis.Client {
	if uri == "" {
		logger.Warnf("⚠️ REDIS_URI not set. Redis features are disabled.")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     uri, // e.g. localhost:6379
		Password: "",
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warnf("⚠️ Failed to connect Redis at %s: %v", uri, err)
		_ = rdb.Close()
		return nil
	}

	RedisClient = rdb
	RedisURI = uri
	logger.Infof("✅ Redis connected successfully")
	return rdb
}
