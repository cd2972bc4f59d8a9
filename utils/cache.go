// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tripmesh/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the shared Redis client used for exchange-rate caching.
// It stays nil when no REDIS_ADDR is configured; callers fall back to
// in-process caches in that case.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		return
	}
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the shared cache client, possibly nil.
func GetCacheClient() *redis.Client {
	return CacheClient
}
