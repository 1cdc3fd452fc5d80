package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"studioquote/config"
)

var (
	// SessionCacheClient holds live wizard sessions.
	SessionCacheClient *redis.Client
	// SummaryCacheClient caches generated quote summaries.
	SummaryCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client backing wizard sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitSummaryCache initializes the Redis client for summary caching.
func InitSummaryCache() {
	SummaryCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSummaryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SummaryCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Summaries): %v", err)
	}
}

// GetSummaryCacheClient returns the summary cache client.
func GetSummaryCacheClient() *redis.Client {
	if SummaryCacheClient == nil {
		InitSummaryCache()
	}
	return SummaryCacheClient
}
