// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"shoba/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds live wizard sessions.
	SessionCacheClient *redis.Client
	// ChatCacheClient holds chat conversation context.
	ChatCacheClient *redis.Client
	// RecordsCacheClient holds confirmed order records for status lookup.
	RecordsCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all dedicated Redis clients up front.
func InitRedis() {
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	ChatCacheClient = newRedisClient(config.AppConfig.RedisChatDB)
	RecordsCacheClient = newRedisClient(config.AppConfig.RedisRecordsDB)
}

// GetSessionCacheClient returns the client for wizard session caching.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	}
	return SessionCacheClient
}

// GetChatCacheClient returns the client for chat context caching.
func GetChatCacheClient() *redis.Client {
	if ChatCacheClient == nil {
		ChatCacheClient = newRedisClient(config.AppConfig.RedisChatDB)
	}
	return ChatCacheClient
}

// GetRecordsCacheClient returns the client for order record caching.
func GetRecordsCacheClient() *redis.Client {
	if RecordsCacheClient == nil {
		RecordsCacheClient = newRedisClient(config.AppConfig.RedisRecordsDB)
	}
	return RecordsCacheClient
}
