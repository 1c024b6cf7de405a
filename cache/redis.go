// Package cache manages the Redis client used for rate limiting and health checks.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis connects to Redis at addr. The application runs without
// Redis if the connection fails; callers must tolerate a nil client.
func InitRedis(addr string) {
	client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without rate limiting)", err)
		client = nil
	} else {
		log.Println("Redis connected successfully")
	}
}

// GetClient returns the shared client, or nil when Redis is unavailable.
func GetClient() *redis.Client {
	return client
}

// Close closes the shared client if one was established.
func Close() {
	if client != nil {
		if err := client.Close(); err != nil {
			log.Printf("Error closing Redis: %v", err)
		}
	}
}
