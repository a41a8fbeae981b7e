// Package cache wrap the redis client holding short lived workflow state
package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates redis client, the connection is established lazily
func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

// Ping check redis reachability
func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}
