package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// New connects to redis and verifies the connection. The client backs the
// transient one-time-code store for password resets.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}
