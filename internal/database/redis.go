package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis builds the Redis client used by the link cache. A failed ping is
// returned to the caller so it can decide whether to run degraded.
func NewRedis(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return client, err
	}
	return client, nil
}
