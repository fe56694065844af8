// Package blocklist keeps the set of client addresses whose DNS queries are
// refused by the intake service.
package blocklist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultKey = "dns:blocked"

// Redis stores blocked addresses in a single Redis set.
type Redis struct {
	log    *slog.Logger
	client *redis.Client
	key    string
}

// NewRedis parses redisURL, connects and pings the server.
func NewRedis(ctx context.Context, log *slog.Logger, redisURL string, key string) (*Redis, error) {
	const op = "blocklist.NewRedis"

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid redis URL: %w", op, err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: redis connection failed: %w", op, err)
	}

	if key == "" {
		key = DefaultKey
	}

	log.Info("blocklist connected", slog.String("op", op), slog.String("key", key))

	return &Redis{
		log:    log,
		client: client,
		key:    key,
	}, nil
}

// Block adds ip to the blocklist. Blocking an address twice is not an error.
func (r *Redis) Block(ctx context.Context, ip string) error {
	const op = "blocklist.Block"

	if err := r.client.SAdd(ctx, r.key, ip).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *Redis) IsBlocked(ctx context.Context, ip string) (bool, error) {
	const op = "blocklist.IsBlocked"

	blocked, err := r.client.SIsMember(ctx, r.key, ip).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return blocked, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
