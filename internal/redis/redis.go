// Package redis owns the shared client behind the snapshot cache, the
// dispatch queue and the pub/sub sync transport.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khelan-mehta/cookie/internal/config"
)

// pingTimeout bounds the startup health check so a dead broker fails
// init instead of hanging it.
const pingTimeout = 5 * time.Second

type Redis struct {
	Client *redis.Client
}

// NewRedis dials the broker and verifies it answers before any cache or
// queue is built on top of the client.
func NewRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}

	logger.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
		slog.Int("db", cfg.Redis.DB),
	)

	return &Redis{Client: client}, nil
}

func (r *Redis) Close() error {
	return r.Client.Close()
}
