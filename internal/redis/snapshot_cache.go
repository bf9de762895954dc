package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/pkg/e"
)

// SnapshotCache keeps the latest JSON snapshot of each case hot, so pull-mode
// polling at 3-5s intervals mostly skips Postgres. A miss surfaces as
// e.ErrNotFound and callers fall through to the repository.
type SnapshotCache struct {
	client *goredis.Client
	prefix string
}

func NewSnapshotCache(r *Redis) *SnapshotCache {
	return &SnapshotCache{
		client: r.Client,
		prefix: "distress:snapshot:",
	}
}

func (c *SnapshotCache) key(id uuid.UUID) string {
	return c.prefix + id.String()
}

func (c *SnapshotCache) Get(ctx context.Context, id uuid.UUID) (*domain.DistressCase, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, e.ErrNotFound
		}
		return nil, err
	}

	var out domain.DistressCase
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SnapshotCache) Set(ctx context.Context, dc *domain.DistressCase, ttl time.Duration) error {
	b, err := json.Marshal(dc)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(dc.ID), b, ttl).Err()
}
