package livesync

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/pkg/e"
)

// RedisChannel carries the push fabric over Redis Pub/Sub so multiple API
// instances see the same events. Semantics match the in-process Hub:
// at-most-once, no history, fire-and-forget to whoever is subscribed when
// the event lands.
type RedisChannel struct {
	client *goredis.Client
	logger *slog.Logger

	mu   sync.Mutex
	subs map[subKey]*redisSub
}

type subKey struct {
	caseID    uuid.UUID
	sessionID string
}

type redisSub struct {
	pubsub *goredis.PubSub
	out    chan domain.SyncEvent
	cancel context.CancelFunc
}

func NewRedisChannel(client *goredis.Client, logger *slog.Logger) *RedisChannel {
	return &RedisChannel{
		client: client,
		logger: logger,
		subs:   make(map[subKey]*redisSub),
	}
}

func caseTopic(caseID uuid.UUID) string {
	return "distress:events:" + caseID.String()
}

func (c *RedisChannel) Publish(ctx context.Context, event domain.SyncEvent) error {
	return c.NotifyTopic(ctx, event.CaseID, event)
}

// NotifyTopic publishes to an explicit topic id (a case, or a responder's
// personal feed during dispatch fan-out).
func (c *RedisChannel) NotifyTopic(ctx context.Context, topic uuid.UUID, event domain.SyncEvent) error {
	const op = "livesync.RedisChannel.Publish"

	b, err := json.Marshal(event)
	if err != nil {
		return e.Wrap(op, err)
	}
	if err := c.client.Publish(ctx, caseTopic(topic), b).Err(); err != nil {
		c.logger.Error("publish failed",
			slog.String("op", op),
			slog.String("case_id", event.CaseID.String()),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (c *RedisChannel) Subscribe(ctx context.Context, caseID uuid.UUID, sessionID string) (<-chan domain.SyncEvent, error) {
	const op = "livesync.RedisChannel.Subscribe"

	pubsub := c.client.Subscribe(ctx, caseTopic(caseID))
	// force the SUBSCRIBE round-trip so a dead broker fails here, not later
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, e.WrapError(ctx, op, err)
	}

	subCtx, cancel := context.WithCancel(context.Background())
	sub := &redisSub{
		pubsub: pubsub,
		out:    make(chan domain.SyncEvent, sessionBuffer),
		cancel: cancel,
	}

	key := subKey{caseID: caseID, sessionID: sessionID}
	c.mu.Lock()
	if old, ok := c.subs[key]; ok {
		old.stop()
	}
	c.subs[key] = sub
	c.mu.Unlock()

	go c.pump(subCtx, sub, caseID)

	return sub.out, nil
}

func (c *RedisChannel) pump(ctx context.Context, sub *redisSub, caseID uuid.UUID) {
	defer close(sub.out)
	msgs := sub.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var event domain.SyncEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				c.logger.Warn("bad event payload",
					slog.String("case_id", caseID.String()),
					slog.Any("error", err),
				)
				continue
			}
			select {
			case sub.out <- event:
			default:
				// slow consumer, drop (at-most-once)
			}
		}
	}
}

func (c *RedisChannel) Unsubscribe(caseID uuid.UUID, sessionID string) {
	key := subKey{caseID: caseID, sessionID: sessionID}
	c.mu.Lock()
	sub, ok := c.subs[key]
	if ok {
		delete(c.subs, key)
	}
	c.mu.Unlock()
	if ok {
		sub.stop()
	}
}

// Close tears down every live subscription.
func (c *RedisChannel) Close() {
	c.mu.Lock()
	subs := c.subs
	c.subs = make(map[subKey]*redisSub)
	c.mu.Unlock()
	for _, sub := range subs {
		sub.stop()
	}
}

func (s *redisSub) stop() {
	s.cancel()
	_ = s.pubsub.Close()
}
