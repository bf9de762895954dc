package livesync

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/khelan-mehta/cookie/internal/domain"
)

// sessionBuffer bounds how far a slow consumer may lag before events are
// dropped. Delivery is at-most-once, so dropping is legal; the client
// recovers from the next snapshot fetch.
const sessionBuffer = 16

// Hub is the in-process push transport: a subscription registry keyed by
// case, fanning each published event out to every currently-subscribed
// session exactly once.
type Hub struct {
	mu     sync.RWMutex
	cases  map[uuid.UUID]map[string]chan domain.SyncEvent
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		cases:  make(map[uuid.UUID]map[string]chan domain.SyncEvent),
		logger: logger,
	}
}

func (h *Hub) Publish(ctx context.Context, event domain.SyncEvent) error {
	return h.NotifyTopic(ctx, event.CaseID, event)
}

// NotifyTopic delivers an event to sessions subscribed under an explicit
// topic id. The dispatcher uses a responder's own id as the topic for
// new-distress fan-out; case events just use the case id.
func (h *Hub) NotifyTopic(_ context.Context, topic uuid.UUID, event domain.SyncEvent) error {
	// Deliver while holding the read lock. Subscribe/Unsubscribe close
	// channels only under the write lock, so a send can never hit a closed
	// channel. Sends are non-blocking, so the lock is held only briefly.
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.cases[topic] {
		select {
		case ch <- event:
		default:
			h.logger.Warn("session lagging, event dropped",
				slog.String("case_id", event.CaseID.String()),
				slog.String("kind", string(event.Kind)),
			)
		}
	}
	return nil
}

func (h *Hub) Subscribe(_ context.Context, caseID uuid.UUID, sessionID string) (<-chan domain.SyncEvent, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessions, ok := h.cases[caseID]
	if !ok {
		sessions = make(map[string]chan domain.SyncEvent)
		h.cases[caseID] = sessions
	}
	if old, ok := sessions[sessionID]; ok {
		// re-subscribe replaces the prior stream
		close(old)
	}
	ch := make(chan domain.SyncEvent, sessionBuffer)
	sessions[sessionID] = ch
	return ch, nil
}

func (h *Hub) Unsubscribe(caseID uuid.UUID, sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessions, ok := h.cases[caseID]
	if !ok {
		return
	}
	ch, ok := sessions[sessionID]
	if !ok {
		return
	}
	close(ch)
	delete(sessions, sessionID)
	if len(sessions) == 0 {
		delete(h.cases, caseID)
	}
}

// SessionCount reports live subscriptions for a case.
func (h *Hub) SessionCount(caseID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.cases[caseID])
}
