// Package livesync propagates case events (locations, offers, status
// transitions) to the reporter's and selected responder's live sessions.
//
// Two interchangeable strategies sit behind one surface: a push hub that
// delivers each event at most once to currently-subscribed sessions, and a
// pull poller that hands back the full case snapshot plus a change token.
// The state machine only ever calls Publish; the deployment picks the
// delivery side.
package livesync

import (
	"context"

	"github.com/google/uuid"

	"github.com/khelan-mehta/cookie/internal/domain"
)

//go:generate mockgen -source=channel.go -destination=mocks/mock.go

// Channel is the push surface. Subscribe joins a session to a case and
// returns the stream it will receive events on; Unsubscribe (or dropping the
// context) leaves it. No replay: events emitted while a session was not
// subscribed are gone.
type Channel interface {
	Publish(ctx context.Context, event domain.SyncEvent) error
	Subscribe(ctx context.Context, caseID uuid.UUID, sessionID string) (<-chan domain.SyncEvent, error)
	Unsubscribe(caseID uuid.UUID, sessionID string)
}

// Notifier delivers an event to sessions listening on an arbitrary topic,
// not just a case. Both transports implement it; the dispatcher fans
// new-distress out to each eligible responder's personal feed through it.
type Notifier interface {
	NotifyTopic(ctx context.Context, topic uuid.UUID, event domain.SyncEvent) error
}

// Snapshot is one pull-mode answer: the whole case, never a diff. The
// client compares fields locally.
type Snapshot struct {
	Case    *domain.DistressCase `json:"case"`
	Token   string               `json:"token"`
	Changed bool                 `json:"changed"`
}

// Poller is the pull surface. A session calls Poll on its own interval with
// the token from the previous answer; ceasing to poll is the whole teardown.
type Poller interface {
	Poll(ctx context.Context, caseID uuid.UUID, sinceToken string) (Snapshot, error)
}

// NopChannel discards every event. Pull-only deployments wire this in so
// the state machine keeps a single emission path.
type NopChannel struct{}

func (NopChannel) Publish(context.Context, domain.SyncEvent) error { return nil }

func (NopChannel) Subscribe(context.Context, uuid.UUID, string) (<-chan domain.SyncEvent, error) {
	ch := make(chan domain.SyncEvent)
	close(ch)
	return ch, nil
}

func (NopChannel) Unsubscribe(uuid.UUID, string) {}

func (NopChannel) NotifyTopic(context.Context, uuid.UUID, domain.SyncEvent) error { return nil }
