package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event kinds mirror the client socket protocol.
type EventKind string

const (
	EventNewDistress       EventKind = "new-distress"
	EventVetResponse       EventKind = "vet-response"
	EventDistressUpdated   EventKind = "distress-updated"
	EventResponseAccepted  EventKind = "response-accepted"
	EventResponseDeclined  EventKind = "response-declined"
	EventLocationUpdated   EventKind = "location-updated"
	EventDistressResolved  EventKind = "distress-resolved"
	EventDistressCancelled EventKind = "distress-cancelled"
)

// SyncEvent is one state-machine emission for a case. ActorID is set for
// location updates so consumers can coalesce to the latest point per actor.
type SyncEvent struct {
	Kind       EventKind `json:"kind"`
	CaseID     uuid.UUID `json:"case_id"`
	ActorID    uuid.UUID `json:"actor_id,omitempty"`
	Location   *Point    `json:"location,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewSyncEvent(kind EventKind, caseID uuid.UUID) SyncEvent {
	return SyncEvent{Kind: kind, CaseID: caseID, OccurredAt: time.Now().UTC()}
}
