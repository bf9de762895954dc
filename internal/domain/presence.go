package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResponderPresence is the heartbeat-refreshed record of one vet. Only
// available responders with a fresh heartbeat are eligible for matching;
// freshness is judged lazily at query time against the staleness window.
type ResponderPresence struct {
	ResponderID uuid.UUID `json:"responder_id"`
	Location    Point     `json:"location"`
	Available   bool      `json:"available"`
	LastSeen    time.Time `json:"last_seen"`
}

func (p ResponderPresence) Fresh(now time.Time, window time.Duration) bool {
	return now.Sub(p.LastSeen) <= window
}
