package domain

import (
	"time"

	"github.com/google/uuid"
)

// Coordinates are pointers so an omitted location is distinguishable from
// the valid point 0,0. Absent means invalid argument, never a default.
type CreateDistressRequest struct {
	PetName     string   `json:"pet_name" validate:"omitempty,max=100"`
	Description string   `json:"description" validate:"required"`
	Lat         *float64 `json:"lat" validate:"required,lat"`
	Lng         *float64 `json:"lng" validate:"required,lng"`
}

type SubmitOfferRequest struct {
	Mode       ResponseMode `json:"mode" validate:"required,oneof=responder_travels reporter_travels"`
	Message    string       `json:"message" validate:"omitempty,max=500"`
	DistanceKM float64      `json:"distance_km" validate:"omitempty,min=0"`
	EtaMinutes int          `json:"eta_minutes" validate:"omitempty,min=0"`
}

type SelectResponderRequest struct {
	ResponderID uuid.UUID    `json:"responder_id" validate:"required"`
	Mode        ResponseMode `json:"mode" validate:"required,oneof=responder_travels reporter_travels"`
}

type DeclineOfferRequest struct {
	ResponderID uuid.UUID `json:"responder_id" validate:"required"`
}

type UpdateLocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,lat"`
	Lng *float64 `json:"lng" validate:"required,lng"`
}

type HeartbeatRequest struct {
	Lat *float64 `json:"lat" validate:"required,lat"`
	Lng *float64 `json:"lng" validate:"required,lng"`
}

type AvailabilityRequest struct {
	Available bool `json:"available"`
}

// NearbyCase is one row of a responder's discovery query, distance ascending
// with newest-first tiebreak.
type NearbyCase struct {
	Case       *DistressCase `json:"case"`
	DistanceKM float64       `json:"distance_km"`
}

// NearbyResponder is one dispatch candidate for a freshly created case.
type NearbyResponder struct {
	ResponderID uuid.UUID `json:"responder_id"`
	Location    Point     `json:"location"`
	DistanceKM  float64   `json:"distance_km"`
}

type DistressStats struct {
	ByStatus         map[DistressStatus]int64 `json:"by_status"`
	ActiveResponders int64                    `json:"active_responders"`
	Minutes          int                      `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `json:"minutes" validate:"omitempty,min=1,max=1440"`
}

// DispatchJob is the payload queued when a case needs responder fan-out.
type DispatchJob struct {
	CaseID    uuid.UUID `json:"case_id"`
	Location  Point     `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
