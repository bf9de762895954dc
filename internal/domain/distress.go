package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khelan-mehta/cookie/pkg/e"
)

type DistressStatus string

const (
	DistressPending    DistressStatus = "pending"
	DistressResponded  DistressStatus = "responded"
	DistressInProgress DistressStatus = "in_progress"
	DistressResolved   DistressStatus = "resolved"
	DistressCancelled  DistressStatus = "cancelled"
)

func (s DistressStatus) Terminal() bool {
	return s == DistressResolved || s == DistressCancelled
}

// Open reports whether the case still accepts offers.
func (s DistressStatus) Open() bool {
	return s == DistressPending || s == DistressResponded
}

type ResponseMode string

const (
	// ResponderTravels: the vet comes to the reporter.
	ResponderTravels ResponseMode = "responder_travels"
	// ReporterTravels: the reporter brings the pet to the clinic.
	ReporterTravels ResponseMode = "reporter_travels"
)

func (m ResponseMode) Valid() bool {
	return m == ResponderTravels || m == ReporterTravels
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// PointFrom builds a Point from request coordinates. Either coordinate
// missing is invalid argument; range checks stay with Valid.
func PointFrom(lat, lng *float64) (Point, error) {
	if lat == nil || lng == nil {
		return Point{}, e.Invalid("location is required")
	}
	return Point{Lat: *lat, Lng: *lng}, nil
}

type ResponderOffer struct {
	ResponderID uuid.UUID    `json:"responder_id"`
	Mode        ResponseMode `json:"mode"`
	Message     string       `json:"message,omitempty"`
	DistanceKM  float64      `json:"distance_km,omitempty"`
	EtaMinutes  int          `json:"eta_minutes,omitempty"`
	Declined    bool         `json:"declined,omitempty"`
	OfferedAt   time.Time    `json:"offered_at"`
}

// DistressCase is the single source of truth for one emergency report.
// Transition methods are pure: they mutate the struct and report the violated
// invariant, leaving locking and persistence to the service layer.
type DistressCase struct {
	ID          uuid.UUID        `json:"id"`
	ReporterID  uuid.UUID        `json:"reporter_id"`
	PetName     string           `json:"pet_name,omitempty"`
	Description string           `json:"description"`
	Location    Point            `json:"location"`
	Status      DistressStatus   `json:"status"`
	Responses   []ResponderOffer `json:"responses"`

	SelectedResponderID uuid.UUID    `json:"selected_responder_id,omitempty"`
	ResponseMode        ResponseMode `json:"response_mode,omitempty"`

	// Advisory annotation from the external scorer. Optional, may arrive
	// late or never; has no effect on transitions.
	Severity Severity `json:"severity,omitempty"`
	Guidance string   `json:"guidance,omitempty"`

	// ResponderLocation tracks the selected responder's live position while
	// the case is in progress. Zero until the first update.
	ResponderLocation *Point `json:"responder_location,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const minDescriptionLen = 10

func NewDistressCase(reporterID uuid.UUID, petName, description string, location Point) (*DistressCase, error) {
	if reporterID == uuid.Nil {
		return nil, e.Invalid("reporter id is required")
	}
	if !location.Valid() {
		return nil, e.Invalid("location is missing or out of range")
	}
	if len(strings.TrimSpace(description)) < minDescriptionLen {
		return nil, e.Invalid("description must be at least 10 characters")
	}
	now := time.Now().UTC()
	return &DistressCase{
		ID:          uuid.New(),
		ReporterID:  reporterID,
		PetName:     petName,
		Description: description,
		Location:    location,
		Status:      DistressPending,
		Responses:   []ResponderOffer{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SubmitOffer records a responder's proposal. The first offer moves the case
// pending -> responded. A repeat offer from the same responder overwrites in
// place; arrival order of distinct responders is preserved.
func (c *DistressCase) SubmitOffer(offer ResponderOffer) error {
	if !c.Status.Open() {
		return e.State("case no longer accepts offers, status is " + string(c.Status))
	}
	if offer.ResponderID == uuid.Nil {
		return e.Invalid("responder id is required")
	}
	if !offer.Mode.Valid() {
		return e.Invalid("mode must be responder_travels or reporter_travels")
	}
	if offer.OfferedAt.IsZero() {
		offer.OfferedAt = time.Now().UTC()
	}

	for i, existing := range c.Responses {
		if existing.ResponderID == offer.ResponderID {
			c.Responses[i] = offer
			c.touch()
			return nil
		}
	}
	c.Responses = append(c.Responses, offer)
	if c.Status == DistressPending {
		c.Status = DistressResponded
	}
	c.touch()
	return nil
}

// SelectResponder is a reporter-only transition: picks one live offer and
// moves the case to in_progress. Set exactly once.
func (c *DistressCase) SelectResponder(actorID, responderID uuid.UUID, mode ResponseMode) error {
	if c.SelectedResponderID != uuid.Nil {
		return e.State("case already has a selected responder")
	}
	if !c.Status.Open() {
		return e.State("case is not open for selection, status is " + string(c.Status))
	}
	if actorID != c.ReporterID {
		return e.Forbid("only the reporter can select a responder")
	}
	if !mode.Valid() {
		return e.Invalid("mode must be responder_travels or reporter_travels")
	}

	offer := c.findOffer(responderID)
	if offer == nil {
		return e.Wrap("no offer from this responder on the case", e.ErrNotFound)
	}
	if offer.Declined {
		return e.State("offer was declined by the reporter")
	}

	c.SelectedResponderID = responderID
	c.ResponseMode = mode
	c.Status = DistressInProgress
	c.touch()
	return nil
}

// DeclineOffer marks a responder's offer as declined. The offer stays in the
// sequence but is excluded from selection.
func (c *DistressCase) DeclineOffer(actorID, responderID uuid.UUID) error {
	if !c.Status.Open() {
		return e.State("case is not open, status is " + string(c.Status))
	}
	if actorID != c.ReporterID {
		return e.Forbid("only the reporter can decline an offer")
	}
	offer := c.findOffer(responderID)
	if offer == nil {
		return e.Wrap("no offer from this responder on the case", e.ErrNotFound)
	}
	offer.Declined = true
	c.touch()
	return nil
}

// UpdateLocation refreshes the live position used by sync while the case is
// in progress. Reporter moves the case location, the selected responder moves
// their own marker. Never changes status.
func (c *DistressCase) UpdateLocation(actorID uuid.UUID, point Point) error {
	if c.Status != DistressInProgress {
		return e.State("location updates are only allowed while in progress")
	}
	if !point.Valid() {
		return e.Invalid("location is out of range")
	}
	switch actorID {
	case c.ReporterID:
		c.Location = point
	case c.SelectedResponderID:
		p := point
		c.ResponderLocation = &p
	default:
		return e.Forbid("actor is neither reporter nor selected responder")
	}
	c.touch()
	return nil
}

func (c *DistressCase) Resolve(actorID uuid.UUID) error {
	if c.Status != DistressInProgress {
		return e.State("only an in-progress case can be resolved, status is " + string(c.Status))
	}
	if actorID != c.ReporterID && actorID != c.SelectedResponderID {
		return e.Forbid("actor is neither reporter nor selected responder")
	}
	c.Status = DistressResolved
	c.touch()
	return nil
}

func (c *DistressCase) Cancel(actorID uuid.UUID) error {
	if c.Status.Terminal() {
		return e.State("case is already closed, status is " + string(c.Status))
	}
	if actorID != c.ReporterID {
		return e.Forbid("only the reporter can cancel the case")
	}
	c.Status = DistressCancelled
	c.touch()
	return nil
}

// AttachAdvisory sets the external scorer's annotation. Tolerated at any
// point in the lifecycle; never fails a live case.
func (c *DistressCase) AttachAdvisory(severity Severity, guidance string) {
	c.Severity = severity
	c.Guidance = guidance
	c.touch()
}

func (c *DistressCase) findOffer(responderID uuid.UUID) *ResponderOffer {
	for i := range c.Responses {
		if c.Responses[i].ResponderID == responderID {
			return &c.Responses[i]
		}
	}
	return nil
}

func (c *DistressCase) touch() {
	c.UpdatedAt = time.Now().UTC()
}
