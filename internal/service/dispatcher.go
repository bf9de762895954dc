package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/internal/geo"
	"github.com/khelan-mehta/cookie/pkg/e"
)

type dispatcher struct {
	presence       PresenceRepository
	cases          CaseRepository
	responderIndex *geo.Index
	caseIndex      *geo.Index
	logger         *slog.Logger

	radiusMeters float64
	limit        int
}

func NewDispatcher(
	presence PresenceRepository,
	cases CaseRepository,
	responderIndex *geo.Index,
	caseIndex *geo.Index,
	radiusMeters float64,
	limit int,
	logger *slog.Logger,
) DispatcherService {
	if radiusMeters <= 0 {
		radiusMeters = 10_000
	}
	if limit <= 0 {
		limit = 20
	}
	return &dispatcher{
		presence:       presence,
		cases:          cases,
		responderIndex: responderIndex,
		caseIndex:      caseIndex,
		radiusMeters:   radiusMeters,
		limit:          limit,
		logger:         logger,
	}
}

// FindEligibleResponders returns available, fresh responders near the case,
// closest first. Empty is a normal outcome; the case simply stays pending.
func (d *dispatcher) FindEligibleResponders(ctx context.Context, c *domain.DistressCase) ([]domain.NearbyResponder, error) {
	const op = "service.Dispatcher.FindEligibleResponders"

	matches, err := d.responderIndex.Nearest(c.Location, d.radiusMeters, d.limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	out := make([]domain.NearbyResponder, 0, len(matches))
	for _, m := range matches {
		p, err := d.presence.LoadPresence(ctx, m.ID)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				continue
			}
			return nil, e.Wrap(op, err)
		}
		if !p.Available {
			continue
		}
		out = append(out, domain.NearbyResponder{
			ResponderID: m.ID,
			Location:    m.Point,
			DistanceKM:  m.DistanceKM,
		})
	}

	d.logger.Debug("eligible responders",
		slog.String("case_id", c.ID.String()),
		slog.Int("candidates", len(matches)),
		slog.Int("eligible", len(out)),
	)
	return out, nil
}

// FindNearbyCases is the responder-side discovery query over open cases,
// distance ascending, newest case first on ties.
func (d *dispatcher) FindNearbyCases(ctx context.Context, location domain.Point) ([]domain.NearbyCase, error) {
	const op = "service.Dispatcher.FindNearbyCases"

	matches, err := d.caseIndex.Nearest(location, d.radiusMeters, d.limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	out := make([]domain.NearbyCase, 0, len(matches))
	for _, m := range matches {
		c, err := d.cases.LoadCase(ctx, m.ID)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				// index can briefly outlive the case
				d.caseIndex.Remove(m.ID)
				continue
			}
			return nil, e.Wrap(op, err)
		}
		if !c.Status.Open() {
			d.caseIndex.Remove(m.ID)
			continue
		}
		out = append(out, domain.NearbyCase{Case: c, DistanceKM: m.DistanceKM})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DistanceKM != out[j].DistanceKM {
			return out[i].DistanceKM < out[j].DistanceKM
		}
		return out[i].Case.CreatedAt.After(out[j].Case.CreatedAt)
	})
	return out, nil
}

// Heartbeat refreshes a responder's position. Idempotent and safe to retry;
// the only side effect is the stored point and recency.
func (d *dispatcher) Heartbeat(ctx context.Context, responderID uuid.UUID, point domain.Point) error {
	const op = "service.Dispatcher.Heartbeat"

	if responderID == uuid.Nil {
		return e.Wrap(op, e.Invalid("responder id is required"))
	}
	if !point.Valid() {
		return e.Wrap(op, e.Invalid("location is out of range"))
	}

	p, err := d.presence.LoadPresence(ctx, responderID)
	if err != nil {
		if !errors.Is(err, e.ErrNotFound) {
			return e.Wrap(op, err)
		}
		// first heartbeat creates the record, available by default
		p = &domain.ResponderPresence{ResponderID: responderID, Available: true}
	}
	p.Location = point
	p.LastSeen = time.Now().UTC()

	if err := d.presence.SavePresence(ctx, p); err != nil {
		return e.Wrap(op, err)
	}
	if p.Available {
		d.responderIndex.Upsert(responderID, point)
	}
	return nil
}

func (d *dispatcher) SetAvailability(ctx context.Context, responderID uuid.UUID, available bool) error {
	const op = "service.Dispatcher.SetAvailability"

	if responderID == uuid.Nil {
		return e.Wrap(op, e.Invalid("responder id is required"))
	}

	p, err := d.presence.LoadPresence(ctx, responderID)
	if err != nil {
		if !errors.Is(err, e.ErrNotFound) {
			return e.Wrap(op, err)
		}
		p = &domain.ResponderPresence{ResponderID: responderID}
	}
	p.Available = available

	if err := d.presence.SavePresence(ctx, p); err != nil {
		return e.Wrap(op, err)
	}

	if available {
		if p.Location.Valid() && !p.LastSeen.IsZero() {
			d.responderIndex.Upsert(responderID, p.Location)
		}
	} else {
		d.responderIndex.Remove(responderID)
	}

	d.logger.Info("responder availability changed",
		slog.String("responder_id", responderID.String()),
		slog.Bool("available", available),
	)
	return nil
}
