package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/internal/geo"
	"github.com/khelan-mehta/cookie/internal/livesync"
	"github.com/khelan-mehta/cookie/pkg/e"
)

const snapshotTTL = 30 * time.Second

type distressService struct {
	repo      CaseRepository
	cache     SnapshotCache
	caseIndex *geo.Index
	dispatchQ DispatchQueue
	channel   livesync.Channel
	logger    *slog.Logger

	locks caseLocks
}

func NewDistressService(
	repo CaseRepository,
	cache SnapshotCache,
	caseIndex *geo.Index,
	dispatchQ DispatchQueue,
	channel livesync.Channel,
	logger *slog.Logger,
) DistressService {
	return &distressService{
		repo:      repo,
		cache:     cache,
		caseIndex: caseIndex,
		dispatchQ: dispatchQ,
		channel:   channel,
		logger:    logger,
		locks:     caseLocks{m: make(map[uuid.UUID]*sync.Mutex)},
	}
}

func (s *distressService) Create(ctx context.Context, reporterID uuid.UUID, req domain.CreateDistressRequest) (*domain.DistressCase, error) {
	const op = "service.Distress.Create"

	location, err := domain.PointFrom(req.Lat, req.Lng)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	c, err := domain.NewDistressCase(reporterID, req.PetName, req.Description, location)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := s.repo.SaveCase(ctx, c); err != nil {
		return nil, e.Wrap(op, err)
	}
	s.refreshCache(ctx, c)
	s.caseIndex.Upsert(c.ID, c.Location)

	job := domain.DispatchJob{CaseID: c.ID, Location: c.Location, CreatedAt: c.CreatedAt}
	if err := s.dispatchQ.Enqueue(ctx, job); err != nil {
		// case stays valid, responders still discover it by polling
		s.logger.Error("dispatch enqueue failed",
			slog.String("op", op),
			slog.String("case_id", c.ID.String()),
			slog.Any("error", err),
		)
	}

	s.logger.Info("distress created",
		slog.String("case_id", c.ID.String()),
		slog.String("reporter_id", reporterID.String()),
		slog.Float64("lat", c.Location.Lat),
		slog.Float64("lng", c.Location.Lng),
	)
	return c, nil
}

func (s *distressService) Get(ctx context.Context, id uuid.UUID) (*domain.DistressCase, error) {
	return s.Snapshot(ctx, id)
}

// Snapshot serves pull-mode polling: cache first, repository on miss.
func (s *distressService) Snapshot(ctx context.Context, id uuid.UUID) (*domain.DistressCase, error) {
	const op = "service.Distress.Snapshot"

	c, err := s.cache.Get(ctx, id)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, e.ErrNotFound) {
		s.logger.Warn("snapshot cache read failed", slog.String("op", op), slog.Any("error", err))
	}

	c, err = s.repo.LoadCase(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	s.refreshCache(ctx, c)
	return c, nil
}

func (s *distressService) SubmitOffer(ctx context.Context, caseID, responderID uuid.UUID, req domain.SubmitOfferRequest) error {
	const op = "service.Distress.SubmitOffer"

	return s.transition(ctx, op, caseID, func(c *domain.DistressCase) ([]domain.SyncEvent, error) {
		offer := domain.ResponderOffer{
			ResponderID: responderID,
			Mode:        req.Mode,
			Message:     req.Message,
			DistanceKM:  req.DistanceKM,
			EtaMinutes:  req.EtaMinutes,
		}
		if err := c.SubmitOffer(offer); err != nil {
			return nil, err
		}
		return []domain.SyncEvent{
			domain.NewSyncEvent(domain.EventVetResponse, caseID),
		}, nil
	})
}

func (s *distressService) SelectResponder(ctx context.Context, caseID, actorID uuid.UUID, req domain.SelectResponderRequest) error {
	const op = "service.Distress.SelectResponder"

	return s.transition(ctx, op, caseID, func(c *domain.DistressCase) ([]domain.SyncEvent, error) {
		if err := c.SelectResponder(actorID, req.ResponderID, req.Mode); err != nil {
			return nil, err
		}
		// in-progress cases are no longer discoverable
		s.caseIndex.Remove(caseID)
		return []domain.SyncEvent{
			domain.NewSyncEvent(domain.EventResponseAccepted, caseID),
		}, nil
	})
}

func (s *distressService) DeclineOffer(ctx context.Context, caseID, actorID, responderID uuid.UUID) error {
	const op = "service.Distress.DeclineOffer"

	return s.transition(ctx, op, caseID, func(c *domain.DistressCase) ([]domain.SyncEvent, error) {
		if err := c.DeclineOffer(actorID, responderID); err != nil {
			return nil, err
		}
		return []domain.SyncEvent{
			domain.NewSyncEvent(domain.EventResponseDeclined, caseID),
		}, nil
	})
}

func (s *distressService) UpdateLocation(ctx context.Context, caseID, actorID uuid.UUID, point domain.Point) error {
	const op = "service.Distress.UpdateLocation"

	return s.transition(ctx, op, caseID, func(c *domain.DistressCase) ([]domain.SyncEvent, error) {
		if err := c.UpdateLocation(actorID, point); err != nil {
			return nil, err
		}
		ev := domain.NewSyncEvent(domain.EventLocationUpdated, caseID)
		ev.ActorID = actorID
		p := point
		ev.Location = &p
		return []domain.SyncEvent{ev}, nil
	})
}

func (s *distressService) Resolve(ctx context.Context, caseID, actorID uuid.UUID) error {
	const op = "service.Distress.Resolve"

	return s.transition(ctx, op, caseID, func(c *domain.DistressCase) ([]domain.SyncEvent, error) {
		if err := c.Resolve(actorID); err != nil {
			return nil, err
		}
		s.caseIndex.Remove(caseID)
		return []domain.SyncEvent{
			domain.NewSyncEvent(domain.EventDistressResolved, caseID),
		}, nil
	})
}

func (s *distressService) Cancel(ctx context.Context, caseID, actorID uuid.UUID) error {
	const op = "service.Distress.Cancel"

	return s.transition(ctx, op, caseID, func(c *domain.DistressCase) ([]domain.SyncEvent, error) {
		if err := c.Cancel(actorID); err != nil {
			return nil, err
		}
		s.caseIndex.Remove(caseID)
		return []domain.SyncEvent{
			domain.NewSyncEvent(domain.EventDistressCancelled, caseID),
		}, nil
	})
}

func (s *distressService) AttachAdvisory(ctx context.Context, caseID uuid.UUID, severity domain.Severity, guidance string) error {
	const op = "service.Distress.AttachAdvisory"

	return s.transition(ctx, op, caseID, func(c *domain.DistressCase) ([]domain.SyncEvent, error) {
		c.AttachAdvisory(severity, guidance)
		return []domain.SyncEvent{
			domain.NewSyncEvent(domain.EventDistressUpdated, caseID),
		}, nil
	})
}

// transition serializes a mutation per case: lock, load, mutate, save,
// then publish. Events go out only after the save commits, so subscribers
// observe status changes in commit order.
func (s *distressService) transition(
	ctx context.Context,
	op string,
	caseID uuid.UUID,
	mutate func(c *domain.DistressCase) ([]domain.SyncEvent, error),
) error {
	unlock := s.locks.lock(caseID)
	defer unlock()

	c, err := s.repo.LoadCase(ctx, caseID)
	if err != nil {
		return e.Wrap(op, err)
	}

	events, err := mutate(c)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := s.repo.SaveCase(ctx, c); err != nil {
		return e.Wrap(op, err)
	}
	s.refreshCache(ctx, c)

	for _, ev := range events {
		if err := s.channel.Publish(ctx, ev); err != nil {
			// push is best-effort; pollers pick the change up anyway
			s.logger.Warn("event publish failed",
				slog.String("op", op),
				slog.String("kind", string(ev.Kind)),
				slog.Any("error", err),
			)
		}
	}
	return nil
}

func (s *distressService) refreshCache(ctx context.Context, c *domain.DistressCase) {
	if err := s.cache.Set(ctx, c, snapshotTTL); err != nil {
		s.logger.Warn("snapshot cache write failed",
			slog.String("case_id", c.ID.String()),
			slog.Any("error", err),
		)
	}
}

// caseLocks hands out one mutex per case id. Entries are tiny and mutations
// on terminal cases stop arriving, so the map is never swept.
type caseLocks struct {
	mu sync.Mutex
	m  map[uuid.UUID]*sync.Mutex
}

func (l *caseLocks) lock(id uuid.UUID) (unlock func()) {
	l.mu.Lock()
	cm, ok := l.m[id]
	if !ok {
		cm = &sync.Mutex{}
		l.m[id] = cm
	}
	l.mu.Unlock()

	cm.Lock()
	return cm.Unlock
}
