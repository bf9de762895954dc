package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khelan-mehta/cookie/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// DistressService owns the case lifecycle. Transitions on one case are
// serialized; operations on different cases run in parallel.
type DistressService interface {
	Create(ctx context.Context, reporterID uuid.UUID, req domain.CreateDistressRequest) (*domain.DistressCase, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.DistressCase, error)
	Snapshot(ctx context.Context, id uuid.UUID) (*domain.DistressCase, error)
	SubmitOffer(ctx context.Context, caseID, responderID uuid.UUID, req domain.SubmitOfferRequest) error
	SelectResponder(ctx context.Context, caseID, actorID uuid.UUID, req domain.SelectResponderRequest) error
	DeclineOffer(ctx context.Context, caseID, actorID, responderID uuid.UUID) error
	UpdateLocation(ctx context.Context, caseID, actorID uuid.UUID, point domain.Point) error
	Resolve(ctx context.Context, caseID, actorID uuid.UUID) error
	Cancel(ctx context.Context, caseID, actorID uuid.UUID) error
	AttachAdvisory(ctx context.Context, caseID uuid.UUID, severity domain.Severity, guidance string) error
}

// DispatcherService matches cases with responders and keeps responder
// presence current. Its output is candidate pairs; delivery belongs to the
// live sync channel.
type DispatcherService interface {
	FindEligibleResponders(ctx context.Context, c *domain.DistressCase) ([]domain.NearbyResponder, error)
	FindNearbyCases(ctx context.Context, location domain.Point) ([]domain.NearbyCase, error)
	Heartbeat(ctx context.Context, responderID uuid.UUID, point domain.Point) error
	SetAvailability(ctx context.Context, responderID uuid.UUID, available bool) error
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.DistressStats, error)
}

// CaseRepository is the persistence collaborator for cases. Terminal cases
// are archived by the store, never deleted.
type CaseRepository interface {
	SaveCase(ctx context.Context, c *domain.DistressCase) error
	LoadCase(ctx context.Context, id uuid.UUID) (*domain.DistressCase, error)
	CountByStatus(ctx context.Context, minutes int) (map[domain.DistressStatus]int64, error)
}

// PresenceRepository persists responder presence records. Records survive
// availability flips; eligibility is decided at query time.
type PresenceRepository interface {
	SavePresence(ctx context.Context, p *domain.ResponderPresence) error
	LoadPresence(ctx context.Context, responderID uuid.UUID) (*domain.ResponderPresence, error)
	CountAvailable(ctx context.Context, window time.Duration) (int64, error)
}

// DispatchQueue hands freshly created cases to the fan-out worker.
type DispatchQueue interface {
	Enqueue(ctx context.Context, job domain.DispatchJob) error
}

// SnapshotCache keeps the latest case snapshot hot for pull-mode polling.
// A miss is reported as e.ErrNotFound; callers fall back to the repository.
type SnapshotCache interface {
	Set(ctx context.Context, c *domain.DistressCase, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*domain.DistressCase, error)
}

type Service struct {
	DistressService   DistressService
	DispatcherService DispatcherService
	StatsService      StatsService
}

func NewService(
	distressService DistressService,
	dispatcherService DispatcherService,
	statsService StatsService,
) *Service {
	return &Service{
		DistressService:   distressService,
		DispatcherService: dispatcherService,
		StatsService:      statsService,
	}
}
