package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/internal/geo"
	"github.com/khelan-mehta/cookie/internal/service"
	mock_service "github.com/khelan-mehta/cookie/internal/service/mocks"
	"github.com/khelan-mehta/cookie/pkg/e"
)

type dispatchFixture struct {
	svc            service.DispatcherService
	responderIndex *geo.Index
	caseIndex      *geo.Index
	presence       map[uuid.UUID]*domain.ResponderPresence
	cases          map[uuid.UUID]*domain.DistressCase
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &dispatchFixture{
		responderIndex: geo.NewIndex(geo.WithStalenessWindow(60 * time.Second)),
		caseIndex:      geo.NewIndex(),
		presence:       make(map[uuid.UUID]*domain.ResponderPresence),
		cases:          make(map[uuid.UUID]*domain.DistressCase),
	}

	presenceRepo := mock_service.NewMockPresenceRepository(ctrl)
	presenceRepo.EXPECT().
		SavePresence(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.ResponderPresence) error {
			cp := *p
			f.presence[p.ResponderID] = &cp
			return nil
		}).
		AnyTimes()
	presenceRepo.EXPECT().
		LoadPresence(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*domain.ResponderPresence, error) {
			p, ok := f.presence[id]
			if !ok {
				return nil, e.ErrNotFound
			}
			cp := *p
			return &cp, nil
		}).
		AnyTimes()

	caseRepo := mock_service.NewMockCaseRepository(ctrl)
	caseRepo.EXPECT().
		LoadCase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*domain.DistressCase, error) {
			c, ok := f.cases[id]
			if !ok {
				return nil, e.ErrNotFound
			}
			return cloneCase(c), nil
		}).
		AnyTimes()

	f.svc = service.NewDispatcher(presenceRepo, caseRepo, f.responderIndex, f.caseIndex, 10_000, 20, discard())
	return f
}

func (f *dispatchFixture) addCase(t *testing.T, location domain.Point, status domain.DistressStatus, createdAt time.Time) *domain.DistressCase {
	t.Helper()
	c, err := domain.NewDistressCase(uuid.New(), "Cookie", "needs urgent attention now", location)
	if err != nil {
		t.Fatalf("make case: %v", err)
	}
	c.Status = status
	c.CreatedAt = createdAt
	f.cases[c.ID] = c
	f.caseIndex.Upsert(c.ID, location)
	return c
}

func TestDispatcher_FindEligibleResponders_FiltersUnavailable(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)

	available := uuid.New()
	busy := uuid.New()
	ghost := uuid.New() // in the index but presence record vanished

	if err := f.svc.Heartbeat(context.Background(), available, nearPoint(0.001)); err != nil {
		t.Fatalf("heartbeat failed: %v", err)
	}
	if err := f.svc.Heartbeat(context.Background(), busy, nearPoint(0.002)); err != nil {
		t.Fatalf("heartbeat failed: %v", err)
	}
	if err := f.svc.SetAvailability(context.Background(), busy, false); err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	f.responderIndex.Upsert(ghost, nearPoint(0.003))

	c, err := domain.NewDistressCase(uuid.New(), "Cookie", "bleeding paw, very agitated", bengaluru)
	if err != nil {
		t.Fatalf("make case: %v", err)
	}

	got, err := f.svc.FindEligibleResponders(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ResponderID != available {
		t.Fatalf("expected only the available responder, got %+v", got)
	}
}

func TestDispatcher_FindEligibleResponders_EmptyIsNormal(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)
	c, err := domain.NewDistressCase(uuid.New(), "Cookie", "swallowed a chicken bone", bengaluru)
	if err != nil {
		t.Fatalf("make case: %v", err)
	}

	got, err := f.svc.FindEligibleResponders(context.Background(), c)
	if err != nil {
		t.Fatalf("zero responders must not be an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty set, got %+v", got)
	}
}

func TestDispatcher_FindNearbyCases_OnlyOpenOrderedByDistance(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)
	now := time.Now().UTC()

	near := f.addCase(t, nearPoint(0.002), domain.DistressPending, now.Add(-time.Minute))
	far := f.addCase(t, nearPoint(0.02), domain.DistressResponded, now.Add(-2*time.Minute))
	f.addCase(t, nearPoint(0.003), domain.DistressResolved, now) // closed, stays out

	got, err := f.svc.FindNearbyCases(context.Background(), bengaluru)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 open cases, got %d", len(got))
	}
	if got[0].Case.ID != near.ID || got[1].Case.ID != far.ID {
		t.Fatalf("wrong order: %v then %v", got[0].Case.ID, got[1].Case.ID)
	}
	if f.caseIndex.Len() != 2 {
		t.Fatalf("closed case should be evicted from the index, len=%d", f.caseIndex.Len())
	}
}

func TestDispatcher_Heartbeat_CreatesPresenceAndIndexes(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)
	vet := uuid.New()

	if err := f.svc.Heartbeat(context.Background(), vet, bengaluru); err != nil {
		t.Fatalf("heartbeat failed: %v", err)
	}

	p, ok := f.presence[vet]
	if !ok {
		t.Fatalf("presence record not created")
	}
	if !p.Available {
		t.Fatalf("first heartbeat should default to available")
	}
	if p.LastSeen.IsZero() {
		t.Fatalf("last seen not set")
	}
	if f.responderIndex.Len() != 1 {
		t.Fatalf("responder not indexed")
	}

	// retried heartbeat is idempotent beyond position/recency
	if err := f.svc.Heartbeat(context.Background(), vet, bengaluru); err != nil {
		t.Fatalf("retry heartbeat failed: %v", err)
	}
	if f.responderIndex.Len() != 1 {
		t.Fatalf("retry must not duplicate the entry")
	}
}

func TestDispatcher_SetAvailability_TogglesEligibility(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)
	vet := uuid.New()

	if err := f.svc.Heartbeat(context.Background(), vet, bengaluru); err != nil {
		t.Fatalf("heartbeat failed: %v", err)
	}
	if err := f.svc.SetAvailability(context.Background(), vet, false); err != nil {
		t.Fatalf("availability off failed: %v", err)
	}
	if f.responderIndex.Len() != 0 {
		t.Fatalf("unavailable responder must leave the index")
	}

	if err := f.svc.SetAvailability(context.Background(), vet, true); err != nil {
		t.Fatalf("availability on failed: %v", err)
	}
	if f.responderIndex.Len() != 1 {
		t.Fatalf("responder with a known location should re-enter the index")
	}
}

func TestDispatcher_Heartbeat_RejectsBadInput(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t)

	if err := f.svc.Heartbeat(context.Background(), uuid.Nil, bengaluru); !errors.Is(err, e.ErrInvalidArgument) {
		t.Fatalf("nil id: expected ErrInvalidArgument, got %v", err)
	}
	if err := f.svc.Heartbeat(context.Background(), uuid.New(), domain.Point{Lat: 200, Lng: 0}); !errors.Is(err, e.ErrInvalidArgument) {
		t.Fatalf("bad point: expected ErrInvalidArgument, got %v", err)
	}
}

// nearPoint offsets latitude from the Bengaluru center; 0.001 deg is ~111m.
func nearPoint(dLat float64) domain.Point {
	return domain.Point{Lat: bengaluru.Lat + dLat, Lng: bengaluru.Lng}
}
