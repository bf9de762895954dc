package geo_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/internal/geo"
	"github.com/khelan-mehta/cookie/pkg/e"
)

// Bengaluru city center and two points roughly 1km / 12km away.
var (
	center  = domain.Point{Lat: 12.97, Lng: 77.59}
	nearPt  = domain.Point{Lat: 12.979, Lng: 77.59}
	farPt   = domain.Point{Lat: 13.078, Lng: 77.59}
	wayOff  = domain.Point{Lat: 28.61, Lng: 77.20} // Delhi
)

func TestIndex_Nearest_OrdersByDistance(t *testing.T) {
	t.Parallel()

	idx := geo.NewIndex()
	far := uuid.New()
	near := uuid.New()
	idx.Upsert(far, farPt)
	idx.Upsert(near, nearPt)
	idx.Upsert(uuid.New(), wayOff)

	got, err := idx.Nearest(center, 20_000, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].ID != near || got[1].ID != far {
		t.Fatalf("wrong order: got %v then %v", got[0].ID, got[1].ID)
	}
	if got[0].DistanceKM > got[1].DistanceKM {
		t.Fatalf("distances not ascending: %v > %v", got[0].DistanceKM, got[1].DistanceKM)
	}
}

func TestIndex_Nearest_NeverExceedsRadius(t *testing.T) {
	t.Parallel()

	idx := geo.NewIndex()
	idx.Upsert(uuid.New(), nearPt)
	idx.Upsert(uuid.New(), farPt)

	got, err := idx.Nearest(center, 2_000, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, m := range got {
		if m.DistanceKM*1000 > 2_000 {
			t.Fatalf("match at %.1fm exceeds 2000m radius", m.DistanceKM*1000)
		}
	}
	if len(got) != 1 {
		t.Fatalf("expected only the near point, got %d matches", len(got))
	}
}

func TestIndex_Nearest_TiesBrokenByRecency(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: now}
	idx := geo.NewIndex(geo.WithClock(clock.Now))

	older := uuid.New()
	newer := uuid.New()
	idx.Upsert(older, nearPt)
	clock.Advance(10 * time.Second)
	idx.Upsert(newer, nearPt) // same point, same distance

	got, err := idx.Nearest(center, 20_000, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].ID != newer {
		t.Fatalf("expected most recently updated first, got %v", got[0].ID)
	}
}

func TestIndex_Nearest_ExcludesStaleHeartbeats(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: now}
	idx := geo.NewIndex(
		geo.WithStalenessWindow(60*time.Second),
		geo.WithClock(clock.Now),
	)

	quiet := uuid.New()
	chatty := uuid.New()
	idx.Upsert(quiet, nearPt)

	// chatty heartbeats every 30s, quiet goes silent
	clock.Advance(30 * time.Second)
	idx.Upsert(chatty, nearPt)
	clock.Advance(31 * time.Second) // quiet is now 61s old

	got, err := idx.Nearest(center, 20_000, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != chatty {
		t.Fatalf("expected only the fresh responder, got %+v", got)
	}
}

func TestIndex_Nearest_InvalidArguments(t *testing.T) {
	t.Parallel()

	idx := geo.NewIndex()
	idx.Upsert(uuid.New(), nearPt)

	if _, err := idx.Nearest(center, 0, 10); !errors.Is(err, e.ErrInvalidArgument) {
		t.Fatalf("radius=0: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := idx.Nearest(center, -5, 10); !errors.Is(err, e.ErrInvalidArgument) {
		t.Fatalf("radius<0: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := idx.Nearest(center, 1000, 0); !errors.Is(err, e.ErrInvalidArgument) {
		t.Fatalf("limit=0: expected ErrInvalidArgument, got %v", err)
	}
}

func TestIndex_Nearest_EmptyIsNotAnError(t *testing.T) {
	t.Parallel()

	idx := geo.NewIndex()
	got, err := idx.Nearest(center, 1_000, 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestIndex_UpsertReplaces_RemoveIsNoopWhenAbsent(t *testing.T) {
	t.Parallel()

	idx := geo.NewIndex()
	id := uuid.New()
	idx.Upsert(id, wayOff)
	idx.Upsert(id, nearPt) // moved into range

	got, err := idx.Nearest(center, 20_000, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != id {
		t.Fatalf("expected moved entry to match, got %+v", got)
	}

	idx.Remove(uuid.New()) // absent id
	idx.Remove(id)
	if idx.Len() != 0 {
		t.Fatalf("expected empty index, len=%d", idx.Len())
	}
}

func TestIndex_ConcurrentHeartbeats(t *testing.T) {
	t.Parallel()

	idx := geo.NewIndex()
	ids := make([]uuid.UUID, 32)
	for i := range ids {
		ids[i] = uuid.New()
	}

	done := make(chan struct{})
	for _, id := range ids {
		go func(id uuid.UUID) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 50; i++ {
				idx.Upsert(id, nearPt)
				if _, err := idx.Nearest(center, 20_000, 50); err != nil {
					t.Errorf("nearest failed: %v", err)
					return
				}
			}
		}(id)
	}
	for range ids {
		<-done
	}

	if idx.Len() != len(ids) {
		t.Fatalf("expected %d entries, got %d", len(ids), idx.Len())
	}
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time             { return c.t }
func (c *fakeClock) Advance(d time.Duration)    { c.t = c.t.Add(d) }
