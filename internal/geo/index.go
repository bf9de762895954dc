package geo

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/pkg/e"
)

// Index answers proximity queries over a set of live points. It is a plain
// in-memory structure: upserts come from heartbeats, reads from matching.
// Stale entries are filtered lazily at query time, there is no sweep
// goroutine.
//
// Instances are independent; construct one per point set (responders, open
// cases) and one per test.
type Index struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]entry

	// window is the staleness cutoff. Zero or negative disables the check.
	window time.Duration
	now    func() time.Time
}

type entry struct {
	point     domain.Point
	updatedAt time.Time
}

// Match is a Nearest result row.
type Match struct {
	ID         uuid.UUID
	Point      domain.Point
	DistanceKM float64
	UpdatedAt  time.Time
}

type Option func(*Index)

func WithStalenessWindow(window time.Duration) Option {
	return func(idx *Index) { idx.window = window }
}

// WithClock overrides the time source. Tests use this to age entries
// without sleeping.
func WithClock(now func() time.Time) Option {
	return func(idx *Index) { idx.now = now }
}

func NewIndex(opts ...Option) *Index {
	idx := &Index{
		entries: make(map[uuid.UUID]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Upsert replaces any prior point for id. Idempotent; every call refreshes
// the entry's recency.
func (idx *Index) Upsert(id uuid.UUID, point domain.Point) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries[id] = entry{point: point, updatedAt: idx.now()}
}

// Remove drops id from eligibility. No-op if absent.
func (idx *Index) Remove(id uuid.UUID) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	delete(idx.entries, id)
}

func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Nearest returns entries within radiusMeters of point, distance ascending,
// ties broken most-recently-updated first. Entries whose last update is
// older than the staleness window are excluded. An empty result is normal,
// not an error.
func (idx *Index) Nearest(point domain.Point, radiusMeters float64, limit int) ([]Match, error) {
	if radiusMeters <= 0 {
		return nil, e.Invalid(fmt.Sprintf("radius must be positive, got %v", radiusMeters))
	}
	if limit <= 0 {
		return nil, e.Invalid(fmt.Sprintf("limit must be positive, got %d", limit))
	}

	now := idx.now()
	radiusKM := radiusMeters / 1000.0

	idx.mu.RLock()
	matches := make([]Match, 0, 8)
	for id, ent := range idx.entries {
		if idx.window > 0 && now.Sub(ent.updatedAt) > idx.window {
			continue
		}
		dist := HaversineKM(point.Lat, point.Lng, ent.point.Lat, ent.point.Lng)
		if dist <= radiusKM {
			matches = append(matches, Match{
				ID:         id,
				Point:      ent.point,
				DistanceKM: dist,
				UpdatedAt:  ent.updatedAt,
			})
		}
	}
	idx.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceKM != matches[j].DistanceKM {
			return matches[i].DistanceKM < matches[j].DistanceKM
		}
		return matches[i].UpdatedAt.After(matches[j].UpdatedAt)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// HaversineKM is a spherical-earth approximation, good enough at the radii
// involved here.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371.0 // earth radius, km

	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
