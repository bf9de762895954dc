package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/pkg/e"

	"github.com/google/uuid"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestSnapshotCache_RoundTrip(t *testing.T) {
	_, client := setupTestRedis(t)
	cache := NewSnapshotCache(&Redis{Client: client})

	c, err := domain.NewDistressCase(uuid.New(), "Misha",
		"swallowed something sharp, refusing food",
		domain.Point{Lat: 12.97, Lng: 77.59})
	require.NoError(t, err)

	vet := uuid.New()
	require.NoError(t, c.SubmitOffer(domain.ResponderOffer{
		ResponderID: vet,
		Mode:        domain.ReporterTravels,
		Message:     "bring her in, clinic is open",
	}))
	require.NoError(t, c.SelectResponder(c.ReporterID, vet, domain.ReporterTravels))

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, c, time.Minute))

	got, err := cache.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c.Status, got.Status)
	require.Equal(t, c.SelectedResponderID, got.SelectedResponderID)
	require.Len(t, got.Responses, 1)
	require.Equal(t, vet, got.Responses[0].ResponderID)
}

func TestSnapshotCache_MissIsNotFound(t *testing.T) {
	_, client := setupTestRedis(t)
	cache := NewSnapshotCache(&Redis{Client: client})

	_, err := cache.Get(context.Background(), uuid.New())
	require.True(t, errors.Is(err, e.ErrNotFound))
}

func TestSnapshotCache_ExpiredIsNotFound(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewSnapshotCache(&Redis{Client: client})

	c, err := domain.NewDistressCase(uuid.New(), "",
		"found a kitten stuck inside an engine bay",
		domain.Point{Lat: 12.97, Lng: 77.59})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, c, time.Second))

	mr.FastForward(2 * time.Second)

	_, err = cache.Get(ctx, c.ID)
	require.True(t, errors.Is(err, e.ErrNotFound))
}

func TestDispatchQueue_FIFO(t *testing.T) {
	_, client := setupTestRedis(t)
	q := NewDispatchQueue(client, "distress:dispatch")

	ctx := context.Background()
	first := domain.DispatchJob{CaseID: uuid.New(), Location: domain.Point{Lat: 12.97, Lng: 77.59}, CreatedAt: time.Now().UTC()}
	second := domain.DispatchJob{CaseID: uuid.New(), Location: domain.Point{Lat: 13.00, Lng: 77.60}, CreatedAt: time.Now().UTC()}

	require.NoError(t, q.Enqueue(ctx, first))
	require.NoError(t, q.Enqueue(ctx, second))

	got, err := q.BRPop(ctx, time.Second)
	require.NoError(t, err)
	require.Equal(t, first.CaseID, got.CaseID)

	got, err = q.BRPop(ctx, time.Second)
	require.NoError(t, err)
	require.Equal(t, second.CaseID, got.CaseID)
}

func TestDispatchQueue_EmptyTimeout(t *testing.T) {
	_, client := setupTestRedis(t)
	q := NewDispatchQueue(client, "distress:dispatch")

	_, err := q.BRPop(context.Background(), time.Second)
	require.True(t, errors.Is(err, e.ErrQueueEmpty))
}
