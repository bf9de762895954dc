package livesync_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/internal/livesync"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func recvOne(t *testing.T, ch <-chan domain.SyncEvent) domain.SyncEvent {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatalf("stream closed unexpectedly")
		}
		return ev
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for event")
		return domain.SyncEvent{}
	}
}

func TestHub_DeliversToSubscribedSessions(t *testing.T) {
	t.Parallel()

	hub := livesync.NewHub(testLogger())
	caseID := uuid.New()

	reporter, err := hub.Subscribe(context.Background(), caseID, "sess-reporter")
	require.NoError(t, err)
	vet, err := hub.Subscribe(context.Background(), caseID, "sess-vet")
	require.NoError(t, err)

	ev := domain.NewSyncEvent(domain.EventVetResponse, caseID)
	require.NoError(t, hub.Publish(context.Background(), ev))

	require.Equal(t, domain.EventVetResponse, recvOne(t, reporter).Kind)
	require.Equal(t, domain.EventVetResponse, recvOne(t, vet).Kind)
}

func TestHub_NoReplayForLateSubscribers(t *testing.T) {
	t.Parallel()

	hub := livesync.NewHub(testLogger())
	caseID := uuid.New()

	require.NoError(t, hub.Publish(context.Background(), domain.NewSyncEvent(domain.EventNewDistress, caseID)))

	late, err := hub.Subscribe(context.Background(), caseID, "late")
	require.NoError(t, err)

	select {
	case ev := <-late:
		t.Fatalf("late subscriber received pre-subscription event %v", ev.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_StatusOrderPreservedPerCase(t *testing.T) {
	t.Parallel()

	hub := livesync.NewHub(testLogger())
	caseID := uuid.New()

	sub, err := hub.Subscribe(context.Background(), caseID, "sess")
	require.NoError(t, err)

	kinds := []domain.EventKind{
		domain.EventVetResponse,
		domain.EventResponseAccepted,
		domain.EventDistressResolved,
	}
	for _, k := range kinds {
		require.NoError(t, hub.Publish(context.Background(), domain.NewSyncEvent(k, caseID)))
	}

	for _, want := range kinds {
		require.Equal(t, want, recvOne(t, sub).Kind)
	}
}

func TestHub_EventsScopedToCase(t *testing.T) {
	t.Parallel()

	hub := livesync.NewHub(testLogger())
	mine := uuid.New()
	other := uuid.New()

	sub, err := hub.Subscribe(context.Background(), mine, "sess")
	require.NoError(t, err)

	require.NoError(t, hub.Publish(context.Background(), domain.NewSyncEvent(domain.EventLocationUpdated, other)))

	select {
	case ev := <-sub:
		t.Fatalf("received event for a different case: %v", ev.CaseID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnsubscribeClosesStreamAndFreesCase(t *testing.T) {
	t.Parallel()

	hub := livesync.NewHub(testLogger())
	caseID := uuid.New()

	sub, err := hub.Subscribe(context.Background(), caseID, "sess")
	require.NoError(t, err)
	require.Equal(t, 1, hub.SessionCount(caseID))

	hub.Unsubscribe(caseID, "sess")
	require.Equal(t, 0, hub.SessionCount(caseID))

	_, ok := <-sub
	require.False(t, ok, "stream should be closed after unsubscribe")

	// publishing afterwards is side-effect-free
	require.NoError(t, hub.Publish(context.Background(), domain.NewSyncEvent(domain.EventDistressUpdated, caseID)))
}

func TestHub_SlowConsumerDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	hub := livesync.NewHub(testLogger())
	caseID := uuid.New()

	_, err := hub.Subscribe(context.Background(), caseID, "stuck")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		// well past the session buffer; must not block
		for i := 0; i < 100; i++ {
			_ = hub.Publish(context.Background(), domain.NewSyncEvent(domain.EventLocationUpdated, caseID))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow consumer")
	}
}

func TestHub_PublishDuringSubscriptionChurn(t *testing.T) {
	t.Parallel()

	hub := livesync.NewHub(testLogger())
	caseID := uuid.New()
	ctx := context.Background()

	done := make(chan struct{})
	var wg sync.WaitGroup

	// Publishers race against sessions joining and leaving the same case.
	// Delivery may drop events, but teardown must never disturb a publish.
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					require.NoError(t, hub.Publish(ctx, domain.NewSyncEvent(domain.EventDistressUpdated, caseID)))
				}
			}
		}()
	}

	for i := 0; i < 4; i++ {
		wg.Add(1)
		sessionID := fmt.Sprintf("console-%d", i)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					ch, err := hub.Subscribe(ctx, caseID, sessionID)
					require.NoError(t, err)
					select {
					case <-ch:
					default:
					}
					hub.Unsubscribe(caseID, sessionID)
				}
			}
		}()
	}

	time.Sleep(500 * time.Millisecond)
	close(done)
	wg.Wait()

	require.Zero(t, hub.SessionCount(caseID))
}
