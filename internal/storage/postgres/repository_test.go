//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

const schema = `
CREATE TABLE IF NOT EXISTS distress_cases (
	id                    UUID PRIMARY KEY,
	reporter_id           UUID NOT NULL,
	pet_name              TEXT NOT NULL DEFAULT '',
	description           TEXT NOT NULL,
	lat                   DOUBLE PRECISION NOT NULL,
	lng                   DOUBLE PRECISION NOT NULL,
	status                TEXT NOT NULL,
	responses             JSONB NOT NULL DEFAULT '[]',
	selected_responder_id UUID,
	response_mode         TEXT,
	severity              TEXT,
	guidance              TEXT,
	responder_lat         DOUBLE PRECISION,
	responder_lng         DOUBLE PRECISION,
	created_at            TIMESTAMPTZ NOT NULL,
	updated_at            TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS responder_presence (
	responder_id UUID PRIMARY KEY,
	lat          DOUBLE PRECISION NOT NULL,
	lng          DOUBLE PRECISION NOT NULL,
	available    BOOLEAN NOT NULL DEFAULT TRUE,
	last_seen    TIMESTAMPTZ
);
`

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, mappedPort.Port(), user, pass, db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("cannot create pool:", err)
		os.Exit(1)
	}
	if _, err := testPool.Exec(ctx, schema); err != nil {
		fmt.Println("cannot apply schema:", err)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func testLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func makeCase(t *testing.T) *domain.DistressCase {
	t.Helper()
	c, err := domain.NewDistressCase(uuid.New(), "Cookie", "hit by a scooter near the park", domain.Point{Lat: 12.97, Lng: 77.59})
	if err != nil {
		t.Fatalf("make case: %v", err)
	}
	return c
}

func TestDistressRepo_RoundTripPreservesEverything(t *testing.T) {
	repo := NewDistressRepo(testPool, testLogger())
	ctx := context.Background()

	c := makeCase(t)
	vetA := uuid.New()
	vetB := uuid.New()
	if err := c.SubmitOffer(domain.ResponderOffer{ResponderID: vetA, Mode: domain.ResponderTravels, Message: "5 min away"}); err != nil {
		t.Fatalf("offer A: %v", err)
	}
	if err := c.SubmitOffer(domain.ResponderOffer{ResponderID: vetB, Mode: domain.ReporterTravels}); err != nil {
		t.Fatalf("offer B: %v", err)
	}
	if err := c.SelectResponder(c.ReporterID, vetA, domain.ResponderTravels); err != nil {
		t.Fatalf("select: %v", err)
	}
	c.AttachAdvisory(domain.SeverityHigh, "stop the bleeding, keep warm")

	if err := repo.SaveCase(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.LoadCase(ctx, c.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.Status != c.Status {
		t.Fatalf("status mismatch: %s != %s", got.Status, c.Status)
	}
	if got.SelectedResponderID != vetA || got.ResponseMode != domain.ResponderTravels {
		t.Fatalf("selection lost: %+v", got)
	}
	if len(got.Responses) != 2 {
		t.Fatalf("offers lost: %d", len(got.Responses))
	}
	if got.Responses[0].ResponderID != vetA || got.Responses[1].ResponderID != vetB {
		t.Fatalf("offer order lost: %+v", got.Responses)
	}
	if got.Severity != domain.SeverityHigh || got.Guidance == "" {
		t.Fatalf("advisory lost: %+v", got)
	}
}

func TestDistressRepo_SaveCaseIsUpsert(t *testing.T) {
	repo := NewDistressRepo(testPool, testLogger())
	ctx := context.Background()

	c := makeCase(t)
	if err := repo.SaveCase(ctx, c); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := c.Cancel(c.ReporterID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := repo.SaveCase(ctx, c); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.LoadCase(ctx, c.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Status != domain.DistressCancelled {
		t.Fatalf("expected cancelled after upsert, got %s", got.Status)
	}
}

func TestDistressRepo_LoadCase_NotFound(t *testing.T) {
	repo := NewDistressRepo(testPool, testLogger())

	_, err := repo.LoadCase(context.Background(), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPresenceRepo_HeartbeatUpsertAndCount(t *testing.T) {
	repo := NewPresenceRepo(testPool, testLogger())
	ctx := context.Background()

	fresh := &domain.ResponderPresence{
		ResponderID: uuid.New(),
		Location:    domain.Point{Lat: 12.97, Lng: 77.59},
		Available:   true,
		LastSeen:    time.Now().UTC(),
	}
	stale := &domain.ResponderPresence{
		ResponderID: uuid.New(),
		Location:    domain.Point{Lat: 12.98, Lng: 77.60},
		Available:   true,
		LastSeen:    time.Now().UTC().Add(-5 * time.Minute),
	}
	off := &domain.ResponderPresence{
		ResponderID: uuid.New(),
		Location:    domain.Point{Lat: 12.99, Lng: 77.61},
		Available:   false,
		LastSeen:    time.Now().UTC(),
	}
	for _, rec := range []*domain.ResponderPresence{fresh, stale, off} {
		if err := repo.SavePresence(ctx, rec); err != nil {
			t.Fatalf("save presence: %v", err)
		}
	}

	cnt, err := repo.CountAvailable(ctx, 60*time.Second)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if cnt != 1 {
		t.Fatalf("expected 1 available+fresh responder, got %d", cnt)
	}

	got, err := repo.LoadPresence(ctx, fresh.ResponderID)
	if err != nil {
		t.Fatalf("load presence: %v", err)
	}
	if !got.Available || got.Location != fresh.Location {
		t.Fatalf("presence round trip failed: %+v", got)
	}
}
