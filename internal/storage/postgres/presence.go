package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/pkg/e"
)

// PresenceRepo stores one row per responder, refreshed on every heartbeat.
// Rows are kept when a responder goes unavailable; eligibility is a query
// concern.
type PresenceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPresenceRepo(pool *pgxpool.Pool, logger *slog.Logger) *PresenceRepo {
	return &PresenceRepo{pool: pool, logger: logger}
}

func (p *PresenceRepo) SavePresence(ctx context.Context, rec *domain.ResponderPresence) error {
	const op = "postgres.Presence.SavePresence"

	if rec == nil || rec.ResponderID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidArgument)
	}

	const query = `
		INSERT INTO responder_presence (responder_id, lat, lng, available, last_seen)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (responder_id) DO UPDATE SET
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			available = EXCLUDED.available,
			last_seen = EXCLUDED.last_seen
	`

	_, err := p.pool.Exec(ctx, query,
		rec.ResponderID,
		rec.Location.Lat,
		rec.Location.Lng,
		rec.Available,
		rec.LastSeen,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.String("responder_id", rec.ResponderID.String()),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *PresenceRepo) LoadPresence(ctx context.Context, responderID uuid.UUID) (*domain.ResponderPresence, error) {
	const op = "postgres.Presence.LoadPresence"

	const query = `
		SELECT responder_id, lat, lng, available, last_seen
		FROM responder_presence
		WHERE responder_id = $1
	`

	var rec domain.ResponderPresence
	var lastSeen *time.Time
	err := p.pool.QueryRow(ctx, query, responderID).Scan(
		&rec.ResponderID,
		&rec.Location.Lat,
		&rec.Location.Lng,
		&rec.Available,
		&lastSeen,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.String("responder_id", responderID.String()),
			slog.Any("error", err),
		)
		return nil, e.WrapError(ctx, op, err)
	}
	if lastSeen != nil {
		rec.LastSeen = *lastSeen
	}
	return &rec, nil
}

func (p *PresenceRepo) CountAvailable(ctx context.Context, window time.Duration) (int64, error) {
	const op = "postgres.Presence.CountAvailable"

	if window <= 0 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidArgument)
	}

	const query = `
		SELECT COUNT(*)
		FROM responder_presence
		WHERE available = TRUE
		  AND last_seen >= NOW() - ($1 * INTERVAL '1 second')
	`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, int64(window.Seconds())).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}
