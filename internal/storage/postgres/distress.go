package postgres

import (
	"context"
	"encoding/json"
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

// DistressRepo persists cases. Terminal cases keep their row (archived,
// never deleted); ordering of the offer sequence survives the round trip
// through the responses JSONB column.
type DistressRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDistressRepo(pool *pgxpool.Pool, logger *slog.Logger) *DistressRepo {
	return &DistressRepo{pool: pool, logger: logger}
}

func (p *DistressRepo) SaveCase(ctx context.Context, c *domain.DistressCase) error {
	const op = "postgres.Distress.SaveCase"

	if c == nil || c.ID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidArgument)
	}

	responses, err := json.Marshal(c.Responses)
	if err != nil {
		return e.Wrap(op, err)
	}

	var responderLat, responderLng *float64
	if c.ResponderLocation != nil {
		responderLat = &c.ResponderLocation.Lat
		responderLng = &c.ResponderLocation.Lng
	}
	var selected *uuid.UUID
	if c.SelectedResponderID != uuid.Nil {
		selected = &c.SelectedResponderID
	}

	const query = `
		INSERT INTO distress_cases (
			id, reporter_id, pet_name, description, lat, lng, status,
			responses, selected_responder_id, response_mode,
			severity, guidance, responder_lat, responder_lng,
			created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (id) DO UPDATE SET
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			status = EXCLUDED.status,
			responses = EXCLUDED.responses,
			selected_responder_id = EXCLUDED.selected_responder_id,
			response_mode = EXCLUDED.response_mode,
			severity = EXCLUDED.severity,
			guidance = EXCLUDED.guidance,
			responder_lat = EXCLUDED.responder_lat,
			responder_lng = EXCLUDED.responder_lng,
			updated_at = EXCLUDED.updated_at
	`

	_, err = p.pool.Exec(ctx, query,
		c.ID,
		c.ReporterID,
		c.PetName,
		c.Description,
		c.Location.Lat,
		c.Location.Lng,
		c.Status,
		responses,
		selected,
		nullString(string(c.ResponseMode)),
		nullString(string(c.Severity)),
		nullString(c.Guidance),
		responderLat,
		responderLng,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.String("case_id", c.ID.String()),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *DistressRepo) LoadCase(ctx context.Context, id uuid.UUID) (*domain.DistressCase, error) {
	const op = "postgres.Distress.LoadCase"

	const query = `
		SELECT id, reporter_id, pet_name, description, lat, lng, status,
			   responses, selected_responder_id, response_mode,
			   severity, guidance, responder_lat, responder_lng,
			   created_at, updated_at
		FROM distress_cases
		WHERE id = $1
	`

	var (
		c            domain.DistressCase
		responses    []byte
		selected     *uuid.UUID
		mode         *string
		severity     *string
		guidance     *string
		responderLat *float64
		responderLng *float64
	)
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.ReporterID,
		&c.PetName,
		&c.Description,
		&c.Location.Lat,
		&c.Location.Lng,
		&c.Status,
		&responses,
		&selected,
		&mode,
		&severity,
		&guidance,
		&responderLat,
		&responderLng,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.String("case_id", id.String()),
			slog.Any("error", err),
		)
		return nil, e.WrapError(ctx, op, err)
	}

	if err := json.Unmarshal(responses, &c.Responses); err != nil {
		return nil, e.Wrap(op, err)
	}
	if c.Responses == nil {
		c.Responses = []domain.ResponderOffer{}
	}
	if selected != nil {
		c.SelectedResponderID = *selected
	}
	if mode != nil {
		c.ResponseMode = domain.ResponseMode(*mode)
	}
	if severity != nil {
		c.Severity = domain.Severity(*severity)
	}
	if guidance != nil {
		c.Guidance = *guidance
	}
	if responderLat != nil && responderLng != nil {
		c.ResponderLocation = &domain.Point{Lat: *responderLat, Lng: *responderLng}
	}
	return &c, nil
}

func (p *DistressRepo) CountByStatus(ctx context.Context, minutes int) (map[domain.DistressStatus]int64, error) {
	const op = "postgres.Distress.CountByStatus"

	if minutes <= 0 || minutes > 1440 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidArgument)
	}

	const query = `
		SELECT status, COUNT(*)
		FROM distress_cases
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
		GROUP BY status
	`

	rows, err := p.pool.Query(ctx, query, minutes)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make(map[domain.DistressStatus]int64)
	for rows.Next() {
		var status domain.DistressStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		out[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

// ListOpen returns pending/responded cases, used to rebuild the discovery
// index after a restart.
func (p *DistressRepo) ListOpen(ctx context.Context) ([]*domain.DistressCase, error) {
	const op = "postgres.Distress.ListOpen"

	const query = `
		SELECT id, lat, lng, created_at
		FROM distress_cases
		WHERE status IN ('pending', 'responded')
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var out []*domain.DistressCase
	for rows.Next() {
		var c domain.DistressCase
		var createdAt time.Time
		if err := rows.Scan(&c.ID, &c.Location.Lat, &c.Location.Lng, &createdAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		c.CreatedAt = createdAt
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
