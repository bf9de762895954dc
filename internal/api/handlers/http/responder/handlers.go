package responder

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/google/uuid"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/internal/middleware"
	"github.com/khelan-mehta/cookie/pkg/e"
	"github.com/khelan-mehta/cookie/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PresenceService interface {
	Heartbeat(ctx context.Context, responderID uuid.UUID, point domain.Point) error
	SetAvailability(ctx context.Context, responderID uuid.UUID, available bool) error
}

type Handler struct {
	logger   *slog.Logger
	presence PresenceService
}

func NewHandler(logger *slog.Logger, presence PresenceService) *Handler {
	return &Handler{logger: logger, presence: presence}
}

// ResponderHeartbeat keeps the responder discoverable. Heartbeats are
// idempotent; retries are harmless.
func (h *Handler) ResponderHeartbeat(w http.ResponseWriter, r *http.Request) {
	var req domain.HeartbeatRequest
	if !h.bind(w, r, &req) {
		return
	}

	point, err := domain.PointFrom(req.Lat, req.Lng)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.presence.Heartbeat(r.Context(), middleware.ActorID(r.Context()), point); err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "heartbeat recorded"})
}

func (h *Handler) ResponderAvailability(w http.ResponseWriter, r *http.Request) {
	var req domain.AvailabilityRequest
	if !h.bind(w, r, &req) {
		return
	}

	if err := h.presence.SetAvailability(r.Context(), middleware.ActorID(r.Context()), req.Available); err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"available": req.Available})
}

func (h *Handler) bind(w http.ResponseWriter, r *http.Request, target any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}

	if err := validator.ValidateStruct(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrInvalidArgument):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
		h.logger.Error("presence request failed", slog.Any("error", err))
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
