package distress

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/pkg/e"
)

type snapshotResponse struct {
	Case    *domain.DistressCase `json:"case"`
	Token   string               `json:"token"`
	Changed bool                 `json:"changed"`
}

type nearbyCaseResponse struct {
	Case       *domain.DistressCase `json:"case"`
	DistanceKM float64              `json:"distance_km"`
}

// presentCase is the identity for now: the domain struct already carries
// client-facing json tags. A seam for when the wire shape diverges.
func presentCase(c *domain.DistressCase) *domain.DistressCase {
	return c
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, e.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, e.ErrInvalidState):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		h.log(r).Error("request failed", slog.Any("error", err))
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
