package system

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/khelan-mehta/cookie/internal/domain"
)

type StatsProvider interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.DistressStats, error)
}

type Handler struct {
	logger *slog.Logger
	stats  StatsProvider
}

func NewHandler(logger *slog.Logger, stats StatsProvider) *Handler {
	return &Handler{logger: logger, stats: stats}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// SystemStats reports case counts per status plus active responder count for
// the requested window, default one hour.
func (h *Handler) SystemStats(w http.ResponseWriter, r *http.Request) {
	minutes := 0
	if raw := r.URL.Query().Get("minutes"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			minutes = n
		}
	}

	stats, err := h.stats.GetStats(r.Context(), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		h.logger.Error("stats query failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
