package distress

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/internal/livesync"
	"github.com/khelan-mehta/cookie/internal/middleware"
	"github.com/khelan-mehta/cookie/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type CaseService interface {
	Create(ctx context.Context, reporterID uuid.UUID, req domain.CreateDistressRequest) (*domain.DistressCase, error)
	SubmitOffer(ctx context.Context, caseID, responderID uuid.UUID, req domain.SubmitOfferRequest) error
	SelectResponder(ctx context.Context, caseID, actorID uuid.UUID, req domain.SelectResponderRequest) error
	DeclineOffer(ctx context.Context, caseID, actorID, responderID uuid.UUID) error
	UpdateLocation(ctx context.Context, caseID, actorID uuid.UUID, point domain.Point) error
	Resolve(ctx context.Context, caseID, actorID uuid.UUID) error
	Cancel(ctx context.Context, caseID, actorID uuid.UUID) error
}

type CasePoller interface {
	Poll(ctx context.Context, caseID uuid.UUID, sinceToken string) (livesync.Snapshot, error)
}

type CaseFinder interface {
	FindNearbyCases(ctx context.Context, location domain.Point) ([]domain.NearbyCase, error)
}

type Handler struct {
	logger  *slog.Logger
	service CaseService
	poller  CasePoller
	finder  CaseFinder
}

func NewHandler(logger *slog.Logger, service CaseService, poller CasePoller, finder CaseFinder) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		poller:  poller,
		finder:  finder,
	}
}

func (h *Handler) DistressCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDistressRequest
	if !h.bind(w, r, &req) {
		return
	}

	c, err := h.service.Create(r.Context(), middleware.ActorID(r.Context()), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, presentCase(c))
}

// DistressGet serves the pull strategy: the full snapshot plus a change
// token. A client passing its previous token via updated_since learns in one
// cheap field whether it needs to re-render.
func (h *Handler) DistressGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caseID(w, r)
	if !ok {
		return
	}

	snap, err := h.poller.Poll(r.Context(), id, r.URL.Query().Get("updated_since"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, snapshotResponse{
		Case:    presentCase(snap.Case),
		Token:   snap.Token,
		Changed: snap.Changed,
	})
}

func (h *Handler) DistressNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng query params are required"})
		return
	}

	cases, err := h.finder.FindNearbyCases(r.Context(), domain.Point{Lat: lat, Lng: lng})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]nearbyCaseResponse, 0, len(cases))
	for _, nc := range cases {
		out = append(out, nearbyCaseResponse{
			Case:       presentCase(nc.Case),
			DistanceKM: nc.DistanceKM,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) OfferSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caseID(w, r)
	if !ok {
		return
	}
	if !h.requireRole(w, r, middleware.RoleResponder) {
		return
	}

	var req domain.SubmitOfferRequest
	if !h.bind(w, r, &req) {
		return
	}

	if err := h.service.SubmitOffer(r.Context(), id, middleware.ActorID(r.Context()), req); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "offer recorded"})
}

func (h *Handler) ResponderSelect(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caseID(w, r)
	if !ok {
		return
	}

	var req domain.SelectResponderRequest
	if !h.bind(w, r, &req) {
		return
	}

	if err := h.service.SelectResponder(r.Context(), id, middleware.ActorID(r.Context()), req); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "responder selected"})
}

func (h *Handler) OfferDecline(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caseID(w, r)
	if !ok {
		return
	}

	var req domain.DeclineOfferRequest
	if !h.bind(w, r, &req) {
		return
	}

	if err := h.service.DeclineOffer(r.Context(), id, middleware.ActorID(r.Context()), req.ResponderID); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "offer declined"})
}

func (h *Handler) LocationUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caseID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateLocationRequest
	if !h.bind(w, r, &req) {
		return
	}

	point, err := domain.PointFrom(req.Lat, req.Lng)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.service.UpdateLocation(r.Context(), id, middleware.ActorID(r.Context()), point); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "location updated"})
}

func (h *Handler) DistressResolve(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Resolve(r.Context(), id, middleware.ActorID(r.Context())); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "resolved"})
}

func (h *Handler) DistressCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Cancel(r.Context(), id, middleware.ActorID(r.Context())); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (h *Handler) caseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "case id must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) requireRole(w http.ResponseWriter, r *http.Request, role string) bool {
	if middleware.ActorRole(r.Context()) != role {
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "route requires role " + role})
		return false
	}
	return true
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
