package responder_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/khelan-mehta/cookie/internal/api/handlers/http/responder"
	mock_responder "github.com/khelan-mehta/cookie/internal/api/handlers/http/responder/mocks"
	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/internal/middleware"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newRequest(body string, actorID uuid.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(middleware.WithActor(req.Context(), actorID, middleware.RoleResponder))
}

func TestResponderHeartbeat_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_responder.NewMockPresenceService(ctrl)
	h := responder.NewHandler(newTestLogger(), svc)

	vet := uuid.New()
	svc.EXPECT().
		Heartbeat(gomock.Any(), vet, domain.Point{Lat: 12.97, Lng: 77.59}).
		Return(nil).
		Times(1)

	rr := httptest.NewRecorder()
	h.ResponderHeartbeat(rr, newRequest(`{"lat":12.97,"lng":77.59}`, vet))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestResponderHeartbeat_LngOutOfRange_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_responder.NewMockPresenceService(ctrl)
	h := responder.NewHandler(newTestLogger(), svc)

	rr := httptest.NewRecorder()
	h.ResponderHeartbeat(rr, newRequest(`{"lat":12.97,"lng":200.0}`, uuid.New()))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestResponderHeartbeat_MissingCoords_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_responder.NewMockPresenceService(ctrl)
	h := responder.NewHandler(newTestLogger(), svc)

	rr := httptest.NewRecorder()
	h.ResponderHeartbeat(rr, newRequest(`{"lat":12.97}`, uuid.New()))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestResponderAvailability_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_responder.NewMockPresenceService(ctrl)
	h := responder.NewHandler(newTestLogger(), svc)

	vet := uuid.New()
	svc.EXPECT().
		SetAvailability(gomock.Any(), vet, false).
		Return(nil).
		Times(1)

	rr := httptest.NewRecorder()
	h.ResponderAvailability(rr, newRequest(`{"available":false}`, vet))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}
