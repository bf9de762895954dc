package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/khelan-mehta/cookie/internal/config"
)

func newFailingScorer(t *testing.T, attempts *atomic.Int32) *HTTPScorer {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	s := NewHTTPScorer(slog.New(slog.NewTextHandler(io.Discard, nil)), config.AdvisoryConfig{URL: srv.URL})
	s.backoff = 50 * time.Millisecond
	return s
}

func TestHTTPScorer_NoDelayAfterFinalAttempt(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	s := newFailingScorer(t, &attempts)

	start := time.Now()
	_, _, err := s.Score(context.Background(), "Rio", "refusing food since morning")
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected an error from a failing scorer")
	}
	if got := attempts.Load(); got != 3 {
		t.Fatalf("attempts = %d, want 3", got)
	}
	// Backoff runs between attempts only, 50ms + 100ms. A trailing wait
	// after the last attempt would add another 150ms.
	if elapsed > 400*time.Millisecond {
		t.Fatalf("Score took %v, retries should return without a trailing wait", elapsed)
	}
}

func TestHTTPScorer_ContextCanceledDuringBackoff(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	s := newFailingScorer(t, &attempts)
	s.backoff = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := s.Score(ctx, "Rio", "refusing food since morning")

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 800*time.Millisecond {
		t.Fatalf("Score took %v, backoff should observe cancellation", elapsed)
	}
	if got := attempts.Load(); got != 1 {
		t.Fatalf("attempts = %d, want 1", got)
	}
}
