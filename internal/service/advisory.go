package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/khelan-mehta/cookie/internal/config"
	"github.com/khelan-mehta/cookie/internal/domain"
)

// AdvisoryScorer is the opaque external AI. It may answer late or never;
// the case is fully functional without its output.
type AdvisoryScorer interface {
	Score(ctx context.Context, petName, description string) (domain.Severity, string, error)
}

type advisoryRequest struct {
	PetName     string `json:"pet_name,omitempty"`
	Description string `json:"description"`
}

type advisoryResponse struct {
	Severity domain.Severity `json:"severity"`
	Guidance string          `json:"guidance"`
}

type HTTPScorer struct {
	logger  *slog.Logger
	cfg     config.AdvisoryConfig
	http    *http.Client
	backoff time.Duration
}

func NewHTTPScorer(logger *slog.Logger, cfg config.AdvisoryConfig) *HTTPScorer {
	return &HTTPScorer{
		logger:  logger,
		cfg:     cfg,
		http:    &http.Client{Timeout: 10 * time.Second},
		backoff: time.Second,
	}
}

func (s *HTTPScorer) Score(ctx context.Context, petName, description string) (domain.Severity, string, error) {
	const maxRetries = 3

	body, err := json.Marshal(advisoryRequest{PetName: petName, Description: description})
	if err != nil {
		return "", "", err
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return "", "", ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			return "", "", err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			var out advisoryResponse
			decErr := json.NewDecoder(resp.Body).Decode(&out)
			_ = resp.Body.Close()
			if decErr != nil {
				return "", "", decErr
			}
			return out.Severity, out.Guidance, nil
		}

		reason := "unknown"
		if err != nil {
			lastErr = err
			reason = err.Error()
		} else if resp != nil {
			lastErr = fmt.Errorf("scorer returned %s", resp.Status)
			reason = resp.Status
			_ = resp.Body.Close()
		}

		s.logger.Warn("advisory scorer attempt failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		if attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return "", "", ctx.Err()
		case <-time.After(time.Duration(attempt) * s.backoff):
		}
	}
	return "", "", lastErr
}
