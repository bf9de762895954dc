package service

import (
	"context"
	"time"

	"github.com/khelan-mehta/cookie/internal/domain"
)

type statsService struct {
	cases    CaseRepository
	presence PresenceRepository
	window   time.Duration
}

func NewStatsService(cases CaseRepository, presence PresenceRepository, stalenessWindow time.Duration) StatsService {
	return &statsService{cases: cases, presence: presence, window: stalenessWindow}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.DistressStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}

	byStatus, err := s.cases.CountByStatus(ctx, minutes)
	if err != nil {
		return nil, err
	}

	active, err := s.presence.CountAvailable(ctx, s.window)
	if err != nil {
		return nil, err
	}

	return &domain.DistressStats{
		ByStatus:         byStatus,
		ActiveResponders: active,
		Minutes:          minutes,
	}, nil
}
