package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dkenzhe/college-bot/internal/models"
)

type statsRepository interface {
	Collect(ctx context.Context) (*models.Stats, error)
}

// StatsService produces the record-count snapshot behind the stats view.
type StatsService struct {
	repo   statsRepository
	logger *zap.Logger
}

// NewStatsService constructs the stats service.
func NewStatsService(repo statsRepository, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{repo: repo, logger: logger}
}

// Collect returns current record counts, or nil on store failure.
func (s *StatsService) Collect(ctx context.Context) *models.Stats {
	stats, err := s.repo.Collect(ctx)
	if err != nil {
		s.logger.Error("collect stats failed", zap.Error(err))
		return nil
	}
	return stats
}
