package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dkenzhe/college-bot/internal/models"
)

type referenceRepository interface {
	Groups(ctx context.Context) ([]models.Group, error)
	Departments(ctx context.Context) ([]models.Department, error)
	Subjects(ctx context.Context) ([]models.Subject, error)
}

// ReferenceService reads the entities that only seed prompts: groups,
// departments and subjects.
type ReferenceService struct {
	repo   referenceRepository
	logger *zap.Logger
}

// NewReferenceService constructs the reference service.
func NewReferenceService(repo referenceRepository, logger *zap.Logger) *ReferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceService{repo: repo, logger: logger}
}

// Groups returns all study groups, or nil on store failure.
func (s *ReferenceService) Groups(ctx context.Context) []models.Group {
	groups, err := s.repo.Groups(ctx)
	if err != nil {
		s.logger.Error("list groups failed", zap.Error(err))
		return nil
	}
	return groups
}

// Departments returns all departments, or nil on store failure.
func (s *ReferenceService) Departments(ctx context.Context) []models.Department {
	departments, err := s.repo.Departments(ctx)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil
	}
	return departments
}

// Subjects returns all subjects, or nil on store failure.
func (s *ReferenceService) Subjects(ctx context.Context) []models.Subject {
	subjects, err := s.repo.Subjects(ctx)
	if err != nil {
		s.logger.Error("list subjects failed", zap.Error(err))
		return nil
	}
	return subjects
}
