package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dkenzhe/college-bot/internal/models"
)

type gradeRepository interface {
	List(ctx context.Context) ([]models.GradeDetail, error)
	FindByID(ctx context.Context, id int) (*models.GradeDetail, error)
	Create(ctx context.Context, studentID, subjectID, grade, teacherID int) error
	UpdateValue(ctx context.Context, id, grade int) error
	Delete(ctx context.Context, id int) error
}

// GradeService is the flag-returning boundary over grade persistence.
type GradeService struct {
	repo   gradeRepository
	logger *zap.Logger
}

// NewGradeService constructs the grade service.
func NewGradeService(repo gradeRepository, logger *zap.Logger) *GradeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{repo: repo, logger: logger}
}

// List returns all grades, or nil when the store fails.
func (s *GradeService) List(ctx context.Context) []models.GradeDetail {
	grades, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list grades failed", zap.Error(err))
		return nil
	}
	return grades
}

// Get returns the grade or nil when absent or on store failure.
func (s *GradeService) Get(ctx context.Context, id int) *models.GradeDetail {
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("find grade failed", zap.Int("id", id), zap.Error(err))
		return nil
	}
	return grade
}

// Create inserts a grade and reports success. The store's check constraint
// backs up the dispatcher-level range validation.
func (s *GradeService) Create(ctx context.Context, studentID, subjectID, grade, teacherID int) bool {
	if err := s.repo.Create(ctx, studentID, subjectID, grade, teacherID); err != nil {
		s.logger.Error("create grade failed", zap.Error(err))
		return false
	}
	return true
}

// UpdateValue changes only the grade value and reports success.
func (s *GradeService) UpdateValue(ctx context.Context, id, grade int) bool {
	if err := s.repo.UpdateValue(ctx, id, grade); err != nil {
		s.logger.Error("update grade failed", zap.Int("id", id), zap.Error(err))
		return false
	}
	return true
}

// Delete removes the grade row and reports success.
func (s *GradeService) Delete(ctx context.Context, id int) bool {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete grade failed", zap.Int("id", id), zap.Error(err))
		return false
	}
	return true
}
