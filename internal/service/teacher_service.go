package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dkenzhe/college-bot/internal/models"
)

type teacherRepository interface {
	List(ctx context.Context) ([]models.TeacherDetail, error)
	FindByID(ctx context.Context, id int) (*models.TeacherDetail, error)
	Create(ctx context.Context, firstName, lastName, email, phone string, departmentID int) error
	Update(ctx context.Context, id int, firstName, lastName, email, phone string, departmentID int) error
	Delete(ctx context.Context, id int) error
}

// TeacherInput holds the positional fields of the add/edit teacher forms.
type TeacherInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	DepartmentID int
}

// TeacherService is the flag-returning boundary over teacher persistence.
type TeacherService struct {
	repo   teacherRepository
	logger *zap.Logger
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(repo teacherRepository, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, logger: logger}
}

// List returns all teachers, or nil when the store fails.
func (s *TeacherService) List(ctx context.Context) []models.TeacherDetail {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list teachers failed", zap.Error(err))
		return nil
	}
	return teachers
}

// Get returns the teacher or nil when absent or on store failure.
func (s *TeacherService) Get(ctx context.Context, id int) *models.TeacherDetail {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("find teacher failed", zap.Int("id", id), zap.Error(err))
		return nil
	}
	return teacher
}

// Create inserts a teacher and reports success.
func (s *TeacherService) Create(ctx context.Context, in TeacherInput) bool {
	if err := s.repo.Create(ctx, in.FirstName, in.LastName, in.Email, in.Phone, in.DepartmentID); err != nil {
		s.logger.Error("create teacher failed", zap.Error(err))
		return false
	}
	return true
}

// Update replaces the teacher row and reports success.
func (s *TeacherService) Update(ctx context.Context, id int, in TeacherInput) bool {
	if err := s.repo.Update(ctx, id, in.FirstName, in.LastName, in.Email, in.Phone, in.DepartmentID); err != nil {
		s.logger.Error("update teacher failed", zap.Int("id", id), zap.Error(err))
		return false
	}
	return true
}

// Delete removes the teacher row and reports success.
func (s *TeacherService) Delete(ctx context.Context, id int) bool {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete teacher failed", zap.Int("id", id), zap.Error(err))
		return false
	}
	return true
}
