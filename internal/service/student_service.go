package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dkenzhe/college-bot/internal/models"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.StudentDetail, error)
	FindByID(ctx context.Context, id int) (*models.StudentDetail, error)
	SearchByName(ctx context.Context, name string) ([]models.StudentDetail, error)
	Create(ctx context.Context, firstName, lastName, email, phone string, groupID int) error
	Update(ctx context.Context, id int, firstName, lastName, email, phone string, groupID int) error
	Delete(ctx context.Context, id int) error
}

// StudentInput holds the positional fields of the add/edit student forms.
type StudentInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	GroupID   int
}

// StudentService is the flag-returning boundary over student persistence.
// Store failures are logged here and never propagate to the dispatcher.
type StudentService struct {
	repo   studentRepository
	logger *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, logger: logger}
}

// List returns all students, or nil when the store fails.
func (s *StudentService) List(ctx context.Context) []models.StudentDetail {
	students, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil
	}
	return students
}

// Get returns the student or nil when absent or on store failure.
func (s *StudentService) Get(ctx context.Context, id int) *models.StudentDetail {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("find student failed", zap.Int("id", id), zap.Error(err))
		return nil
	}
	return student
}

// Search returns students matching the name fragment.
func (s *StudentService) Search(ctx context.Context, name string) []models.StudentDetail {
	students, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		s.logger.Error("search students failed", zap.String("name", name), zap.Error(err))
		return nil
	}
	return students
}

// Create inserts a student and reports success.
func (s *StudentService) Create(ctx context.Context, in StudentInput) bool {
	if err := s.repo.Create(ctx, in.FirstName, in.LastName, in.Email, in.Phone, in.GroupID); err != nil {
		s.logger.Error("create student failed", zap.Error(err))
		return false
	}
	return true
}

// Update replaces the student row and reports success. Updating a missing id
// is a silent success: the store reports zero rows affected without error.
func (s *StudentService) Update(ctx context.Context, id int, in StudentInput) bool {
	if err := s.repo.Update(ctx, id, in.FirstName, in.LastName, in.Email, in.Phone, in.GroupID); err != nil {
		s.logger.Error("update student failed", zap.Int("id", id), zap.Error(err))
		return false
	}
	return true
}

// Delete removes the student row and reports success. The store rejects the
// statement when dependent grades exist.
func (s *StudentService) Delete(ctx context.Context, id int) bool {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete student failed", zap.Int("id", id), zap.Error(err))
		return false
	}
	return true
}
