package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dkenzhe/college-bot/internal/models"
)

// ReferenceRepository reads the entities the bot never mutates: groups,
// departments and subjects. They only feed prompts and the stats view.
type ReferenceRepository struct {
	db *sqlx.DB
}

// NewReferenceRepository constructs a ReferenceRepository.
func NewReferenceRepository(db *sqlx.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// Groups returns all study groups ordered by id.
func (r *ReferenceRepository) Groups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.SelectContext(ctx, &groups, `SELECT id, name, department_id, start_date, end_date, curator_id FROM groups ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// Departments returns all departments ordered by id.
func (r *ReferenceRepository) Departments(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	if err := r.db.SelectContext(ctx, &departments, `SELECT id, name, head_teacher_id FROM departments ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

// Subjects returns all subjects ordered by id.
func (r *ReferenceRepository) Subjects(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := r.db.SelectContext(ctx, &subjects, `SELECT id, name, department_id FROM subjects ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}
