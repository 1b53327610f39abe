package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dkenzhe/college-bot/internal/models"
)

// TeacherRepository manages persistence for teacher records.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns all teachers with their department name resolved, ordered by id.
func (r *TeacherRepository) List(ctx context.Context) ([]models.TeacherDetail, error) {
	const query = `SELECT t.id, t.first_name, t.last_name, t.email, t.phone, t.department_id, t.hire_date,
        d.name AS department_name
        FROM teachers t
        LEFT JOIN departments d ON t.department_id = d.id
        ORDER BY t.id`
	var teachers []models.TeacherDetail
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by id. A missing row is not an error.
func (r *TeacherRepository) FindByID(ctx context.Context, id int) (*models.TeacherDetail, error) {
	const query = `SELECT t.id, t.first_name, t.last_name, t.email, t.phone, t.department_id, t.hire_date,
        d.name AS department_name
        FROM teachers t
        LEFT JOIN departments d ON t.department_id = d.id
        WHERE t.id = $1`
	var detail models.TeacherDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find teacher %d: %w", id, err)
	}
	return &detail, nil
}

// Create inserts a teacher. The hire date defaults to the current date.
func (r *TeacherRepository) Create(ctx context.Context, firstName, lastName, email, phone string, departmentID int) error {
	const query = `INSERT INTO teachers (first_name, last_name, email, phone, department_id, hire_date)
        VALUES ($1, $2, $3, $4, $5, CURRENT_DATE)`
	if _, err := r.db.ExecContext(ctx, query, firstName, lastName, email, phone, departmentID); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// Update replaces all editable fields of the teacher row.
func (r *TeacherRepository) Update(ctx context.Context, id int, firstName, lastName, email, phone string, departmentID int) error {
	const query = `UPDATE teachers
        SET first_name = $1, last_name = $2, email = $3, phone = $4, department_id = $5
        WHERE id = $6`
	if _, err := r.db.ExecContext(ctx, query, firstName, lastName, email, phone, departmentID, id); err != nil {
		return fmt.Errorf("update teacher %d: %w", id, err)
	}
	return nil
}

// Delete removes the teacher row.
func (r *TeacherRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM teachers WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete teacher %d: %w", id, err)
	}
	return nil
}
