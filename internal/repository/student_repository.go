package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dkenzhe/college-bot/internal/models"
)

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns all students with their group name resolved, ordered by id.
func (r *StudentRepository) List(ctx context.Context) ([]models.StudentDetail, error) {
	const query = `SELECT s.id, s.first_name, s.last_name, s.email, s.phone, s.group_id, s.enrollment_date,
        g.name AS group_name
        FROM students s
        LEFT JOIN groups g ON s.group_id = g.id
        ORDER BY s.id`
	var students []models.StudentDetail
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student by id. A missing row is not an error.
func (r *StudentRepository) FindByID(ctx context.Context, id int) (*models.StudentDetail, error) {
	const query = `SELECT s.id, s.first_name, s.last_name, s.email, s.phone, s.group_id, s.enrollment_date,
        g.name AS group_name
        FROM students s
        LEFT JOIN groups g ON s.group_id = g.id
        WHERE s.id = $1`
	var detail models.StudentDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find student %d: %w", id, err)
	}
	return &detail, nil
}

// SearchByName returns students whose first or last name matches the query.
func (r *StudentRepository) SearchByName(ctx context.Context, name string) ([]models.StudentDetail, error) {
	const query = `SELECT s.id, s.first_name, s.last_name, s.email, s.phone, s.group_id, s.enrollment_date,
        g.name AS group_name
        FROM students s
        LEFT JOIN groups g ON s.group_id = g.id
        WHERE s.first_name ILIKE $1 OR s.last_name ILIKE $1
        ORDER BY s.id`
	var students []models.StudentDetail
	if err := r.db.SelectContext(ctx, &students, query, "%"+name+"%"); err != nil {
		return nil, fmt.Errorf("search students: %w", err)
	}
	return students, nil
}

// Create inserts a student. The enrollment date defaults to the current date.
func (r *StudentRepository) Create(ctx context.Context, firstName, lastName, email, phone string, groupID int) error {
	const query = `INSERT INTO students (first_name, last_name, email, phone, group_id, enrollment_date)
        VALUES ($1, $2, $3, $4, $5, CURRENT_DATE)`
	if _, err := r.db.ExecContext(ctx, query, firstName, lastName, email, phone, groupID); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update replaces all editable fields of the student row.
func (r *StudentRepository) Update(ctx context.Context, id int, firstName, lastName, email, phone string, groupID int) error {
	const query = `UPDATE students
        SET first_name = $1, last_name = $2, email = $3, phone = $4, group_id = $5
        WHERE id = $6`
	if _, err := r.db.ExecContext(ctx, query, firstName, lastName, email, phone, groupID, id); err != nil {
		return fmt.Errorf("update student %d: %w", id, err)
	}
	return nil
}

// Delete removes the student row. Dependent rows are the store's concern.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM students WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete student %d: %w", id, err)
	}
	return nil
}
