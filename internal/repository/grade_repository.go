package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dkenzhe/college-bot/internal/models"
)

// GradeRepository manages persistence for grade records.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository constructs a GradeRepository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// List returns all grades with student, subject and teacher names resolved,
// ordered by id.
func (r *GradeRepository) List(ctx context.Context) ([]models.GradeDetail, error) {
	const query = `SELECT g.id, g.student_id, g.subject_id, g.grade, g.exam_date, g.teacher_id,
        s.first_name AS student_first_name, s.last_name AS student_last_name,
        sub.name AS subject_name,
        t.first_name AS teacher_first_name, t.last_name AS teacher_last_name
        FROM grades g
        JOIN students s ON g.student_id = s.id
        JOIN subjects sub ON g.subject_id = sub.id
        JOIN teachers t ON g.teacher_id = t.id
        ORDER BY g.id`
	var grades []models.GradeDetail
	if err := r.db.SelectContext(ctx, &grades, query); err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	return grades, nil
}

// FindByID fetches a grade by id. A missing row is not an error.
func (r *GradeRepository) FindByID(ctx context.Context, id int) (*models.GradeDetail, error) {
	const query = `SELECT g.id, g.student_id, g.subject_id, g.grade, g.exam_date, g.teacher_id,
        s.first_name AS student_first_name, s.last_name AS student_last_name,
        sub.name AS subject_name,
        t.first_name AS teacher_first_name, t.last_name AS teacher_last_name
        FROM grades g
        JOIN students s ON g.student_id = s.id
        JOIN subjects sub ON g.subject_id = sub.id
        JOIN teachers t ON g.teacher_id = t.id
        WHERE g.id = $1`
	var detail models.GradeDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find grade %d: %w", id, err)
	}
	return &detail, nil
}

// Create inserts a grade. The exam date defaults to the current date.
func (r *GradeRepository) Create(ctx context.Context, studentID, subjectID, grade, teacherID int) error {
	const query = `INSERT INTO grades (student_id, subject_id, grade, teacher_id, exam_date)
        VALUES ($1, $2, $3, $4, CURRENT_DATE)`
	if _, err := r.db.ExecContext(ctx, query, studentID, subjectID, grade, teacherID); err != nil {
		return fmt.Errorf("create grade: %w", err)
	}
	return nil
}

// UpdateValue changes only the grade value of the row.
func (r *GradeRepository) UpdateValue(ctx context.Context, id, grade int) error {
	const query = `UPDATE grades SET grade = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, grade, id); err != nil {
		return fmt.Errorf("update grade %d: %w", id, err)
	}
	return nil
}

// Delete removes the grade row.
func (r *GradeRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM grades WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete grade %d: %w", id, err)
	}
	return nil
}
