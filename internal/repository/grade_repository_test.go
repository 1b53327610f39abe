package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradeColumns() []string {
	return []string{"id", "student_id", "subject_id", "grade", "exam_date", "teacher_id",
		"student_first_name", "student_last_name", "subject_name", "teacher_first_name", "teacher_last_name"}
}

func TestGradeRepositoryList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	rows := sqlmock.NewRows(gradeColumns()).
		AddRow(1, 1, 1, 5, time.Now(), 1, "Ivan", "Ivanov", "Databases", "Petr", "Petrov")
	mock.ExpectQuery("FROM grades g").WillReturnRows(rows)

	grades, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, 5, grades[0].Grade.Grade)
	assert.Equal(t, "Databases", grades[0].SubjectName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryFindByIDMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	mock.ExpectQuery("FROM grades g").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(gradeColumns()))

	grade, err := repo.FindByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, grade)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	mock.ExpectExec("INSERT INTO grades").
		WithArgs(1, 2, 5, 3).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), 1, 2, 5, 3)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryUpdateValue(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	mock.ExpectExec("UPDATE grades SET grade").
		WithArgs(4, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateValue(context.Background(), 7, 4)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	mock.ExpectExec("DELETE FROM grades").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryCreateConstraintViolation(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	mock.ExpectExec("INSERT INTO grades").
		WithArgs(1, 2, 9, 3).
		WillReturnError(assert.AnError)

	err := repo.Create(context.Background(), 1, 2, 9, 3)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
