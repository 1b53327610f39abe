package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teacherColumns() []string {
	return []string{"id", "first_name", "last_name", "email", "phone", "department_id", "hire_date", "department_name"}
}

func TestTeacherRepositoryList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	rows := sqlmock.NewRows(teacherColumns()).
		AddRow(1, "Petr", "Petrov", "petr@college.edu", "+79998887766", 1, time.Now(), "Software Engineering").
		AddRow(2, "Maria", "Sidorova", nil, nil, nil, nil, nil)
	mock.ExpectQuery("FROM teachers t").WillReturnRows(rows)

	teachers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	require.NotNil(t, teachers[0].DepartmentName)
	assert.Equal(t, "Software Engineering", *teachers[0].DepartmentName)
	assert.Nil(t, teachers[1].DepartmentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryFindByIDMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery("FROM teachers t").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(teacherColumns()))

	teacher, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, teacher)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectExec("INSERT INTO teachers").
		WithArgs("Petr", "Petrov", "petr@college.edu", "+79998887766", 1).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), "Petr", "Petrov", "petr@college.edu", "+79998887766", 1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectExec("UPDATE teachers").
		WithArgs("Petr", "Petrov", "petr@college.edu", "+79998887766", 2, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 3, "Petr", "Petrov", "petr@college.edu", "+79998887766", 2)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
