package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkenzhe/college-bot/internal/models"
)

type mockStudentRepo struct {
	students  []models.StudentDetail
	byID      *models.StudentDetail
	listErr   error
	findErr   error
	createErr error
	updateErr error
	deleteErr error
	created   int
}

func (m *mockStudentRepo) List(ctx context.Context) ([]models.StudentDetail, error) {
	return m.students, m.listErr
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id int) (*models.StudentDetail, error) {
	return m.byID, m.findErr
}

func (m *mockStudentRepo) SearchByName(ctx context.Context, name string) ([]models.StudentDetail, error) {
	return m.students, m.listErr
}

func (m *mockStudentRepo) Create(ctx context.Context, firstName, lastName, email, phone string, groupID int) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created++
	return nil
}

func (m *mockStudentRepo) Update(ctx context.Context, id int, firstName, lastName, email, phone string, groupID int) error {
	return m.updateErr
}

func (m *mockStudentRepo) Delete(ctx context.Context, id int) error {
	return m.deleteErr
}

func TestStudentServiceCreateReportsSuccess(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := NewStudentService(repo, nil)

	ok := svc.Create(context.Background(), StudentInput{FirstName: "Ivan", LastName: "Ivanov", GroupID: 1})
	assert.True(t, ok)
	assert.Equal(t, 1, repo.created)
}

func TestStudentServiceCreateSwallowsStoreError(t *testing.T) {
	repo := &mockStudentRepo{createErr: errors.New("unique violation")}
	svc := NewStudentService(repo, nil)

	ok := svc.Create(context.Background(), StudentInput{FirstName: "Ivan", LastName: "Ivanov", GroupID: 1})
	assert.False(t, ok)
}

func TestStudentServiceListSwallowsStoreError(t *testing.T) {
	repo := &mockStudentRepo{listErr: errors.New("connection refused")}
	svc := NewStudentService(repo, nil)

	assert.Nil(t, svc.List(context.Background()))
}

func TestStudentServiceGetMissingIsNil(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := NewStudentService(repo, nil)

	assert.Nil(t, svc.Get(context.Background(), 42))
}

func TestStudentServiceDeleteSwallowsStoreError(t *testing.T) {
	repo := &mockStudentRepo{deleteErr: errors.New("foreign key violation")}
	svc := NewStudentService(repo, nil)

	assert.False(t, svc.Delete(context.Background(), 1))
}
