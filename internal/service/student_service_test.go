package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ituna-edu/portal-api/internal/models"
	"github.com/ituna-edu/portal-api/internal/store"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
)

type mockStudentStore struct {
	students    []models.Student
	updated     []models.Student
	updateCalls int
}

func (m *mockStudentStore) Students(_ context.Context) []models.Student {
	return m.students
}

func (m *mockStudentStore) StudentByID(_ context.Context, id int) (*models.Student, error) {
	for _, st := range m.students {
		if st.ID == id {
			student := st
			return &student, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockStudentStore) UpdateStudent(_ context.Context, record models.Student) error {
	m.updateCalls++
	m.updated = append(m.updated, record)
	return nil
}

func portalStudents() []models.Student {
	return []models.Student{
		{ID: 1, Name: "Aline Mugisha", Grade: 9, OverallGrade: 88},
		{ID: 2, Name: "Eric Niyonzima", Grade: 10, OverallGrade: 92},
		{ID: 3, Name: "Claudine Uwase", Grade: 9, OverallGrade: 75},
	}
}

func TestStudentListFiltersBySearchAndGrade(t *testing.T) {
	svc := NewStudentService(&mockStudentStore{students: portalStudents()}, nil, nil)

	students, pagination, err := svc.List(context.Background(), models.StudentFilter{Search: "niyo"})
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, 2, students[0].ID)
	assert.Equal(t, 1, pagination.TotalCount)

	students, pagination, err = svc.List(context.Background(), models.StudentFilter{Grade: 9})
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, 2, pagination.TotalCount)
}

func TestStudentListPaginates(t *testing.T) {
	svc := NewStudentService(&mockStudentStore{students: portalStudents()}, nil, nil)

	students, pagination, err := svc.List(context.Background(), models.StudentFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, 3, students[0].ID)
	assert.Equal(t, 3, pagination.TotalCount)

	students, _, err = svc.List(context.Background(), models.StudentFilter{Page: 5, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestStudentGetMissing(t *testing.T) {
	svc := NewStudentService(&mockStudentStore{students: portalStudents()}, nil, nil)

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestStudentUpdateReplacesRecord(t *testing.T) {
	repo := &mockStudentStore{students: portalStudents()}
	svc := NewStudentService(repo, nil, nil)

	updated, err := svc.Update(context.Background(), 1, UpdateStudentRequest{
		Name:         "Aline Mugisha",
		Grade:        9,
		OverallGrade: 99,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, 99, updated.OverallGrade)
	require.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, 1, repo.updated[0].ID)
}

func TestStudentUpdateValidation(t *testing.T) {
	repo := &mockStudentStore{students: portalStudents()}
	svc := NewStudentService(repo, nil, nil)

	_, err := svc.Update(context.Background(), 1, UpdateStudentRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Zero(t, repo.updateCalls)
}

func TestStudentUpdateUnknownID(t *testing.T) {
	repo := &mockStudentStore{students: portalStudents()}
	svc := NewStudentService(repo, nil, nil)

	_, err := svc.Update(context.Background(), 42, UpdateStudentRequest{Name: "Ghost", Grade: 9})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Zero(t, repo.updateCalls)
}
