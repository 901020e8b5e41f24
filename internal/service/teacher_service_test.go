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

type mockTeacherStore struct {
	teachers []models.Teacher
}

func (m *mockTeacherStore) Teachers(_ context.Context) []models.Teacher {
	return m.teachers
}

func (m *mockTeacherStore) TeacherByID(_ context.Context, id int) (*models.Teacher, error) {
	for _, t := range m.teachers {
		if t.ID == id {
			teacher := t
			return &teacher, nil
		}
	}
	return nil, store.ErrNotFound
}

func portalTeachers() []models.Teacher {
	return []models.Teacher{
		{ID: 1, Name: "Mr. Habimana", Subjects: []string{"Mathematics", "Physics"}},
		{ID: 2, Name: "Mrs. Ingabire", Subjects: []string{"Biology"}},
		{ID: 3, Name: "Ms. Keza", Subjects: []string{"English Literature"}},
	}
}

func TestTeacherListSearchByNameOrSubject(t *testing.T) {
	svc := NewTeacherService(&mockTeacherStore{teachers: portalTeachers()}, nil)

	teachers := svc.List(context.Background(), "")
	assert.Len(t, teachers, 3)

	teachers = svc.List(context.Background(), "keza")
	require.Len(t, teachers, 1)
	assert.Equal(t, 3, teachers[0].ID)

	teachers = svc.List(context.Background(), "physics")
	require.Len(t, teachers, 1)
	assert.Equal(t, 1, teachers[0].ID)

	teachers = svc.List(context.Background(), "chemistry")
	assert.Empty(t, teachers)
}

func TestTeacherGet(t *testing.T) {
	svc := NewTeacherService(&mockTeacherStore{teachers: portalTeachers()}, nil)

	teacher, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Mrs. Ingabire", teacher.Name)

	_, err = svc.Get(context.Background(), 99)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
