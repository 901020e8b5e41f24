package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ituna-edu/portal-api/internal/models"
	"github.com/ituna-edu/portal-api/internal/store"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
)

type mockAuthStore struct {
	students []models.Student
}

func (m *mockAuthStore) StudentByID(_ context.Context, id int) (*models.Student, error) {
	for _, st := range m.students {
		if st.ID == id {
			student := st
			return &student, nil
		}
	}
	return nil, store.ErrNotFound
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService(
		&mockAuthStore{students: []models.Student{{ID: 1, Name: "Aline Mugisha", Grade: 9}}},
		nil, nil,
		AuthConfig{
			TokenSecret:  "test-secret",
			TokenExpiry:  time.Hour,
			Issuer:       "portal-api-test",
			DemoPassword: "password123",
		},
	)
	require.NoError(t, err)
	return svc
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), models.LoginRequest{StudentID: "1", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, models.CurrentUser{ID: 1, Name: "Aline Mugisha", Role: models.RoleStudent}, resp.User)
	assert.Equal(t, "#/students/1", resp.Redirect)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{StudentID: "1", Password: "letmein"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestLoginUnknownStudent(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{StudentID: "42", Password: "password123"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestLoginNonNumericStudentID(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{StudentID: "aline", Password: "password123"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestLoginMissingFields(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
}

func TestLogoutRedirect(t *testing.T) {
	svc := newTestAuthService(t)
	assert.Equal(t, "#", svc.Logout().Redirect)
}
