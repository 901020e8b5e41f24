package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ituna-edu/portal-api/internal/service"
)

func newTestAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	auth, err := service.NewAuthService(newSeededStore(t), nil, nil, service.AuthConfig{
		TokenSecret:  "test-secret",
		TokenExpiry:  time.Hour,
		Issuer:       "portal-api-test",
		DemoPassword: "password123",
	})
	require.NoError(t, err)
	return NewAuthHandler(auth)
}

func TestAuthHandlerLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestAuthHandler(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"student_id":"1","password":"password123"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Login(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data["access_token"])
	assert.Equal(t, "#/students/1", envelope.Data["redirect"])
}

func TestAuthHandlerLoginBadCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestAuthHandler(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"student_id":"1","password":"wrong"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlerLogout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestAuthHandler(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)

	handler.Logout(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "#", envelope.Data["redirect"])
}
