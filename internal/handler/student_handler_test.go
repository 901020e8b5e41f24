package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ituna-edu/portal-api/internal/middleware"
	"github.com/ituna-edu/portal-api/internal/models"
	"github.com/ituna-edu/portal-api/internal/service"
	"github.com/ituna-edu/portal-api/internal/store"
)

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(store.NewMemoryBackend(), nil)
	require.NoError(t, st.Initialize(context.Background()))
	return st
}

func TestStudentHandlerGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewStudentHandler(service.NewStudentService(newSeededStore(t), nil, nil))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Get(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.EqualValues(t, 1, envelope.Data["id"])
	assert.NotEmpty(t, envelope.Data["name"])
}

func TestStudentHandlerGetUnknown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewStudentHandler(service.NewStudentService(newSeededStore(t), nil, nil))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentHandlerUpdateRequiresMatchingIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewStudentHandler(service.NewStudentService(newSeededStore(t), nil, nil))

	body := `{"name":"Impostor","grade":9}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPut, "/students/1", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: 2, Role: models.RoleStudent})

	handler.Update(c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestStudentHandlerUpdateOwnRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := newSeededStore(t)
	handler := NewStudentHandler(service.NewStudentService(st, nil, nil))

	body := `{"name":"Updated Name","grade":9,"overallGrade":95}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPut, "/students/1", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: 1, Role: models.RoleStudent})

	handler.Update(c)

	require.Equal(t, http.StatusOK, rec.Code)
	student, err := st.StudentByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", student.Name)
	assert.Equal(t, 95, student.OverallGrade)
}

func TestStudentHandlerUpdateWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewStudentHandler(service.NewStudentService(newSeededStore(t), nil, nil))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPut, "/students/1", strings.NewReader(`{"name":"X","grade":9}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Update(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
