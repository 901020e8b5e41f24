package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ituna-edu/portal-api/internal/store"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
	"github.com/ituna-edu/portal-api/pkg/export"
	"github.com/ituna-edu/portal-api/pkg/jobs"
	"github.com/ituna-edu/portal-api/pkg/storage"
)

type mockQueue struct {
	enqueued []jobs.Job
}

func (m *mockQueue) Enqueue(job jobs.Job) error {
	m.enqueued = append(m.enqueued, job)
	return nil
}

func newTestReportService(t *testing.T) (*ReportService, *mockQueue, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryBackend(), nil)
	require.NoError(t, st.Initialize(context.Background()))

	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	queue := &mockQueue{}
	svc := NewReportService(
		st,
		queue,
		export.NewPDFExporter(""),
		files,
		storage.NewSignedURLSigner("test-secret", time.Hour),
		nil,
	)
	return svc, queue, st
}

func TestReportCreateJobQueuesWork(t *testing.T) {
	svc, queue, _ := newTestReportService(t)

	job, err := svc.CreateJob(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, ReportStatusPending, job.Status)
	assert.Equal(t, 1, job.StudentID)
	require.Len(t, queue.enqueued, 1)
	assert.Equal(t, job.ID, queue.enqueued[0].ID)
	assert.Equal(t, "progress_report", queue.enqueued[0].Type)
}

func TestReportCreateJobUnknownStudent(t *testing.T) {
	svc, _, _ := newTestReportService(t)

	_, err := svc.CreateJob(context.Background(), 404, 0)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestReportCreateJobBadIndex(t *testing.T) {
	svc, _, _ := newTestReportService(t)

	_, err := svc.CreateJob(context.Background(), 1, 99)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestReportProcessRendersAndSigns(t *testing.T) {
	svc, queue, _ := newTestReportService(t)

	job, err := svc.CreateJob(context.Background(), 1, 0)
	require.NoError(t, err)

	require.NoError(t, svc.Process(context.Background(), queue.enqueued[0]))

	status, err := svc.Status(job.ID)
	require.NoError(t, err)
	assert.Equal(t, ReportStatusCompleted, status.Status)
	require.NotEmpty(t, status.DownloadURL)

	token := strings.TrimPrefix(status.DownloadURL, "/reports/download/")
	download, err := svc.ResolveDownload(token)
	require.NoError(t, err)
	defer download.File.Close()
	assert.Equal(t, status.FileName, download.FileName)
}

func TestReportStatusUnknownJob(t *testing.T) {
	svc, _, _ := newTestReportService(t)

	_, err := svc.Status("nope")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestReportResolveDownloadRejectsTamperedToken(t *testing.T) {
	svc, _, _ := newTestReportService(t)

	_, err := svc.ResolveDownload("bogus.token.value.here")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
}
