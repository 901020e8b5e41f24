package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ituna-edu/portal-api/internal/store"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
	"github.com/ituna-edu/portal-api/pkg/export"
	"github.com/ituna-edu/portal-api/pkg/jobs"
	"github.com/ituna-edu/portal-api/pkg/storage"
)

// Report job lifecycle states.
const (
	ReportStatusPending    = "pending"
	ReportStatusProcessing = "processing"
	ReportStatusCompleted  = "completed"
	ReportStatusFailed     = "failed"
)

// ReportJob tracks one progress-report export.
type ReportJob struct {
	ID          string    `json:"id"`
	StudentID   int       `json:"student_id"`
	ReportIndex int       `json:"report_index"`
	Status      string    `json:"status"`
	FileName    string    `json:"file_name,omitempty"`
	DownloadURL string    `json:"download_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
}

// ReportDownload is a resolved, verified download.
type ReportDownload struct {
	FileName string
	File     *os.File
}

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

// ReportService generates downloadable progress-report PDFs in the
// background. Jobs are tracked in process memory only: the files themselves
// are reproducible from the store, so losing job state on restart is fine.
type ReportService struct {
	store    *store.Store
	queue    jobDispatcher
	exporter *export.PDFExporter
	files    *storage.LocalStorage
	signer   *storage.SignedURLSigner
	logger   *zap.Logger

	mu   sync.Mutex
	jobs map[string]*ReportJob
}

// NewReportService constructs the report service. Attach the returned
// service's Process method to the queue as its handler.
func NewReportService(st *store.Store, queue jobDispatcher, exporter *export.PDFExporter, files *storage.LocalStorage, signer *storage.SignedURLSigner, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		store:    st,
		queue:    queue,
		exporter: exporter,
		files:    files,
		signer:   signer,
		logger:   logger,
		jobs:     make(map[string]*ReportJob),
	}
}

// CreateJob queues PDF generation for one of a student's progress reports.
func (s *ReportService) CreateJob(ctx context.Context, studentID, reportIndex int) (*ReportJob, error) {
	student, err := s.store.StudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if reportIndex < 0 || reportIndex >= len(student.ProgressReports) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "progress report not found")
	}

	job := &ReportJob{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		ReportIndex: reportIndex,
		Status:      ReportStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: "progress_report"}); err != nil {
		s.mu.Lock()
		delete(s.jobs, job.ID)
		s.mu.Unlock()
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue report")
	}

	snapshot := *job
	return &snapshot, nil
}

// Status returns the current state of a job, including a signed download
// URL once the PDF is ready.
func (s *ReportService) Status(id string) (*ReportJob, error) {
	s.mu.Lock()
	job, ok := s.jobs[id]
	if !ok {
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrNotFound, "report job not found")
	}
	snapshot := *job
	s.mu.Unlock()

	if snapshot.Status == ReportStatusCompleted && snapshot.FileName != "" {
		token, _, err := s.signer.Generate(snapshot.ID, snapshot.FileName)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download url")
		}
		snapshot.DownloadURL = fmt.Sprintf("/reports/download/%s", token)
	}
	return &snapshot, nil
}

// Process is the queue handler: it renders the PDF and stores it on disk.
func (s *ReportService) Process(ctx context.Context, job jobs.Job) error {
	s.setStatus(job.ID, ReportStatusProcessing)

	s.mu.Lock()
	tracked, ok := s.jobs[job.ID]
	var studentID, reportIndex int
	if ok {
		studentID = tracked.StudentID
		reportIndex = tracked.ReportIndex
	}
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown report job %s", job.ID)
	}

	student, err := s.store.StudentByID(ctx, studentID)
	if err != nil {
		s.setStatus(job.ID, ReportStatusFailed)
		return fmt.Errorf("load student %d: %w", studentID, err)
	}
	if reportIndex >= len(student.ProgressReports) {
		s.setStatus(job.ID, ReportStatusFailed)
		return fmt.Errorf("progress report %d gone for student %d", reportIndex, studentID)
	}

	data, err := s.exporter.RenderProgressReport(*student, student.ProgressReports[reportIndex])
	if err != nil {
		s.setStatus(job.ID, ReportStatusFailed)
		return fmt.Errorf("render report: %w", err)
	}

	fileName := fmt.Sprintf("reports/%s.pdf", job.ID)
	if _, err := s.files.Save(fileName, data); err != nil {
		s.setStatus(job.ID, ReportStatusFailed)
		return fmt.Errorf("store report: %w", err)
	}

	s.mu.Lock()
	if j, ok := s.jobs[job.ID]; ok {
		j.Status = ReportStatusCompleted
		j.FileName = fileName
		j.CompletedAt = time.Now().UTC()
	}
	s.mu.Unlock()

	s.logger.Info("progress report rendered",
		zap.String("job_id", job.ID),
		zap.Int("student_id", studentID),
	)
	return nil
}

// ResolveDownload verifies a signed token and opens the referenced file.
func (s *ReportService) ResolveDownload(token string) (*ReportDownload, error) {
	_, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "invalid or expired download link")
	}
	file, err := s.files.Open(relPath)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "report file not found")
	}
	return &ReportDownload{FileName: relPath, File: file}, nil
}

// StartCleanup periodically removes expired report files.
func (s *ReportService) StartCleanup(ctx context.Context, interval, ttl time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deleted, err := s.files.CleanupOlderThan(ttl)
				if err != nil {
					s.logger.Warn("report cleanup failed", zap.Error(err))
					continue
				}
				if len(deleted) > 0 {
					s.logger.Info("report cleanup removed files", zap.Int("count", len(deleted)))
				}
			}
		}
	}()
}

func (s *ReportService) setStatus(id, status string) {
	s.mu.Lock()
	if j, ok := s.jobs[id]; ok {
		j.Status = status
	}
	s.mu.Unlock()
}
