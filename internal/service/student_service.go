package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ituna-edu/portal-api/internal/models"
	"github.com/ituna-edu/portal-api/internal/store"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
)

type studentStore interface {
	Students(ctx context.Context) []models.Student
	StudentByID(ctx context.Context, id int) (*models.Student, error)
	UpdateStudent(ctx context.Context, record models.Student) error
}

// UpdateStudentRequest carries a full replacement student record. The store
// swaps the whole entity, so every field must be supplied.
type UpdateStudentRequest struct {
	Name           string `json:"name" validate:"required"`
	Grade          int    `json:"grade" validate:"required"`
	Image          string `json:"image"`
	Bio            string `json:"bio"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	OverallGrade   int    `json:"overallGrade"`
	Attendance     int    `json:"attendance"`
	RecentActivity string `json:"recentActivity"`

	AcademicHistory     []models.AcademicTerm      `json:"academicHistory"`
	AttendanceHistory   []models.AttendanceEntry   `json:"attendanceHistory"`
	ProgressReports     []models.ProgressReport    `json:"progressReports"`
	UpcomingAssignments []models.AssignmentPreview `json:"upcomingAssignments"`
}

// StudentService handles student use-cases.
type StudentService struct {
	store     studentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(st studentStore, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: st, validator: validate, logger: logger}
}

// List returns students matching the filter plus pagination metadata.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, *models.Pagination, error) {
	students := s.store.Students(ctx)

	matched := make([]models.Student, 0, len(students))
	term := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, st := range students {
		if term != "" && !strings.Contains(strings.ToLower(st.Name), term) {
			continue
		}
		if filter.Grade > 0 && st.Grade != filter.Grade {
			continue
		}
		matched = append(matched, st)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: len(matched)}

	start := (page - 1) * size
	if start >= len(matched) {
		return []models.Student{}, pagination, nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], pagination, nil
}

// Get returns a single student by id.
func (s *StudentService) Get(ctx context.Context, id int) (*models.Student, error) {
	student, err := s.store.StudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Update replaces the student record wholesale, preserving its id and its
// position in the collection.
func (s *StudentService) Update(ctx context.Context, id int, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	if _, err := s.store.StudentByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	record := models.Student{
		ID:                  id,
		Name:                req.Name,
		Grade:               req.Grade,
		Image:               req.Image,
		Bio:                 req.Bio,
		Email:               req.Email,
		Phone:               req.Phone,
		OverallGrade:        req.OverallGrade,
		Attendance:          req.Attendance,
		RecentActivity:      req.RecentActivity,
		AcademicHistory:     req.AcademicHistory,
		AttendanceHistory:   req.AttendanceHistory,
		ProgressReports:     req.ProgressReports,
		UpcomingAssignments: req.UpcomingAssignments,
	}
	if err := s.store.UpdateStudent(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	return &record, nil
}
