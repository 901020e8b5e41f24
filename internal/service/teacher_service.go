package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/ituna-edu/portal-api/internal/models"
	"github.com/ituna-edu/portal-api/internal/store"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
)

type teacherStore interface {
	Teachers(ctx context.Context) []models.Teacher
	TeacherByID(ctx context.Context, id int) (*models.Teacher, error)
}

// TeacherService exposes the read-only teacher roster.
type TeacherService struct {
	store  teacherStore
	logger *zap.Logger
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(st teacherStore, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{store: st, logger: logger}
}

// List returns teachers, optionally filtered by a name or subject term.
func (s *TeacherService) List(ctx context.Context, search string) []models.Teacher {
	teachers := s.store.Teachers(ctx)
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return teachers
	}

	matched := make([]models.Teacher, 0, len(teachers))
	for _, t := range teachers {
		if strings.Contains(strings.ToLower(t.Name), term) {
			matched = append(matched, t)
			continue
		}
		for _, subject := range t.Subjects {
			if strings.Contains(strings.ToLower(subject), term) {
				matched = append(matched, t)
				break
			}
		}
	}
	return matched
}

// Get returns a single teacher by id.
func (s *TeacherService) Get(ctx context.Context, id int) (*models.Teacher, error) {
	teacher, err := s.store.TeacherByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	return teacher, nil
}
