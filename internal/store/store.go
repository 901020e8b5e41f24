package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ituna-edu/portal-api/internal/models"
)

// ErrNotFound signals a lookup miss. It is an expected outcome, not a fault;
// callers render a "not found" view rather than failing.
var ErrNotFound = errors.New("store: entity not found")

// Store is the portal's single source of truth. Every read decodes the whole
// aggregate; every mutation is read-modify-write of the whole aggregate.
// It is single-writer by design: concurrent writers may race, which is
// acceptable for a per-instance scratch store.
//
// Construct one Store per process and call Initialize once before serving.
type Store struct {
	backend Backend
	logger  *zap.Logger
	observe OperationObserver
}

// OperationObserver receives timing for each backend round trip.
type OperationObserver func(operation string, duration time.Duration)

// New constructs a Store on top of the given backend.
func New(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{backend: backend, logger: logger}
}

// WithObserver attaches a timing hook for instrumentation and returns the
// same store.
func (s *Store) WithObserver(fn OperationObserver) *Store {
	s.observe = fn
	return s
}

func (s *Store) track(operation string, start time.Time) {
	if s.observe != nil {
		s.observe(operation, time.Since(start))
	}
}

// Initialize seeds the backing record with the fixture collections on first
// use. Any existing record, regardless of content, skips seeding, so calling
// Initialize repeatedly is a no-op.
func (s *Store) Initialize(ctx context.Context) error {
	if _, err := s.backend.Load(ctx); err == nil {
		return nil
	} else if !errors.Is(err, ErrNoRecord) {
		return err
	}
	return s.save(ctx, Seed())
}

// load decodes the persisted aggregate. A missing or unparseable record
// degrades to the all-empty aggregate; repair is Initialize's job, not ours.
func (s *Store) load(ctx context.Context) models.Aggregate {
	defer s.track("load", time.Now())
	data, err := s.backend.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoRecord) {
			s.logger.Warn("failed to load portal record", zap.Error(err))
		}
		return models.EmptyAggregate()
	}

	var agg models.Aggregate
	if err := json.Unmarshal(data, &agg); err != nil {
		s.logger.Warn("failed to decode portal record", zap.Error(err))
		return models.EmptyAggregate()
	}
	agg.Normalize()
	return agg
}

func (s *Store) save(ctx context.Context, agg models.Aggregate) error {
	defer s.track("save", time.Now())
	agg.Normalize()
	data, err := json.Marshal(agg)
	if err != nil {
		return err
	}
	return s.backend.Store(ctx, data)
}

// Students returns the full ordered student collection.
func (s *Store) Students(ctx context.Context) []models.Student {
	return s.load(ctx).Students
}

// Teachers returns the full ordered teacher collection.
func (s *Store) Teachers(ctx context.Context) []models.Teacher {
	return s.load(ctx).Teachers
}

// Articles returns the full ordered article collection.
func (s *Store) Articles(ctx context.Context) []models.Article {
	return s.load(ctx).Articles
}

// Resources returns the full ordered resource collection.
func (s *Store) Resources(ctx context.Context) []models.Resource {
	return s.load(ctx).Resources
}

// Notifications returns the full ordered notification collection.
func (s *Store) Notifications(ctx context.Context) []models.Notification {
	return s.load(ctx).Notifications
}

// StudentByID finds a student by exact id. Returns ErrNotFound on a miss.
func (s *Store) StudentByID(ctx context.Context, id int) (*models.Student, error) {
	for _, st := range s.load(ctx).Students {
		if st.ID == id {
			student := st
			return &student, nil
		}
	}
	return nil, ErrNotFound
}

// TeacherByID finds a teacher by exact id. Returns ErrNotFound on a miss.
func (s *Store) TeacherByID(ctx context.Context, id int) (*models.Teacher, error) {
	for _, t := range s.load(ctx).Teachers {
		if t.ID == id {
			teacher := t
			return &teacher, nil
		}
	}
	return nil, ErrNotFound
}

// ArticleByID finds an article by exact id. Returns ErrNotFound on a miss.
func (s *Store) ArticleByID(ctx context.Context, id int) (*models.Article, error) {
	for _, a := range s.load(ctx).Articles {
		if a.ID == id {
			article := a
			return &article, nil
		}
	}
	return nil, ErrNotFound
}

// ResourceByID finds a resource by exact id. Returns ErrNotFound on a miss.
func (s *Store) ResourceByID(ctx context.Context, id int) (*models.Resource, error) {
	for _, r := range s.load(ctx).Resources {
		if r.ID == id {
			resource := r
			return &resource, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateStudent replaces the student whose id matches record.ID, preserving
// collection order. Missing ids are a no-op. The updated aggregate is
// persisted before returning.
func (s *Store) UpdateStudent(ctx context.Context, record models.Student) error {
	agg := s.load(ctx)
	for i := range agg.Students {
		if agg.Students[i].ID == record.ID {
			agg.Students[i] = record
			return s.save(ctx, agg)
		}
	}
	return nil
}

// DeleteResource removes the resource with the given id, keeping the order
// of the remainder. Missing ids are a no-op.
func (s *Store) DeleteResource(ctx context.Context, id int) error {
	agg := s.load(ctx)
	kept := agg.Resources[:0]
	removed := false
	for _, r := range agg.Resources {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return nil
	}
	agg.Resources = kept
	return s.save(ctx, agg)
}

// MarkAllNotificationsRead flags every notification as read. Idempotent.
func (s *Store) MarkAllNotificationsRead(ctx context.Context) error {
	agg := s.load(ctx)
	for i := range agg.Notifications {
		agg.Notifications[i].Read = true
	}
	return s.save(ctx, agg)
}
