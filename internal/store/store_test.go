package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(NewMemoryBackend(), zap.NewNop())
}

func TestInitializeSeedsOnce(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	s := New(backend, zap.NewNop())

	require.NoError(t, s.Initialize(ctx))
	first, err := backend.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Initialize(ctx))
	second, err := backend.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, s.Students(ctx), 2)
	assert.Len(t, s.Teachers(ctx), 4)
	assert.Len(t, s.Articles(ctx), 4)
	assert.Len(t, s.Resources(ctx), 5)
	assert.Len(t, s.Notifications(ctx), 4)
}

func TestInitializeSkipsExistingRecord(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Store(ctx, []byte(`{"students":[],"teachers":[],"articles":[],"resources":[],"notifications":[]}`)))

	s := New(backend, zap.NewNop())
	require.NoError(t, s.Initialize(ctx))

	// The pre-existing empty record must survive untouched.
	assert.Empty(t, s.Students(ctx))
}

func TestGettersOnCorruptRecord(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Store(ctx, []byte("{not json")))

	s := New(backend, zap.NewNop())

	assert.NotNil(t, s.Students(ctx))
	assert.Empty(t, s.Students(ctx))
	assert.Empty(t, s.Teachers(ctx))
	assert.Empty(t, s.Articles(ctx))
	assert.Empty(t, s.Resources(ctx))
	assert.Empty(t, s.Notifications(ctx))
}

func TestGettersOnMissingRecord(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	assert.Empty(t, s.Students(ctx))

	// Reads must not repair the backing record; seeding still happens after.
	require.NoError(t, s.Initialize(ctx))
	assert.Len(t, s.Students(ctx), 2)
}

func TestStudentByID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Initialize(ctx))

	student, err := s.StudentByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Mary Phiri", student.Name)

	_, err = s.StudentByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStudentRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Initialize(ctx))

	student, err := s.StudentByID(ctx, 2)
	require.NoError(t, err)
	student.OverallGrade = 99

	require.NoError(t, s.UpdateStudent(ctx, *student))

	students := s.Students(ctx)
	assert.Len(t, students, 2)

	updated, err := s.StudentByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, *student, *updated)
	assert.Equal(t, 99, updated.OverallGrade)

	untouched, err := s.StudentByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 78, untouched.OverallGrade)
}

func TestUpdateStudentMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Initialize(ctx))

	before := s.Students(ctx)
	student := before[0]
	student.ID = 42
	require.NoError(t, s.UpdateStudent(ctx, student))
	assert.Equal(t, before, s.Students(ctx))
}

func TestDeleteResource(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Initialize(ctx))

	require.NoError(t, s.DeleteResource(ctx, 3))

	resources := s.Resources(ctx)
	assert.Len(t, resources, 4)
	for _, r := range resources {
		assert.NotEqual(t, 3, r.ID)
	}
	// Remaining order is preserved.
	assert.Equal(t, []int{1, 2, 4, 5}, []int{resources[0].ID, resources[1].ID, resources[2].ID, resources[3].ID})

	// Second delete of the same id is a no-op.
	require.NoError(t, s.DeleteResource(ctx, 3))
	assert.Len(t, s.Resources(ctx), 4)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Initialize(ctx))

	require.NoError(t, s.MarkAllNotificationsRead(ctx))
	for _, n := range s.Notifications(ctx) {
		assert.True(t, n.Read)
	}

	// Idempotent.
	require.NoError(t, s.MarkAllNotificationsRead(ctx))
	for _, n := range s.Notifications(ctx) {
		assert.True(t, n.Read)
	}
}

func TestFileBackendPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "portal.json")

	backend, err := NewFileBackend(path)
	require.NoError(t, err)

	s := New(backend, zap.NewNop())
	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, s.DeleteResource(ctx, 1))

	reopened, err := NewFileBackend(path)
	require.NoError(t, err)
	s2 := New(reopened, zap.NewNop())
	require.NoError(t, s2.Initialize(ctx))

	// Initialize on an existing record keeps the mutated state.
	assert.Len(t, s2.Resources(ctx), 4)
}

func TestFileBackendMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.json")
	backend, err := NewFileBackend(path)
	require.NoError(t, err)

	_, err = backend.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoRecord)
}
