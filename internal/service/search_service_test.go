package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ituna-edu/portal-api/internal/models"
	"github.com/ituna-edu/portal-api/pkg/config"
)

type mockSearchStore struct {
	students  []models.Student
	teachers  []models.Teacher
	articles  []models.Article
	resources []models.Resource
}

func (m *mockSearchStore) Students(_ context.Context) []models.Student   { return m.students }
func (m *mockSearchStore) Teachers(_ context.Context) []models.Teacher   { return m.teachers }
func (m *mockSearchStore) Articles(_ context.Context) []models.Article   { return m.articles }
func (m *mockSearchStore) Resources(_ context.Context) []models.Resource { return m.resources }

func newTestSearchService() *SearchService {
	repo := &mockSearchStore{
		students: []models.Student{
			{ID: 1, Name: "Aline Mugisha"},
			{ID: 2, Name: "Eric Niyonzima"},
		},
		teachers: []models.Teacher{
			{ID: 1, Name: "Mr. Habimana", Subjects: []string{"Mathematics"}},
			{ID: 2, Name: "Mrs. Ingabire", Subjects: []string{"Biology"}},
		},
		articles: []models.Article{
			{ID: 1, Title: "Math Olympiad Results", Date: "Oct 26, 2023", Subject: "Mathematics"},
			{ID: 2, Title: "Sports Day", Date: "Sep 12, 2023", Subject: "Sports"},
		},
		resources: []models.Resource{
			{ID: 1, FileName: "Math Workbook.pdf", Subject: "Mathematics", Uploader: "Mr. Habimana"},
			{ID: 2, FileName: "Lab Safety.pdf", Subject: "Biology", Uploader: "Mrs. Ingabire"},
		},
	}
	return NewSearchService(repo, config.SearchConfig{MinQueryLength: 2, MaxResults: 50}, nil)
}

func TestSearchEmptyWithoutTermOrFilters(t *testing.T) {
	svc := newTestSearchService()

	results := svc.Query(context.Background(), SearchRequest{})
	assert.Empty(t, results.News)
	assert.Empty(t, results.Resources)
	assert.Empty(t, results.Teachers)
	assert.Empty(t, results.Students)

	// Single character stays below the minimum query length.
	results = svc.Query(context.Background(), SearchRequest{Term: "m"})
	assert.Empty(t, results.News)
	assert.Empty(t, results.Teachers)
}

func TestSearchTermMatchesAcrossCollections(t *testing.T) {
	svc := newTestSearchService()

	results := svc.Query(context.Background(), SearchRequest{Term: "math"})
	require.Len(t, results.News, 1)
	assert.Equal(t, "Math Olympiad Results", results.News[0].Title)
	require.Len(t, results.Resources, 1)
	assert.Equal(t, "Math Workbook.pdf", results.Resources[0].FileName)
	// People only match on their names.
	assert.Empty(t, results.Teachers)
	assert.Empty(t, results.Students)

	results = svc.Query(context.Background(), SearchRequest{Term: "ingabire"})
	require.Len(t, results.Teachers, 1)
	assert.Equal(t, "Mrs. Ingabire", results.Teachers[0].Name)

	results = svc.Query(context.Background(), SearchRequest{Term: "aline"})
	require.Len(t, results.Students, 1)
	assert.Equal(t, 1, results.Students[0].ID)
}

func TestSearchFiltersAloneMatchNewsAndResources(t *testing.T) {
	svc := newTestSearchService()

	results := svc.Query(context.Background(), SearchRequest{ResourceSubject: "Biology"})
	require.Len(t, results.Resources, 1)
	assert.Equal(t, "Lab Safety.pdf", results.Resources[0].FileName)
	// People never match on structural filters.
	assert.Empty(t, results.Teachers)
	assert.Empty(t, results.Students)
	// No news filter set, so the full feed qualifies.
	assert.Len(t, results.News, 2)
}

func TestSearchNewsDateRange(t *testing.T) {
	svc := newTestSearchService()

	results := svc.Query(context.Background(), SearchRequest{NewsStartDate: "Oct 1, 2023"})
	require.Len(t, results.News, 1)
	assert.Equal(t, 1, results.News[0].ID)
}

func TestSearchCapsResults(t *testing.T) {
	repo := &mockSearchStore{}
	for i := 1; i <= 10; i++ {
		repo.teachers = append(repo.teachers, models.Teacher{ID: i, Name: "Teacher"})
	}
	svc := NewSearchService(repo, config.SearchConfig{MinQueryLength: 2, MaxResults: 3}, nil)

	results := svc.Query(context.Background(), SearchRequest{Term: "teacher"})
	assert.Len(t, results.Teachers, 3)
}
