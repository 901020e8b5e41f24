package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ituna-edu/portal-api/internal/models"
	"github.com/ituna-edu/portal-api/internal/store"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
)

type mockArticleStore struct {
	articles []models.Article
}

func (m *mockArticleStore) Articles(_ context.Context) []models.Article {
	return m.articles
}

func (m *mockArticleStore) ArticleByID(_ context.Context, id int) (*models.Article, error) {
	for _, a := range m.articles {
		if a.ID == id {
			article := a
			return &article, nil
		}
	}
	return nil, store.ErrNotFound
}

func portalArticles() []models.Article {
	return []models.Article{
		{ID: 1, Title: "Science Fair Winners", Date: "Oct 26, 2023", Grade: "9", Subject: "Science", Excerpt: "Our students took top honors."},
		{ID: 2, Title: "Term Dates Announced", Date: "Nov 2, 2023", Grade: models.GradeAll, Subject: "General", Excerpt: "The office published next term's calendar."},
		{ID: 3, Title: "Football Finals", Date: "Oct 12, 2023", Grade: "10", Subject: "Sports", Excerpt: "A thrilling match on the main pitch."},
		{ID: 4, Title: "Library Renovation", Date: "sometime soon", Grade: models.GradeAll, Subject: "General", Excerpt: "Works start next month."},
	}
}

func TestArticleListNewestFirst(t *testing.T) {
	svc := NewArticleService(&mockArticleStore{articles: portalArticles()}, nil)

	articles := svc.List(context.Background(), models.ArticleFilter{})
	require.Len(t, articles, 4)
	assert.Equal(t, 2, articles[0].ID)
	assert.Equal(t, 1, articles[1].ID)
	assert.Equal(t, 3, articles[2].ID)
	// Unparseable dates sink to the end in their original order.
	assert.Equal(t, 4, articles[3].ID)
}

func TestArticleListGradeFilter(t *testing.T) {
	svc := NewArticleService(&mockArticleStore{articles: portalArticles()}, nil)

	articles := svc.List(context.Background(), models.ArticleFilter{Grade: "9"})
	require.Len(t, articles, 3)
	for _, a := range articles {
		assert.NotEqual(t, "10", a.Grade)
	}

	articles = svc.List(context.Background(), models.ArticleFilter{Grade: models.GradeAll})
	assert.Len(t, articles, 4)
}

func TestArticleListDateRange(t *testing.T) {
	svc := NewArticleService(&mockArticleStore{articles: portalArticles()}, nil)

	articles := svc.List(context.Background(), models.ArticleFilter{StartDate: "Oct 20, 2023", EndDate: "Oct 31, 2023"})
	require.Len(t, articles, 1)
	assert.Equal(t, 1, articles[0].ID)
}

func TestArticleListSearch(t *testing.T) {
	svc := NewArticleService(&mockArticleStore{articles: portalArticles()}, nil)

	articles := svc.List(context.Background(), models.ArticleFilter{Search: "football"})
	require.Len(t, articles, 1)
	assert.Equal(t, 3, articles[0].ID)
}

func TestArticleGetMissing(t *testing.T) {
	svc := NewArticleService(&mockArticleStore{articles: portalArticles()}, nil)

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
