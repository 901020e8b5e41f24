package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ituna-edu/portal-api/internal/models"
	"github.com/ituna-edu/portal-api/internal/store"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
)

type articleStore interface {
	Articles(ctx context.Context) []models.Article
	ArticleByID(ctx context.Context, id int) (*models.Article, error)
}

// ArticleService exposes the news feed.
type ArticleService struct {
	store  articleStore
	logger *zap.Logger
}

// NewArticleService constructs the article service.
func NewArticleService(st articleStore, logger *zap.Logger) *ArticleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArticleService{store: st, logger: logger}
}

// List returns articles matching the filter, newest first. Date ordering is
// best-effort: articles with unparseable dates keep their seed order at the
// end of the feed.
func (s *ArticleService) List(ctx context.Context, filter models.ArticleFilter) []models.Article {
	articles := s.store.Articles(ctx)

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	startDate, hasStart := parsePortalDate(filter.StartDate)
	endDate, hasEnd := parsePortalDate(filter.EndDate)
	if hasEnd {
		// Range is inclusive of the end day.
		endDate = endDate.AddDate(0, 0, 1)
	}

	matched := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if term != "" &&
			!strings.Contains(strings.ToLower(a.Title), term) &&
			!strings.Contains(strings.ToLower(a.Excerpt), term) &&
			!strings.Contains(strings.ToLower(a.Subject), term) {
			continue
		}
		if filter.Grade != "" && filter.Grade != models.GradeAll &&
			a.Grade != filter.Grade && a.Grade != models.GradeAll {
			continue
		}
		if filter.Subject != "" && !strings.EqualFold(a.Subject, filter.Subject) {
			continue
		}
		if hasStart || hasEnd {
			published, ok := parsePortalDate(a.Date)
			if !ok {
				continue
			}
			if hasStart && published.Before(startDate) {
				continue
			}
			if hasEnd && !published.Before(endDate) {
				continue
			}
		}
		matched = append(matched, a)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		di, iok := parsePortalDate(matched[i].Date)
		dj, jok := parsePortalDate(matched[j].Date)
		if iok && jok {
			return di.After(dj)
		}
		return iok && !jok
	})
	return matched
}

// Get returns a single article by id.
func (s *ArticleService) Get(ctx context.Context, id int) (*models.Article, error) {
	article, err := s.store.ArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load article")
	}
	return article, nil
}
