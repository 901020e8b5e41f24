package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ituna-edu/portal-api/internal/models"
	"github.com/ituna-edu/portal-api/pkg/config"
)

type searchStore interface {
	Students(ctx context.Context) []models.Student
	Teachers(ctx context.Context) []models.Teacher
	Articles(ctx context.Context) []models.Article
	Resources(ctx context.Context) []models.Resource
}

// SearchRequest is one global search overlay query. A query below the
// minimum length still runs when a structural filter is set.
type SearchRequest struct {
	Term            string `json:"term"`
	NewsStartDate   string `json:"news_start_date"`
	NewsEndDate     string `json:"news_end_date"`
	ResourceSubject string `json:"resource_subject"`
}

// SearchResults groups matches per collection.
type SearchResults struct {
	News      []models.Article  `json:"news"`
	Resources []models.Resource `json:"resources"`
	Teachers  []models.Teacher  `json:"teachers"`
	Students  []models.Student  `json:"students"`
}

// SearchService runs cross-collection lookups for the search overlay.
type SearchService struct {
	store  searchStore
	cfg    config.SearchConfig
	logger *zap.Logger
}

// NewSearchService constructs the search service.
func NewSearchService(st searchStore, cfg config.SearchConfig, logger *zap.Logger) *SearchService {
	if cfg.MinQueryLength <= 0 {
		cfg.MinQueryLength = 2
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 50
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{store: st, cfg: cfg, logger: logger}
}

// Query performs a linear scan across all four searchable collections.
// People (teachers, students) only match on a textual term; news and
// resources additionally honor their structural filters.
func (s *SearchService) Query(ctx context.Context, req SearchRequest) SearchResults {
	term := strings.ToLower(strings.TrimSpace(req.Term))
	hasTerm := len(term) >= s.cfg.MinQueryLength
	hasFilters := req.NewsStartDate != "" || req.NewsEndDate != "" ||
		(req.ResourceSubject != "" && req.ResourceSubject != "all")

	results := SearchResults{
		News:      []models.Article{},
		Resources: []models.Resource{},
		Teachers:  []models.Teacher{},
		Students:  []models.Student{},
	}
	if !hasTerm && !hasFilters {
		return results
	}

	startDate, hasStart := parsePortalDate(req.NewsStartDate)
	endDate, hasEnd := parsePortalDate(req.NewsEndDate)
	if hasEnd {
		endDate = endDate.AddDate(0, 0, 1)
	}

	for _, a := range s.store.Articles(ctx) {
		if hasTerm &&
			!strings.Contains(strings.ToLower(a.Title), term) &&
			!strings.Contains(strings.ToLower(a.Excerpt), term) &&
			!strings.Contains(strings.ToLower(a.Subject), term) {
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
		if len(results.News) < s.cfg.MaxResults {
			results.News = append(results.News, a)
		}
	}

	for _, r := range s.store.Resources(ctx) {
		if hasTerm &&
			!strings.Contains(strings.ToLower(r.FileName), term) &&
			!strings.Contains(strings.ToLower(r.Subject), term) &&
			!strings.Contains(strings.ToLower(r.Uploader), term) {
			continue
		}
		if req.ResourceSubject != "" && req.ResourceSubject != "all" && r.Subject != req.ResourceSubject {
			continue
		}
		if len(results.Resources) < s.cfg.MaxResults {
			results.Resources = append(results.Resources, r)
		}
	}

	if hasTerm {
		for _, t := range s.store.Teachers(ctx) {
			if strings.Contains(strings.ToLower(t.Name), term) && len(results.Teachers) < s.cfg.MaxResults {
				results.Teachers = append(results.Teachers, t)
			}
		}
		for _, st := range s.store.Students(ctx) {
			if strings.Contains(strings.ToLower(st.Name), term) && len(results.Students) < s.cfg.MaxResults {
				results.Students = append(results.Students, st)
			}
		}
	}

	return results
}
