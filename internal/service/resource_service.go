package service

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ituna-edu/portal-api/internal/models"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
)

type resourceStore interface {
	Resources(ctx context.Context) []models.Resource
	DeleteResource(ctx context.Context, id int) error
}

// ResourceService exposes the shared learning resource library.
type ResourceService struct {
	store  resourceStore
	logger *zap.Logger
}

// NewResourceService constructs the resource service.
func NewResourceService(st resourceStore, logger *zap.Logger) *ResourceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceService{store: st, logger: logger}
}

// List returns resources matching the filter, ordered by the requested
// column. The default ordering is date descending, newest uploads first.
func (s *ResourceService) List(ctx context.Context, filter models.ResourceFilter) []models.Resource {
	resources := s.store.Resources(ctx)

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if term != "" &&
			!strings.Contains(strings.ToLower(r.FileName), term) &&
			!strings.Contains(strings.ToLower(r.Subject), term) &&
			!strings.Contains(strings.ToLower(r.Uploader), term) {
			continue
		}
		if filter.Subject != "" && !strings.EqualFold(r.Subject, filter.Subject) {
			continue
		}
		matched = append(matched, r)
	}

	sortResources(matched, filter.SortBy, filter.SortOrder)
	return matched
}

// Subjects returns the distinct subject tags currently in the library, in
// first-seen order. Used to populate filter dropdowns.
func (s *ResourceService) Subjects(ctx context.Context) []string {
	seen := make(map[string]struct{})
	subjects := make([]string, 0)
	for _, r := range s.store.Resources(ctx) {
		if _, ok := seen[r.Subject]; ok {
			continue
		}
		seen[r.Subject] = struct{}{}
		subjects = append(subjects, r.Subject)
	}
	return subjects
}

// Delete removes a resource by id. Deleting an unknown id is a no-op, so the
// operation is idempotent.
func (s *ResourceService) Delete(ctx context.Context, id int) error {
	if err := s.store.DeleteResource(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete resource")
	}
	return nil
}

func sortResources(resources []models.Resource, sortBy, sortOrder string) {
	if sortBy == "" {
		sortBy = models.ResourceSortDate
	}
	descending := sortOrder == "desc" || (sortOrder == "" && sortBy == models.ResourceSortDate)

	less := func(a, b models.Resource) bool {
		switch sortBy {
		case models.ResourceSortFileName:
			return strings.ToLower(a.FileName) < strings.ToLower(b.FileName)
		case models.ResourceSortSubject:
			return strings.ToLower(a.Subject) < strings.ToLower(b.Subject)
		case models.ResourceSortUploader:
			return strings.ToLower(a.Uploader) < strings.ToLower(b.Uploader)
		default:
			da, aok := parsePortalDate(a.Date)
			db, bok := parsePortalDate(b.Date)
			if aok && bok {
				return da.Before(db)
			}
			return !aok && bok
		}
	}

	sort.SliceStable(resources, func(i, j int) bool {
		if descending {
			return less(resources[j], resources[i])
		}
		return less(resources[i], resources[j])
	})
}
