package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ituna-edu/portal-api/internal/models"
)

type mockResourceStore struct {
	resources   []models.Resource
	deleteCalls []int
}

func (m *mockResourceStore) Resources(_ context.Context) []models.Resource {
	return m.resources
}

func (m *mockResourceStore) DeleteResource(_ context.Context, id int) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return nil
}

func portalResources() []models.Resource {
	return []models.Resource{
		{ID: 1, FileName: "Algebra Basics.pdf", Subject: "Mathematics", Uploader: "Mr. Habimana", Date: "Oct 10, 2023"},
		{ID: 2, FileName: "Cell Structure Notes.pdf", Subject: "Biology", Uploader: "Mrs. Ingabire", Date: "Oct 18, 2023"},
		{ID: 3, FileName: "Essay Guidelines.pdf", Subject: "English", Uploader: "Ms. Keza", Date: "Sep 30, 2023"},
	}
}

func TestResourceListDefaultsToNewestFirst(t *testing.T) {
	svc := NewResourceService(&mockResourceStore{resources: portalResources()}, nil)

	resources := svc.List(context.Background(), models.ResourceFilter{})
	require.Len(t, resources, 3)
	assert.Equal(t, 2, resources[0].ID)
	assert.Equal(t, 1, resources[1].ID)
	assert.Equal(t, 3, resources[2].ID)
}

func TestResourceListSortsByColumn(t *testing.T) {
	svc := NewResourceService(&mockResourceStore{resources: portalResources()}, nil)

	resources := svc.List(context.Background(), models.ResourceFilter{SortBy: models.ResourceSortFileName, SortOrder: "asc"})
	require.Len(t, resources, 3)
	assert.Equal(t, "Algebra Basics.pdf", resources[0].FileName)
	assert.Equal(t, "Essay Guidelines.pdf", resources[2].FileName)

	resources = svc.List(context.Background(), models.ResourceFilter{SortBy: models.ResourceSortUploader, SortOrder: "desc"})
	require.Len(t, resources, 3)
	assert.Equal(t, "Ms. Keza", resources[0].Uploader)
}

func TestResourceListSearchAndSubjectFilter(t *testing.T) {
	svc := NewResourceService(&mockResourceStore{resources: portalResources()}, nil)

	resources := svc.List(context.Background(), models.ResourceFilter{Search: "cell"})
	require.Len(t, resources, 1)
	assert.Equal(t, 2, resources[0].ID)

	resources = svc.List(context.Background(), models.ResourceFilter{Subject: "english"})
	require.Len(t, resources, 1)
	assert.Equal(t, 3, resources[0].ID)

	resources = svc.List(context.Background(), models.ResourceFilter{Search: "nothing matches"})
	assert.Empty(t, resources)
}

func TestResourceSubjectsDistinctFirstSeen(t *testing.T) {
	items := portalResources()
	items = append(items, models.Resource{ID: 4, FileName: "Geometry.pdf", Subject: "Mathematics", Uploader: "Mr. Habimana", Date: "Oct 20, 2023"})
	svc := NewResourceService(&mockResourceStore{resources: items}, nil)

	subjects := svc.Subjects(context.Background())
	assert.Equal(t, []string{"Mathematics", "Biology", "English"}, subjects)
}

func TestResourceDelete(t *testing.T) {
	repo := &mockResourceStore{resources: portalResources()}
	svc := NewResourceService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), 2))
	assert.Equal(t, []int{2}, repo.deleteCalls)
}
