package application

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/unikz/api/internal/public/domain"
)

func catalogFixture() (*fakeUniversities, *fakeMajors) {
	universities := &fakeUniversities{items: []domain.University{
		{ID: "1", Slug: "kaznu", Name: "KazNU", City: "almaty", CityRu: "Алматы", Ranking: intPtr(2), HasHostel: true},
		{ID: "2", Slug: "kimep", Name: "KIMEP", City: "almaty", CityRu: "Алматы"},
		{ID: "3", Slug: "nu", Name: "Nazarbayev University", City: "astana", CityRu: "Астана", Ranking: intPtr(1), HasHostel: true},
	}}
	majors := &fakeMajors{items: []domain.Major{
		{ID: "m1", Code: "6B06101", Name: "Computer Science", Category: domain.CategoryIT, RiasecTypes: []domain.RiasecType{domain.Investigative}},
		{ID: "m2", Code: "6B10101", Name: "General Medicine", Category: domain.CategoryMedicine, RiasecTypes: []domain.RiasecType{domain.Social}},
	}}
	return universities, majors
}

func TestPagingWindow(t *testing.T) {
	tests := []struct {
		name       string
		paging     Paging
		total      int
		start, end int
	}{
		{"no limit", Paging{}, 7, 0, 7},
		{"first page", Paging{Page: 1, Limit: 3}, 7, 0, 3},
		{"zero page is first", Paging{Page: 0, Limit: 3}, 7, 0, 3},
		{"last partial page", Paging{Page: 3, Limit: 3}, 7, 6, 7},
		{"past end", Paging{Page: 5, Limit: 3}, 7, 7, 7},
		{"huge page", Paging{Page: 1 << 62, Limit: 20}, 3, 3, 3},
		{"max int page", Paging{Page: math.MaxInt, Limit: 100}, 250, 250, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.paging.Window(tt.total)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestCatalogQueryService_ListUniversities(t *testing.T) {
	universities, majors := catalogFixture()
	svc := NewCatalogQueryService(universities, majors)

	page, err := svc.ListUniversities(context.Background(), domain.UniversityFilter{HasHostel: true}, Paging{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.Page)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "nu", page.Items[0].Slug)
	assert.Equal(t, "kaznu", page.Items[1].Slug)

	page, err = svc.ListUniversities(context.Background(), domain.UniversityFilter{}, Paging{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "kimep", page.Items[0].Slug)
}

func TestCatalogQueryService_ListUniversitiesError(t *testing.T) {
	_, majors := catalogFixture()
	svc := NewCatalogQueryService(&fakeUniversities{err: errBoom}, majors)

	_, err := svc.ListUniversities(context.Background(), domain.UniversityFilter{}, Paging{})
	assert.ErrorIs(t, err, errBoom)
}

func TestCatalogQueryService_UniversityBySlug(t *testing.T) {
	universities, majors := catalogFixture()
	svc := NewCatalogQueryService(universities, majors)

	u, err := svc.UniversityBySlug(context.Background(), " nu ")
	require.NoError(t, err)
	assert.Equal(t, "Nazarbayev University", u.Name)

	_, err = svc.UniversityBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UniversityBySlug(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogQueryService_Cities(t *testing.T) {
	universities, majors := catalogFixture()
	svc := NewCatalogQueryService(universities, majors)

	cities, err := svc.Cities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []City{
		{Code: "astana", NameRu: "Астана", Count: 1},
		{Code: "almaty", NameRu: "Алматы", Count: 2},
	}, cities)
}

func TestCatalogQueryService_Majors(t *testing.T) {
	universities, majors := catalogFixture()
	svc := NewCatalogQueryService(universities, majors)

	list, err := svc.ListMajors(context.Background(), domain.MajorFilter{Category: domain.CategoryIT})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "m1", list[0].ID)

	list, err = svc.ListMajors(context.Background(), domain.MajorFilter{Query: "6b10"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "m2", list[0].ID)

	m, err := svc.MajorByID(context.Background(), "m2")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryMedicine, m.Category)

	_, err = svc.MajorByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}
