package application

import (
	"context"
	"strings"

	"github.com/sngm3741/unikz/api/internal/public/domain"
)

// UniversityPage is one page of the filtered catalog.
type UniversityPage struct {
	Items []domain.University
	Page  int
	Limit int
	Total int
}

// City is one distinct city present in the catalog.
type City struct {
	Code   string
	NameRu string
	Count  int
}

// CatalogQueryService describes catalog read use-cases.
type CatalogQueryService interface {
	ListUniversities(ctx context.Context, filter domain.UniversityFilter, paging Paging) (UniversityPage, error)
	UniversityBySlug(ctx context.Context, slug string) (*domain.University, error)
	Cities(ctx context.Context) ([]City, error)
	ListMajors(ctx context.Context, filter domain.MajorFilter) ([]domain.Major, error)
	MajorByID(ctx context.Context, id string) (*domain.Major, error)
}

type catalogQueryService struct {
	universities UniversityRepository
	majors       MajorRepository
}

// NewCatalogQueryService creates a new catalog query service.
func NewCatalogQueryService(universities UniversityRepository, majors MajorRepository) CatalogQueryService {
	return &catalogQueryService{universities: universities, majors: majors}
}

func (s *catalogQueryService) ListUniversities(ctx context.Context, filter domain.UniversityFilter, paging Paging) (UniversityPage, error) {
	all, err := s.universities.List(ctx)
	if err != nil {
		return UniversityPage{}, err
	}

	matched := domain.FilterUniversities(all, filter)
	start, end := paging.Window(len(matched))

	page := paging.Page
	if page <= 0 {
		page = 1
	}
	return UniversityPage{
		Items: matched[start:end],
		Page:  page,
		Limit: paging.Limit,
		Total: len(matched),
	}, nil
}

func (s *catalogQueryService) UniversityBySlug(ctx context.Context, slug string) (*domain.University, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrNotFound
	}
	return s.universities.FindBySlug(ctx, slug)
}

func (s *catalogQueryService) Cities(ctx context.Context) ([]City, error) {
	all, err := s.universities.List(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	cities := make([]City, 0)
	for _, u := range all {
		code := strings.ToLower(strings.TrimSpace(u.City))
		if code == "" {
			continue
		}
		if i, ok := index[code]; ok {
			cities[i].Count++
			continue
		}
		index[code] = len(cities)
		cities = append(cities, City{Code: code, NameRu: u.CityRu, Count: 1})
	}
	return cities, nil
}

func (s *catalogQueryService) ListMajors(ctx context.Context, filter domain.MajorFilter) ([]domain.Major, error) {
	all, err := s.majors.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterMajors(all, filter), nil
}

func (s *catalogQueryService) MajorByID(ctx context.Context, id string) (*domain.Major, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}
	return s.majors.FindByID(ctx, id)
}
