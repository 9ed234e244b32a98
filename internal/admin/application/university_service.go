package application

import (
	"context"
	"strings"

	admindomain "github.com/sngm3741/unikz/api/internal/admin/domain"
)

// universityService implements UniversityService.
type universityService struct {
	repo UniversityRepository
}

func NewUniversityService(repo UniversityRepository) UniversityService {
	return &universityService{repo: repo}
}

func (s *universityService) List(ctx context.Context, filter UniversityFilter, paging Paging) ([]admindomain.University, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *universityService) Detail(ctx context.Context, id string) (*admindomain.University, error) {
	return s.repo.FindByID(ctx, strings.TrimSpace(id))
}

func (s *universityService) Create(ctx context.Context, cmd UpsertUniversityCommand) (*admindomain.University, error) {
	university, err := admindomain.NewUniversity(cmd)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &university); err != nil {
		return nil, err
	}
	return &university, nil
}

func (s *universityService) Update(ctx context.Context, id string, cmd UpsertUniversityCommand) (*admindomain.University, error) {
	existing, err := s.repo.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	university, err := admindomain.NewUniversity(cmd)
	if err != nil {
		return nil, err
	}
	university.ID = existing.ID
	university.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, &university); err != nil {
		return nil, err
	}
	return &university, nil
}
