package application

import (
	"context"

	admindomain "github.com/sngm3741/unikz/api/internal/admin/domain"
)

// majorService implements MajorService.
type majorService struct {
	repo MajorRepository
}

func NewMajorService(repo MajorRepository) MajorService {
	return &majorService{repo: repo}
}

func (s *majorService) List(ctx context.Context, filter MajorFilter, paging Paging) ([]admindomain.Major, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *majorService) Create(ctx context.Context, cmd UpsertMajorCommand) (*admindomain.Major, error) {
	major, err := admindomain.NewMajor(cmd)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &major); err != nil {
		return nil, err
	}
	return &major, nil
}
