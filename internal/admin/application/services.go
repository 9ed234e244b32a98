package application

import (
	"context"
	"errors"

	admindomain "github.com/sngm3741/unikz/api/internal/admin/domain"
)

var (
	// ErrNotFound is returned for unknown ids.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a slug or code is already taken.
	ErrDuplicate = errors.New("duplicate")
)

// UniversityRepository exposes admin operations on universities.
type UniversityRepository interface {
	Find(ctx context.Context, filter UniversityFilter, paging Paging) ([]admindomain.University, error)
	FindByID(ctx context.Context, id string) (*admindomain.University, error)
	Create(ctx context.Context, university *admindomain.University) error
	Update(ctx context.Context, university *admindomain.University) error
}

// MajorRepository exposes admin operations on majors.
type MajorRepository interface {
	Find(ctx context.Context, filter MajorFilter, paging Paging) ([]admindomain.Major, error)
	Create(ctx context.Context, major *admindomain.Major) error
}

// UniversityFilter expresses admin search criteria.
type UniversityFilter struct {
	City    string
	Keyword string
}

// MajorFilter expresses admin search criteria.
type MajorFilter struct {
	Category string
	Keyword  string
}

// Paging controls pagination.
type Paging struct {
	Limit int
}

// UniversityService describes admin university use-cases.
type UniversityService interface {
	List(ctx context.Context, filter UniversityFilter, paging Paging) ([]admindomain.University, error)
	Detail(ctx context.Context, id string) (*admindomain.University, error)
	Create(ctx context.Context, cmd UpsertUniversityCommand) (*admindomain.University, error)
	Update(ctx context.Context, id string, cmd UpsertUniversityCommand) (*admindomain.University, error)
}

// MajorService describes admin major use-cases.
type MajorService interface {
	List(ctx context.Context, filter MajorFilter, paging Paging) ([]admindomain.Major, error)
	Create(ctx context.Context, cmd UpsertMajorCommand) (*admindomain.Major, error)
}

// UpsertUniversityCommand contains inputs for creating/updating universities.
type UpsertUniversityCommand = admindomain.UniversityInput

// UpsertMajorCommand contains inputs for creating majors.
type UpsertMajorCommand = admindomain.MajorInput
