package application

import (
	"context"
	"time"

	"github.com/sngm3741/unikz/api/internal/public/domain"
)

// UniversityRepository is the read port for the university catalog.
// List returns the whole catalog ordered by ranking (unranked last).
type UniversityRepository interface {
	List(ctx context.Context) ([]domain.University, error)
	FindBySlug(ctx context.Context, slug string) (*domain.University, error)
}

// MajorRepository is the read port for the major catalog.
type MajorRepository interface {
	List(ctx context.Context) ([]domain.Major, error)
	FindByID(ctx context.Context, id string) (*domain.Major, error)
}

// UserRepository upserts public profiles keyed by user id.
type UserRepository interface {
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
	FindProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// Credential is the stored login secret of one account.
type Credential struct {
	UserID       string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// CredentialRepository stores login secrets. Create returns ErrAlreadyExists
// when the email is taken.
type CredentialRepository interface {
	Create(ctx context.Context, credential Credential) error
	FindByEmail(ctx context.Context, email string) (*Credential, error)
}

// QuizResultRepository appends historical quiz results.
type QuizResultRepository interface {
	Append(ctx context.Context, result domain.QuizResult) error
}

// EntScoreRepository appends historical calculator runs.
type EntScoreRepository interface {
	Append(ctx context.Context, record domain.EntScoreRecord) error
}

// ChatRepository stores assistant conversations. History is ordered by
// creation time, oldest first.
type ChatRepository interface {
	Append(ctx context.Context, message domain.ChatMessage) error
	History(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error)
}

// CompletionRequest is what the chat use-case hands to the completion API.
type CompletionRequest struct {
	System string
	Turns  []domain.ChatMessage
}

// CompletionStreamer streams a completion, calling emit once per non-empty
// text fragment in arrival order.
type CompletionStreamer interface {
	StreamCompletion(ctx context.Context, req CompletionRequest, emit func(fragment string) error) error
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
}

// Window returns the [start,end) bounds of the page within total items.
func (p Paging) Window(total int) (int, int) {
	if p.Limit <= 0 {
		return 0, total
	}
	page := p.Page
	if page <= 0 {
		page = 1
	}
	// Compare before multiplying so huge pages cannot overflow.
	if page-1 > total/p.Limit {
		return total, total
	}
	start := (page - 1) * p.Limit
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}
