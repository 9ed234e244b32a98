package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sngm3741/unikz/api/internal/public/domain"
)

var errBoom = errors.New("boom")

func intPtr(v int) *int { return &v }

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

type fakeUniversities struct {
	items []domain.University
	err   error
	calls int
}

func (f *fakeUniversities) List(context.Context) ([]domain.University, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := append([]domain.University(nil), f.items...)
	domain.SortByRanking(out)
	return out, nil
}

func (f *fakeUniversities) FindBySlug(_ context.Context, slug string) (*domain.University, error) {
	for _, u := range f.items {
		if u.Slug == slug {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

type fakeMajors struct {
	items []domain.Major
	err   error
}

func (f *fakeMajors) List(context.Context) ([]domain.Major, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Major(nil), f.items...), nil
}

func (f *fakeMajors) FindByID(_ context.Context, id string) (*domain.Major, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.items {
		if m.ID == id {
			found := m
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

type fakeUsers struct {
	mu       sync.Mutex
	profiles map[string]domain.UserProfile
	err      error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{profiles: map[string]domain.UserProfile{}}
}

func (f *fakeUsers) SaveProfile(_ context.Context, profile domain.UserProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeUsers) FindProfile(_ context.Context, userID string) (*domain.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

type fakeCredentials struct {
	byEmail   map[string]Credential
	createErr error
	findErr   error
}

func newFakeCredentials() *fakeCredentials {
	return &fakeCredentials{byEmail: map[string]Credential{}}
}

func (f *fakeCredentials) Create(_ context.Context, credential Credential) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[credential.Email]; ok {
		return ErrAlreadyExists
	}
	f.byEmail[credential.Email] = credential
	return nil
}

func (f *fakeCredentials) FindByEmail(_ context.Context, email string) (*Credential, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	c, ok := f.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

type fakeQuizResults struct {
	items []domain.QuizResult
	err   error
}

func (f *fakeQuizResults) Append(_ context.Context, result domain.QuizResult) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, result)
	return nil
}

type fakeEntScores struct {
	items []domain.EntScoreRecord
}

func (f *fakeEntScores) Append(_ context.Context, record domain.EntScoreRecord) error {
	f.items = append(f.items, record)
	return nil
}

type fakeChats struct {
	items     []domain.ChatMessage
	lastLimit int
}

func (f *fakeChats) Append(_ context.Context, message domain.ChatMessage) error {
	f.items = append(f.items, message)
	return nil
}

func (f *fakeChats) History(_ context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	f.lastLimit = limit
	out := make([]domain.ChatMessage, 0)
	for _, m := range f.items {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeCompletion struct {
	fragments []string
	err       error
	got       CompletionRequest
}

func (f *fakeCompletion) StreamCompletion(_ context.Context, req CompletionRequest, emit func(string) error) error {
	f.got = req
	for _, fragment := range f.fragments {
		if err := emit(fragment); err != nil {
			return err
		}
	}
	return f.err
}
