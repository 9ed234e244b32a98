package public

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sngm3741/unikz/api/internal/catalog"
	"github.com/sngm3741/unikz/api/internal/infrastructure/llm"
	"github.com/sngm3741/unikz/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/unikz/api/internal/public/application"
	publicdomain "github.com/sngm3741/unikz/api/internal/public/domain"
)

const testUserHeader = "X-Test-User"

func intPtr(v int) *int { return &v }

type memUniversities struct {
	items []publicdomain.University
	err   error
}

func (m *memUniversities) List(context.Context) ([]publicdomain.University, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := append([]publicdomain.University(nil), m.items...)
	publicdomain.SortByRanking(out)
	return out, nil
}

func (m *memUniversities) FindBySlug(_ context.Context, slug string) (*publicdomain.University, error) {
	for _, u := range m.items {
		if u.Slug == slug {
			u := u
			return &u, nil
		}
	}
	return nil, publicapp.ErrNotFound
}

type memMajors struct {
	items []publicdomain.Major
}

func (m *memMajors) List(context.Context) ([]publicdomain.Major, error) {
	return append([]publicdomain.Major(nil), m.items...), nil
}

func (m *memMajors) FindByID(_ context.Context, id string) (*publicdomain.Major, error) {
	for _, major := range m.items {
		if major.ID == id {
			major := major
			return &major, nil
		}
	}
	return nil, publicapp.ErrNotFound
}

type memCredentials struct {
	mu    sync.Mutex
	items map[string]publicapp.Credential
}

func (m *memCredentials) Create(_ context.Context, c publicapp.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[c.Email]; ok {
		return publicapp.ErrAlreadyExists
	}
	m.items[c.Email] = c
	return nil
}

func (m *memCredentials) FindByEmail(_ context.Context, email string) (*publicapp.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.items[email]
	if !ok {
		return nil, publicapp.ErrNotFound
	}
	return &c, nil
}

type memUsers struct {
	mu    sync.Mutex
	items map[string]publicdomain.UserProfile
}

func (m *memUsers) SaveProfile(_ context.Context, p publicdomain.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[p.UserID] = p
	return nil
}

func (m *memUsers) FindProfile(_ context.Context, id string) (*publicdomain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return nil, publicapp.ErrNotFound
	}
	return &p, nil
}

type memChats struct {
	mu    sync.Mutex
	items []publicdomain.ChatMessage
}

func (m *memChats) Append(_ context.Context, msg publicdomain.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, msg)
	return nil
}

func (m *memChats) History(_ context.Context, userID string, _ int) ([]publicdomain.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]publicdomain.ChatMessage, 0)
	for _, msg := range m.items {
		if msg.UserID == userID {
			out = append(out, msg)
		}
	}
	return out, nil
}

type memQuizResults struct {
	mu    sync.Mutex
	items []publicdomain.QuizResult
}

func (m *memQuizResults) Append(_ context.Context, r publicdomain.QuizResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, r)
	return nil
}

type memEntScores struct {
	mu    sync.Mutex
	items []publicdomain.EntScoreRecord
}

func (m *memEntScores) Append(_ context.Context, r publicdomain.EntScoreRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, r)
	return nil
}

type testEnv struct {
	router       http.Handler
	universities *memUniversities
	majors       *memMajors
	chats        *memChats
	quizResults  *memQuizResults
	entScores    *memEntScores
	completion   *llm.MockStreamer
	logs         *bytes.Buffer
}

func sampleUniversities() []publicdomain.University {
	return []publicdomain.University{
		{ID: "u3", Slug: "kimep", Name: "KIMEP University", City: "almaty", CityRu: "Алматы", UniversityType: publicdomain.UniversityPrivate, HasHostel: true},
		{ID: "u1", Slug: "nu", Name: "Nazarbayev University", NameRu: "Назарбаев Университет", City: "astana", CityRu: "Астана", Ranking: intPtr(1), UniversityType: publicdomain.UniversityInternational, HasHostel: true},
		{ID: "u2", Slug: "kaznu", Name: "Al-Farabi Kazakh National University", City: "almaty", CityRu: "Алматы", Ranking: intPtr(2), UniversityType: publicdomain.UniversityNational, HasHostel: true, HasMilitaryDept: true},
	}
}

func sampleMajors() []publicdomain.Major {
	return []publicdomain.Major{
		{ID: "m1", Code: "6B06101", Name: "Computer Science", NameRu: "Информатика", Category: publicdomain.CategoryIT, RiasecTypes: []publicdomain.RiasecType{publicdomain.Investigative, publicdomain.Conventional}},
		{ID: "m2", Code: "6B10101", Name: "General Medicine", NameRu: "Общая медицина", Category: publicdomain.CategoryMedicine, RiasecTypes: []publicdomain.RiasecType{publicdomain.Investigative, publicdomain.Social}},
		{ID: "m3", Code: "6B02101", Name: "Design", NameRu: "Дизайн", Category: publicdomain.CategoryArts, RiasecTypes: []publicdomain.RiasecType{publicdomain.Artistic}},
	}
}

// fakeAuth trusts the test header as the user id.
func fakeAuth(required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(testUserHeader)
			if id == "" {
				if required {
					common.WriteError(nil, w, http.StatusUnauthorized, "unauthorized")
					return
				}
				next.ServeHTTP(w, r)
				return
			}
			ctx := common.ContextWithUser(r.Context(), common.AuthenticatedUser{ID: id, Email: id + "@uni.kz"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	bank, err := catalog.Load()
	require.NoError(t, err)

	env := &testEnv{
		universities: &memUniversities{items: sampleUniversities()},
		majors:       &memMajors{items: sampleMajors()},
		chats:        &memChats{},
		quizResults:  &memQuizResults{},
		entScores:    &memEntScores{},
		completion:   llm.NewMockStreamer(),
		logs:         &bytes.Buffer{},
	}
	logger := log.New(env.logs, "", 0)
	recorder := &publicapp.InlineRecorder{}
	now := func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	handler := NewHandler(Config{
		Logger:  logger,
		Catalog: publicapp.NewCatalogQueryService(env.universities, env.majors),
		Career: publicapp.NewCareerService(publicapp.CareerConfig{
			Bank:     bank,
			Majors:   env.majors,
			Results:  env.quizResults,
			Recorder: recorder,
			Now:      now,
		}),
		Calculator: publicapp.NewCalculatorService(publicapp.CalculatorConfig{
			Majors:       env.majors,
			Universities: env.universities,
			Scores:       env.entScores,
			Recorder:     recorder,
			Now:          now,
		}),
		Chat: publicapp.NewChatService(publicapp.ChatConfig{
			Completion: llm.NewCompletionAdapter(env.completion, llm.DefaultConfig()),
			Repo:       env.chats,
			Recorder:   recorder,
			Now:        now,
		}),
		Auth: publicapp.NewAuthService(publicapp.AuthConfig{
			Credentials: &memCredentials{items: map[string]publicapp.Credential{}},
			Users:       &memUsers{items: map[string]publicdomain.UserProfile{}},
			Recorder:    recorder,
			Signer: func(userID, email, _ string) (string, time.Time, error) {
				return "token-" + userID, now().Add(time.Hour), nil
			},
			Now:      now,
			NewID:    func() string { return "user-1" },
			HashCost: bcrypt.MinCost,
		}),
	})

	router := chi.NewRouter()
	handler.Register(router, fakeAuth(false), fakeAuth(true))
	env.router = router
	return env
}

func (e *testEnv) do(t *testing.T, method, target string, body any, userID string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != "" {
		req.Header.Set(testUserHeader, userID)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}
