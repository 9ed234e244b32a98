package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminapp "github.com/sngm3741/unikz/api/internal/admin/application"
	admindomain "github.com/sngm3741/unikz/api/internal/admin/domain"
)

type memUniversityRepo struct {
	items  []admindomain.University
	nextID int
}

func (m *memUniversityRepo) Find(_ context.Context, filter adminapp.UniversityFilter, _ adminapp.Paging) ([]admindomain.University, error) {
	out := make([]admindomain.University, 0)
	for _, u := range m.items {
		if filter.City != "" && u.City.String() != strings.ToLower(filter.City) {
			continue
		}
		if filter.Keyword != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(filter.Keyword)) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (m *memUniversityRepo) FindByID(_ context.Context, id string) (*admindomain.University, error) {
	for _, u := range m.items {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, adminapp.ErrNotFound
}

func (m *memUniversityRepo) Create(_ context.Context, u *admindomain.University) error {
	for _, existing := range m.items {
		if existing.Slug == u.Slug {
			return adminapp.ErrDuplicate
		}
	}
	m.nextID++
	u.ID = "id-" + strconv.Itoa(m.nextID)
	u.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	u.UpdatedAt = u.CreatedAt
	m.items = append(m.items, *u)
	return nil
}

func (m *memUniversityRepo) Update(_ context.Context, u *admindomain.University) error {
	for i, existing := range m.items {
		if existing.ID == u.ID {
			m.items[i] = *u
			return nil
		}
	}
	return adminapp.ErrNotFound
}

type memMajorRepo struct {
	items []admindomain.Major
}

func (m *memMajorRepo) Find(_ context.Context, filter adminapp.MajorFilter, _ adminapp.Paging) ([]admindomain.Major, error) {
	out := make([]admindomain.Major, 0)
	for _, major := range m.items {
		if filter.Category != "" && major.Category.String() != strings.ToUpper(filter.Category) {
			continue
		}
		out = append(out, major)
	}
	return out, nil
}

func (m *memMajorRepo) Create(_ context.Context, major *admindomain.Major) error {
	for _, existing := range m.items {
		if existing.Code == major.Code {
			return adminapp.ErrDuplicate
		}
	}
	major.ID = "major-" + strconv.Itoa(len(m.items)+1)
	m.items = append(m.items, *major)
	return nil
}

func newTestRouter(t *testing.T) (http.Handler, *memUniversityRepo, *bytes.Buffer) {
	t.Helper()
	universities := &memUniversityRepo{}
	logs := &bytes.Buffer{}
	handler := NewHandler(Config{
		Logger:            log.New(logs, "", 0),
		UniversityService: adminapp.NewUniversityService(universities),
		MajorService:      adminapp.NewMajorService(&memMajorRepo{}),
	})
	router := chi.NewRouter()
	router.Route("/admin", handler.Register)
	return router, universities, logs
}

func send(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, reader))
	return rec
}

func TestAdminUniversityLifecycle(t *testing.T) {
	router, repo, _ := newTestRouter(t)

	rec := send(t, router, http.MethodPost, "/admin/universities", `{
		"slug": "KBTU", "name": "Kazakh-British Technical University", "city": "Almaty",
		"ranking": 5, "website": "https://kbtu.edu.kz", "hasHostel": true
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created adminUniversityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "kbtu", created.Slug)
	assert.Equal(t, "almaty", created.City)
	assert.Equal(t, "Kazakhstan", created.Country)
	assert.Equal(t, "PUBLIC", created.UniversityType)
	require.NotNil(t, created.Ranking)
	assert.Equal(t, 5, *created.Ranking)

	rec = send(t, router, http.MethodPost, "/admin/universities", `{"slug":"kbtu","name":"Again","city":"almaty"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = send(t, router, http.MethodPatch, "/admin/universities/id-1", `{"universityType":"private","hasHostel":false}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated adminUniversityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "PRIVATE", updated.UniversityType)
	assert.False(t, updated.HasHostel)
	assert.Equal(t, "https://kbtu.edu.kz", updated.Website, "absent fields are kept")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, admindomain.UniversityType("PRIVATE"), repo.items[0].UniversityType)

	rec = send(t, router, http.MethodGet, "/admin/universities?city=ALMATY", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"kbtu"`)

	rec = send(t, router, http.MethodGet, "/admin/universities/id-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = send(t, router, http.MethodGet, "/admin/universities/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = send(t, router, http.MethodPatch, "/admin/universities/missing", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminUniversityValidation(t *testing.T) {
	router, _, _ := newTestRouter(t)

	cases := map[string]struct {
		body string
		want string
	}{
		"missing name":   {`{"slug":"x","city":"almaty"}`, "name is required"},
		"bad slug":       {`{"slug":"Bad Slug","name":"X","city":"almaty"}`, "slug must be"},
		"bad rate":       {`{"slug":"x","name":"X","city":"almaty","acceptanceRate":140}`, "acceptance rate"},
		"bad type":       {`{"slug":"x","name":"X","city":"almaty","universityType":"college"}`, "unknown university type"},
		"malformed json": {`{"slug":`, "invalid request body"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := send(t, router, http.MethodPost, "/admin/universities", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestAdminMajors(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := send(t, router, http.MethodPost, "/admin/majors", `{
		"code": "6b06101", "name": "Computer Science", "category": "it",
		"riasecTypes": ["i", "C", "I"], "subjectCombination": ["Математика", "Информатика"]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created adminMajorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "6B06101", created.Code)
	assert.Equal(t, "IT", created.Category)
	assert.Equal(t, []string{"I", "C"}, created.RiasecTypes)

	rec = send(t, router, http.MethodPost, "/admin/majors", `{"code":"6B06101","name":"Dup","category":"IT","riasecTypes":["I"]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = send(t, router, http.MethodPost, "/admin/majors", `{"code":"123","name":"Bad","category":"IT","riasecTypes":["I"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(t, router, http.MethodGet, "/admin/majors?category=it", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []adminMajorResponse `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Items, 1)
}
