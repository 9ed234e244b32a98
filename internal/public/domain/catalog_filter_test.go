package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func universityIDs(list []University) []string {
	ids := make([]string, 0, len(list))
	for _, u := range list {
		ids = append(ids, u.ID)
	}
	return ids
}

func sampleUniversities() []University {
	return []University{
		{ID: "kaznu", Name: "Al-Farabi Kazakh National University", NameRu: "КазНУ им. аль-Фараби", City: "almaty", CityRu: "Алматы", Ranking: intPtr(2), HasHostel: true, HasMilitaryDept: true, UniversityType: UniversityNational},
		{ID: "kimep", Name: "KIMEP University", NameRu: "КИМЭП", City: "almaty", CityRu: "Алматы", Description: "Business school", HasHostel: false, UniversityType: UniversityPrivate},
		{ID: "nu", Name: "Nazarbayev University", NameRu: "Назарбаев Университет", City: "astana", CityRu: "Астана", Ranking: intPtr(1), HasHostel: true, UniversityType: UniversityInternational},
		{ID: "kbtu", Name: "Kazakh-British Technical University", NameRu: "КБТУ", City: "almaty", CityRu: "Алматы", Ranking: intPtr(3), HasHostel: true, UniversityType: UniversityPrivate},
		{ID: "enu", Name: "L.N. Gumilyov Eurasian National University", NameRu: "ЕНУ им. Гумилёва", City: "astana", CityRu: "Астана", DescriptionRu: "Крупнейший вуз столицы", HasMilitaryDept: true, UniversityType: UniversityNational},
	}
}

func TestFilterUniversities_NoConstraintsOnlySorts(t *testing.T) {
	catalog := sampleUniversities()

	got := FilterUniversities(catalog, UniversityFilter{})

	assert.Equal(t, []string{"nu", "kaznu", "kbtu", "kimep", "enu"}, universityIDs(got))
	assert.Equal(t, "kaznu", catalog[0].ID, "input must not be reordered")
}

func TestFilterUniversities_HostelScenario(t *testing.T) {
	catalog := []University{
		{ID: "a", Ranking: nil, HasHostel: true},
		{ID: "b", Ranking: intPtr(5), HasHostel: false},
		{ID: "c", Ranking: intPtr(7), HasHostel: true},
	}

	got := FilterUniversities(catalog, UniversityFilter{HasHostel: true})

	assert.Equal(t, []string{"c", "a"}, universityIDs(got))
}

func TestFilterUniversities_UnknownCityIsEmpty(t *testing.T) {
	got := FilterUniversities(sampleUniversities(), UniversityFilter{City: "shymkent"})

	assert.Empty(t, got)
}

func TestFilterUniversities_Query(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"english name case-insensitive", "nazarbayev", []string{"nu"}},
		{"russian name", "кбту", []string{"kbtu"}},
		{"description", "BUSINESS", []string{"kimep"}},
		{"russian description", "столицы", []string{"enu"}},
		{"russian city", "астана", []string{"nu", "enu"}},
		{"no match", "oxford", []string{}},
		{"blank query ignored", "   ", []string{"nu", "kaznu", "kbtu", "kimep", "enu"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterUniversities(sampleUniversities(), UniversityFilter{Query: tt.query})
			assert.Equal(t, tt.want, universityIDs(got))
		})
	}
}

func TestFilterUniversities_TypeAndFlags(t *testing.T) {
	got := FilterUniversities(sampleUniversities(), UniversityFilter{UniversityType: UniversityNational, HasMilitaryDept: true})
	assert.Equal(t, []string{"kaznu", "enu"}, universityIDs(got))

	got = FilterUniversities(sampleUniversities(), UniversityFilter{City: "ALMATY", HasHostel: true})
	assert.Equal(t, []string{"kaznu", "kbtu"}, universityIDs(got))
}

func TestFilterUniversities_AndDistributes(t *testing.T) {
	filters := []UniversityFilter{
		{City: "almaty"},
		{City: "astana"},
		{HasHostel: true},
		{HasMilitaryDept: true},
		{UniversityType: UniversityPrivate},
		{Query: "university"},
		{Query: "ал"},
	}
	catalog := sampleUniversities()

	for _, a := range filters {
		for _, b := range filters {
			combined := a
			if b.City != "" {
				combined.City = b.City
			}
			if b.Query != "" {
				combined.Query = b.Query
			}
			if b.UniversityType != "" {
				combined.UniversityType = b.UniversityType
			}
			combined.HasHostel = a.HasHostel || b.HasHostel
			combined.HasMilitaryDept = a.HasMilitaryDept || b.HasMilitaryDept
			if a.City != "" && b.City != "" && a.City != b.City {
				continue
			}
			if a.Query != "" && b.Query != "" && a.Query != b.Query {
				continue
			}

			left := map[string]bool{}
			for _, u := range FilterUniversities(catalog, a) {
				left[u.ID] = true
			}
			want := []string{}
			for _, u := range FilterUniversities(catalog, b) {
				if left[u.ID] {
					want = append(want, u.ID)
				}
			}

			assert.Equal(t, want, universityIDs(FilterUniversities(catalog, combined)), "a=%+v b=%+v", a, b)
		}
	}
}

func TestSortByRanking_NilAndZeroLastAndStable(t *testing.T) {
	list := []University{
		{ID: "x", Ranking: nil},
		{ID: "y", Ranking: intPtr(0)},
		{ID: "z", Ranking: intPtr(10)},
		{ID: "w", Ranking: intPtr(999)},
		{ID: "v", Ranking: intPtr(10)},
	}

	SortByRanking(list)

	assert.Equal(t, []string{"z", "v", "x", "y", "w"}, universityIDs(list))
}

func TestUniversityFilter_ResetAndIsZero(t *testing.T) {
	f := UniversityFilter{City: "almaty", HasHostel: true}
	assert.False(t, f.IsZero())
	assert.True(t, f.Reset().IsZero())
}

func TestFilterMajors(t *testing.T) {
	catalog := []Major{
		{ID: "1", Code: "6B06101", NameRu: "Информационные системы", Category: CategoryIT, RiasecTypes: []RiasecType{Investigative, Conventional}},
		{ID: "2", Code: "6B10101", NameRu: "Общая медицина", Category: CategoryMedicine, RiasecTypes: []RiasecType{Investigative, Social}},
		{ID: "3", Code: "6B04101", Name: "Finance", Category: CategoryBusiness, RiasecTypes: []RiasecType{Enterprising, Conventional}},
	}

	assert.Len(t, FilterMajors(catalog, MajorFilter{}), 3)

	got := FilterMajors(catalog, MajorFilter{Category: CategoryIT})
	assert.Equal(t, "1", got[0].ID)

	got = FilterMajors(catalog, MajorFilter{RiasecType: Conventional})
	assert.Len(t, got, 2)

	got = FilterMajors(catalog, MajorFilter{Query: "finance"})
	assert.Equal(t, "3", got[0].ID)

	got = FilterMajors(catalog, MajorFilter{Query: "6b101"})
	assert.Equal(t, "2", got[0].ID)

	assert.Empty(t, FilterMajors(catalog, MajorFilter{Category: CategoryArts}))
}
