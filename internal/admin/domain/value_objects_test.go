package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNewSlug(t *testing.T) {
	tests := []struct {
		in      string
		want    Slug
		wantErr bool
	}{
		{in: "nazarbayev-university", want: "nazarbayev-university"},
		{in: "  KBTU ", want: "kbtu"},
		{in: "", wantErr: true},
		{in: "кбту", wantErr: true},
		{in: "double--dash", wantErr: true},
		{in: "-leading", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewSlug(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewMajorCode(t *testing.T) {
	code, err := NewMajorCode(" 6b06101 ")
	require.NoError(t, err)
	assert.Equal(t, MajorCode("6B06101"), code)

	_, err = NewMajorCode("CS-101")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewRiasecTypeList(t *testing.T) {
	list, err := NewRiasecTypeList([]string{"i", "C", "I"})
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "C"}, list.Strings())

	_, err = NewRiasecTypeList(nil)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewRiasecTypeList([]string{"X"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewURLAndEmail(t *testing.T) {
	u, err := NewURL("")
	require.NoError(t, err)
	assert.Empty(t, u)

	_, err = NewURL("ftp://nu.edu.kz")
	assert.ErrorIs(t, err, ErrInvalid)

	u, err = NewURL("https://nu.edu.kz")
	require.NoError(t, err)
	assert.Equal(t, "https://nu.edu.kz", u.String())

	_, err = NewEmail("admissions@")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewRankingAndCount(t *testing.T) {
	r, err := NewRanking(intPtr(0))
	require.NoError(t, err)
	assert.Nil(t, r.Ptr())

	_, err = NewRanking(intPtr(-1))
	assert.ErrorIs(t, err, ErrInvalid)

	c, err := NewCount("studentsCount", intPtr(5000))
	require.NoError(t, err)
	assert.Equal(t, 5000, *c.Ptr())

	_, err = NewCount("tuitionFee", intPtr(-10))
	assert.ErrorIs(t, err, ErrInvalid)

	bad := 101.0
	_, err = NewRate(&bad)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewUniversity(t *testing.T) {
	u, err := NewUniversity(UniversityInput{
		Slug:           "nu",
		Name:           " Nazarbayev University ",
		City:           "Astana",
		CityRu:         "Астана",
		Ranking:        intPtr(1),
		UniversityType: "international",
		Website:        "https://nu.edu.kz",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nazarbayev University", u.Name)
	assert.Equal(t, City("astana"), u.City)
	assert.Equal(t, "INTERNATIONAL", u.UniversityType.String())
	assert.Equal(t, "Kazakhstan", u.Country)
	assert.Equal(t, 1, *u.Ranking.Ptr())

	_, err = NewUniversity(UniversityInput{Slug: "nu", City: "astana"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewUniversity(UniversityInput{Slug: "nu", Name: "NU", City: "astana", UniversityType: "CHARTER"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewUniversityDefaultsType(t *testing.T) {
	u, err := NewUniversity(UniversityInput{Slug: "enu", Name: "ENU", City: "astana"})
	require.NoError(t, err)
	assert.Equal(t, "PUBLIC", u.UniversityType.String())
}

func TestNewMajor(t *testing.T) {
	m, err := NewMajor(MajorInput{
		Code:               "6B06101",
		Name:               "Computer Science",
		Category:           "it",
		RiasecTypes:        []string{"I", "C"},
		SubjectCombination: []string{"Математика", " ", "Информатика"},
	})
	require.NoError(t, err)
	assert.Equal(t, "IT", m.Category.String())
	assert.Equal(t, []string{"Математика", "Информатика"}, m.SubjectCombination)

	_, err = NewMajor(MajorInput{Code: "6B06101", Name: "CS", Category: "SPACE", RiasecTypes: []string{"I"}})
	assert.ErrorIs(t, err, ErrInvalid)
}
