package domain

import (
	"strings"
	"time"
)

// University aggregates catalog data maintained by operators.
type University struct {
	ID              string
	Slug            Slug
	Name            string
	NameRu          string
	Country         string
	CountryRu       string
	City            City
	CityRu          string
	Description     string
	DescriptionRu   string
	LogoURL         URL
	CoverImageURL   URL
	Ranking         Ranking
	FoundedYear     Count
	Website         URL
	Email           Email
	Phone           string
	Address         string
	AddressRu       string
	StudentsCount   Count
	HasHostel       bool
	HasMilitaryDept bool
	AcceptanceRate  Rate
	TuitionFee      Count
	Accreditation   string
	UniversityType  UniversityType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UniversityInput is the raw operator input for one university.
type UniversityInput struct {
	Slug            string
	Name            string
	NameRu          string
	Country         string
	CountryRu       string
	City            string
	CityRu          string
	Description     string
	DescriptionRu   string
	LogoURL         string
	CoverImageURL   string
	Ranking         *int
	FoundedYear     *int
	Website         string
	Email           string
	Phone           string
	Address         string
	AddressRu       string
	StudentsCount   *int
	HasHostel       bool
	HasMilitaryDept bool
	AcceptanceRate  *float64
	TuitionFee      *int
	Accreditation   string
	UniversityType  string
}

// NewUniversity validates input and builds the aggregate. Country defaults to
// Kazakhstan.
func NewUniversity(in UniversityInput) (University, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return University{}, invalidf("name is required")
	}
	slug, err := NewSlug(in.Slug)
	if err != nil {
		return University{}, err
	}
	city, err := NewCity(in.City)
	if err != nil {
		return University{}, err
	}
	kind, err := NewUniversityType(in.UniversityType)
	if err != nil {
		return University{}, err
	}
	logo, err := NewURL(in.LogoURL)
	if err != nil {
		return University{}, err
	}
	cover, err := NewURL(in.CoverImageURL)
	if err != nil {
		return University{}, err
	}
	website, err := NewURL(in.Website)
	if err != nil {
		return University{}, err
	}
	email, err := NewEmail(in.Email)
	if err != nil {
		return University{}, err
	}
	ranking, err := NewRanking(in.Ranking)
	if err != nil {
		return University{}, err
	}
	founded, err := NewCount("foundedYear", in.FoundedYear)
	if err != nil {
		return University{}, err
	}
	students, err := NewCount("studentsCount", in.StudentsCount)
	if err != nil {
		return University{}, err
	}
	fee, err := NewCount("tuitionFee", in.TuitionFee)
	if err != nil {
		return University{}, err
	}
	rate, err := NewRate(in.AcceptanceRate)
	if err != nil {
		return University{}, err
	}

	country := strings.TrimSpace(in.Country)
	countryRu := strings.TrimSpace(in.CountryRu)
	if country == "" {
		country = "Kazakhstan"
	}
	if countryRu == "" {
		countryRu = "Казахстан"
	}

	return University{
		Slug:            slug,
		Name:            name,
		NameRu:          strings.TrimSpace(in.NameRu),
		Country:         country,
		CountryRu:       countryRu,
		City:            city,
		CityRu:          strings.TrimSpace(in.CityRu),
		Description:     strings.TrimSpace(in.Description),
		DescriptionRu:   strings.TrimSpace(in.DescriptionRu),
		LogoURL:         logo,
		CoverImageURL:   cover,
		Ranking:         ranking,
		FoundedYear:     founded,
		Website:         website,
		Email:           email,
		Phone:           strings.TrimSpace(in.Phone),
		Address:         strings.TrimSpace(in.Address),
		AddressRu:       strings.TrimSpace(in.AddressRu),
		StudentsCount:   students,
		HasHostel:       in.HasHostel,
		HasMilitaryDept: in.HasMilitaryDept,
		AcceptanceRate:  rate,
		TuitionFee:      fee,
		Accreditation:   strings.TrimSpace(in.Accreditation),
		UniversityType:  kind,
	}, nil
}
