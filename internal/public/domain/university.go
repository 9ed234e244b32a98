package domain

import (
	"fmt"
	"strings"
	"time"
)

// UnrankedSentinel is the ranking used for universities without one, so they
// sort after every ranked entry.
const UnrankedSentinel = 999

// UniversityType classifies institutions by ownership/status.
type UniversityType string

const (
	UniversityPublic        UniversityType = "PUBLIC"
	UniversityPrivate       UniversityType = "PRIVATE"
	UniversityNational      UniversityType = "NATIONAL"
	UniversityInternational UniversityType = "INTERNATIONAL"
)

// UniversityTypes lists the supported types.
var UniversityTypes = []UniversityType{UniversityPublic, UniversityPrivate, UniversityNational, UniversityInternational}

// ParseUniversityType normalises case and rejects unknown values.
func ParseUniversityType(value string) (UniversityType, error) {
	t := UniversityType(strings.ToUpper(strings.TrimSpace(value)))
	for _, known := range UniversityTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown university type: %q", value)
}

// University is a read-only catalog entry.
type University struct {
	ID              string
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
	UniversityType  UniversityType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EffectiveRanking returns the ranking used for ordering. Missing or
// non-positive rankings map to UnrankedSentinel.
func (u University) EffectiveRanking() int {
	if u.Ranking == nil || *u.Ranking <= 0 {
		return UnrankedSentinel
	}
	return *u.Ranking
}

// matchesQuery reports whether any searchable field contains query. query must
// already be lower-cased.
func (u University) matchesQuery(query string) bool {
	return containsFold(query, u.Name, u.NameRu, u.Description, u.DescriptionRu, u.City, u.CityRu)
}

func containsFold(query string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
