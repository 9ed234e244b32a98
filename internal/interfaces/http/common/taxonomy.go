package common

import (
	"strings"

	publicdomain "github.com/sngm3741/unikz/api/internal/public/domain"
)

// isWildcard reports whether a select value means "no constraint".
func isWildcard(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all", "any", "*":
		return true
	}
	return false
}

// UniversityTypeParam parses the ?type= filter. Empty and "all" mean no
// constraint.
func UniversityTypeParam(value string) (publicdomain.UniversityType, error) {
	if isWildcard(value) {
		return "", nil
	}
	return publicdomain.ParseUniversityType(value)
}

// MajorCategoryParam parses the ?category= filter.
func MajorCategoryParam(value string) (publicdomain.MajorCategory, error) {
	if isWildcard(value) {
		return "", nil
	}
	return publicdomain.ParseMajorCategory(value)
}

// RiasecTypeParam parses the ?riasec= filter.
func RiasecTypeParam(value string) (publicdomain.RiasecType, error) {
	if isWildcard(value) {
		return "", nil
	}
	return publicdomain.ParseRiasecType(value)
}

// CityParam normalises the ?city= filter to the stored lower-case code.
func CityParam(value string) string {
	if isWildcard(value) {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(value))
}
