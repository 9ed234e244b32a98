package domain

import (
	"fmt"
	"strings"
)

// MajorCategory groups majors for grant thresholds and filtering.
type MajorCategory string

const (
	CategoryEngineering     MajorCategory = "ENGINEERING"
	CategoryMedicine        MajorCategory = "MEDICINE"
	CategoryBusiness        MajorCategory = "BUSINESS"
	CategoryIT              MajorCategory = "IT"
	CategoryLaw             MajorCategory = "LAW"
	CategoryHumanities      MajorCategory = "HUMANITIES"
	CategoryNaturalSciences MajorCategory = "NATURAL_SCIENCES"
	CategoryArts            MajorCategory = "ARTS"
	CategoryEducation       MajorCategory = "EDUCATION"
	CategoryAgriculture     MajorCategory = "AGRICULTURE"
)

// MajorCategories lists every category in display order.
var MajorCategories = []MajorCategory{
	CategoryIT,
	CategoryEngineering,
	CategoryMedicine,
	CategoryBusiness,
	CategoryLaw,
	CategoryHumanities,
	CategoryNaturalSciences,
	CategoryArts,
	CategoryEducation,
	CategoryAgriculture,
}

// ParseMajorCategory normalises case and rejects unknown values.
func ParseMajorCategory(value string) (MajorCategory, error) {
	c := MajorCategory(strings.ToUpper(strings.TrimSpace(value)))
	for _, known := range MajorCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown major category: %q", value)
}

// Major is a field of study from the catalog.
type Major struct {
	ID                 string
	Code               string
	Name               string
	NameRu             string
	Description        string
	DescriptionRu      string
	Category           MajorCategory
	RiasecTypes        []RiasecType
	SubjectCombination []string
}

// HasAnyType reports whether the major maps to at least one of types.
func (m Major) HasAnyType(types []RiasecType) bool {
	for _, own := range m.RiasecTypes {
		for _, t := range types {
			if own == t {
				return true
			}
		}
	}
	return false
}
