package domain

import (
	"sort"
	"strings"
)

// UniversityFilter is the set of predicates applied to the university
// catalog. Zero values mean "no constraint".
type UniversityFilter struct {
	Query           string
	City            string
	UniversityType  UniversityType
	HasHostel       bool
	HasMilitaryDept bool
}

// IsZero reports whether no constraint is set.
func (f UniversityFilter) IsZero() bool {
	return f == UniversityFilter{}
}

// Reset clears every constraint.
func (f UniversityFilter) Reset() UniversityFilter {
	return UniversityFilter{}
}

// Matches evaluates all predicates with logical AND.
func (f UniversityFilter) Matches(u University) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" && !u.matchesQuery(q) {
		return false
	}
	if city := strings.TrimSpace(f.City); city != "" && !strings.EqualFold(u.City, city) {
		return false
	}
	if f.UniversityType != "" && u.UniversityType != f.UniversityType {
		return false
	}
	if f.HasHostel && !u.HasHostel {
		return false
	}
	if f.HasMilitaryDept && !u.HasMilitaryDept {
		return false
	}
	return true
}

// FilterUniversities keeps the matching entries and orders them by ranking.
// The input slice is not modified.
func FilterUniversities(catalog []University, filter UniversityFilter) []University {
	out := make([]University, 0, len(catalog))
	for _, u := range catalog {
		if filter.Matches(u) {
			out = append(out, u)
		}
	}
	SortByRanking(out)
	return out
}

// SortByRanking sorts ascending by EffectiveRanking, keeping catalog order
// between equal rankings.
func SortByRanking(universities []University) {
	sort.SliceStable(universities, func(i, j int) bool {
		return universities[i].EffectiveRanking() < universities[j].EffectiveRanking()
	})
}

// MajorFilter is the set of predicates applied to the major catalog.
type MajorFilter struct {
	Query      string
	Category   MajorCategory
	RiasecType RiasecType
}

// Matches evaluates all predicates with logical AND.
func (f MajorFilter) Matches(m Major) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" &&
		!containsFold(q, m.Code, m.Name, m.NameRu, m.Description, m.DescriptionRu) {
		return false
	}
	if f.Category != "" && m.Category != f.Category {
		return false
	}
	if f.RiasecType != "" && !m.HasAnyType([]RiasecType{f.RiasecType}) {
		return false
	}
	return true
}

// FilterMajors keeps matching majors in catalog order.
func FilterMajors(catalog []Major, filter MajorFilter) []Major {
	out := make([]Major, 0, len(catalog))
	for _, m := range catalog {
		if filter.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}
