package domain

const (
	// CareerTypes is how many leading categories contribute careers.
	CareerTypes = 2
	// CareersPerType caps the careers taken from one category.
	CareersPerType = 3
	// MaxRecommendedMajors caps the major list.
	MaxRecommendedMajors = 6
)

// RiasecDescription is the static presentation record of one category.
type RiasecDescription struct {
	Type        RiasecType `json:"type" yaml:"type"`
	Name        string     `json:"name" yaml:"name"`
	NameEn      string     `json:"nameEn" yaml:"nameEn"`
	Description string     `json:"description" yaml:"description"`
	Careers     []string   `json:"careers" yaml:"careers"`
	Color       string     `json:"color" yaml:"color"`
}

// Recommendation bundles both recommendation lists for a profile.
type Recommendation struct {
	Careers []string
	Majors  []Major
}

// RecommendCareers concatenates up to CareersPerType careers of each of the
// first CareerTypes ranked categories, in rank order.
func RecommendCareers(profile Profile, descriptions map[RiasecType]RiasecDescription) []string {
	careers := make([]string, 0, CareerTypes*CareersPerType)
	for i, ts := range profile.Top {
		if i >= CareerTypes {
			break
		}
		desc, ok := descriptions[ts.Type]
		if !ok {
			continue
		}
		list := desc.Careers
		if len(list) > CareersPerType {
			list = list[:CareersPerType]
		}
		careers = append(careers, list...)
	}
	return careers
}

// RecommendMajors keeps majors whose RIASEC set intersects top, in catalog
// order, truncated to MaxRecommendedMajors.
func RecommendMajors(top []RiasecType, catalog []Major) []Major {
	out := make([]Major, 0, MaxRecommendedMajors)
	for _, m := range catalog {
		if len(out) == MaxRecommendedMajors {
			break
		}
		if m.HasAnyType(top) {
			out = append(out, m)
		}
	}
	return out
}

// Recommend builds both lists for a classified profile.
func Recommend(profile Profile, descriptions map[RiasecType]RiasecDescription, catalog []Major) Recommendation {
	return Recommendation{
		Careers: RecommendCareers(profile, descriptions),
		Majors:  RecommendMajors(profile.TopTypes(), catalog),
	}
}
