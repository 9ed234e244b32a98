package domain

// Chance bands returned by EstimateChance.
const (
	ChanceVeryHigh = 95
	ChanceHigh     = 80
	ChanceEven     = 60
	ChanceLow      = 30
	ChanceVeryLow  = 10
)

// EstimateChance maps an ENT total and the category grant minimum to a coarse
// chance percentage. Bands are checked top-down.
func EstimateChance(score, minScore int) int {
	switch {
	case score >= minScore+10:
		return ChanceVeryHigh
	case score >= minScore+5:
		return ChanceHigh
	case score >= minScore:
		return ChanceEven
	case score >= minScore-5:
		return ChanceLow
	default:
		return ChanceVeryLow
	}
}

// ChanceLevel buckets a chance for display.
type ChanceLevel string

const (
	LevelHigh   ChanceLevel = "high"
	LevelMedium ChanceLevel = "medium"
	LevelLow    ChanceLevel = "low"
)

// LevelFor returns the display bucket of chance.
func LevelFor(chance int) ChanceLevel {
	switch {
	case chance >= ChanceEven:
		return LevelHigh
	case chance >= ChanceLow:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Subject is one ENT section.
type Subject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MaxScore int    `json:"maxScore"`
}

// EntSubjects lists the five scored sections in display order.
var EntSubjects = []Subject{
	{ID: "reading", Name: "Грамотность чтения", MaxScore: 20},
	{ID: "math", Name: "Математическая грамотность", MaxScore: 20},
	{ID: "history", Name: "История Казахстана", MaxScore: 20},
	{ID: "profile1", Name: "Профильный предмет 1", MaxScore: 40},
	{ID: "profile2", Name: "Профильный предмет 2", MaxScore: 40},
}

// MaxEntScore is the sum of every subject maximum.
const MaxEntScore = 140

// SubjectScores maps subject id to entered points.
type SubjectScores map[string]int

// ClampSubjectScores returns a full score sheet with every known subject
// clamped to [0, MaxScore]. Unknown subjects are dropped, missing ones are 0.
func ClampSubjectScores(raw SubjectScores) SubjectScores {
	out := make(SubjectScores, len(EntSubjects))
	for _, subject := range EntSubjects {
		out[subject.ID] = clamp(raw[subject.ID], 0, subject.MaxScore)
	}
	return out
}

// Total sums the sheet. Callers clamp first so the result never exceeds
// MaxEntScore.
func (s SubjectScores) Total() int {
	total := 0
	for _, subject := range EntSubjects {
		total += s[subject.ID]
	}
	return total
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GrantThreshold is the previous year's grant minimum and admitted average.
type GrantThreshold struct {
	Min int `json:"min"`
	Avg int `json:"avg"`
}

// GrantThresholds is keyed by major category.
var GrantThresholds = map[MajorCategory]GrantThreshold{
	CategoryIT:              {Min: 110, Avg: 120},
	CategoryEngineering:     {Min: 100, Avg: 115},
	CategoryMedicine:        {Min: 120, Avg: 130},
	CategoryBusiness:        {Min: 95, Avg: 110},
	CategoryLaw:             {Min: 105, Avg: 118},
	CategoryHumanities:      {Min: 85, Avg: 100},
	CategoryNaturalSciences: {Min: 95, Avg: 110},
	CategoryArts:            {Min: 80, Avg: 95},
	CategoryEducation:       {Min: 75, Avg: 90},
	CategoryAgriculture:     {Min: 70, Avg: 85},
}

// ThresholdFor looks up the grant table.
func ThresholdFor(category MajorCategory) (GrantThreshold, bool) {
	t, ok := GrantThresholds[category]
	return t, ok
}

// MaxMatchingUniversities caps MatchUniversities.
const MaxMatchingUniversities = 5

// MinMatchingScore is the lowest ENT total for which universities are
// suggested.
const MinMatchingScore = 70

// MatchUniversities suggests the first universities of the catalog once the
// total reaches MinMatchingScore. Nothing is suggested without a major.
func MatchUniversities(total int, major *Major, catalog []University) []University {
	if major == nil || total < MinMatchingScore {
		return nil
	}
	n := len(catalog)
	if n > MaxMatchingUniversities {
		n = MaxMatchingUniversities
	}
	return append([]University(nil), catalog[:n]...)
}
