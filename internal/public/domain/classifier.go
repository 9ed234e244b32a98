package domain

import (
	"math"
	"sort"
)

// TopCount is how many leading categories are tagged for recommendations.
const TopCount = 3

// TypeScore is one row of a classified profile.
type TypeScore struct {
	Type       RiasecType `json:"type"`
	Score      int        `json:"score"`
	Percentage int        `json:"percentage"`
	Rank       int        `json:"rank"`
	Top        bool       `json:"top"`
}

// Profile is the ranked view of a quiz result.
type Profile struct {
	Ranked   []TypeScore `json:"ranked"`
	Dominant TypeScore   `json:"dominant"`
	Top      []TypeScore `json:"top"`
	MaxScore int         `json:"maxScore"`
}

// TopTypes returns the letters of the tagged leading categories.
func (p Profile) TopTypes() []RiasecType {
	out := make([]RiasecType, 0, len(p.Top))
	for _, ts := range p.Top {
		out = append(out, ts.Type)
	}
	return out
}

// Classify orders the six categories by descending score. Equal scores keep
// enumeration order.
func Classify(scores Scores, maxScore int) Profile {
	ranked := make([]TypeScore, 0, len(AllRiasecTypes))
	for _, t := range AllRiasecTypes {
		score := scores.Get(t)
		ranked = append(ranked, TypeScore{
			Type:       t,
			Score:      score,
			Percentage: Percentage(score, maxScore),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].Top = i < TopCount
	}

	top := append([]TypeScore(nil), ranked[:TopCount]...)
	return Profile{
		Ranked:   ranked,
		Dominant: ranked[0],
		Top:      top,
		MaxScore: maxScore,
	}
}

// Percentage returns round(100*score/maxScore), or 0 when maxScore is not
// positive.
func Percentage(score, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(maxScore)))
}
