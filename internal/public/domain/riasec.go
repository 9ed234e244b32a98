package domain

import (
	"fmt"
	"strings"
)

// RiasecType is one of the six Holland interest categories.
type RiasecType string

const (
	Realistic     RiasecType = "R"
	Investigative RiasecType = "I"
	Artistic      RiasecType = "A"
	Social        RiasecType = "S"
	Enterprising  RiasecType = "E"
	Conventional  RiasecType = "C"
)

// AllRiasecTypes lists the categories in enumeration order. Ranking ties are
// broken by this order.
var AllRiasecTypes = []RiasecType{Realistic, Investigative, Artistic, Social, Enterprising, Conventional}

const (
	// MinAnswer and MaxAnswer bound the Likert scale used by the quiz.
	MinAnswer = 1
	MaxAnswer = 5
)

// ParseRiasecType accepts a single letter in either case.
func ParseRiasecType(value string) (RiasecType, error) {
	t := RiasecType(strings.ToUpper(strings.TrimSpace(value)))
	if t.Valid() {
		return t, nil
	}
	return "", fmt.Errorf("unknown RIASEC type: %q", value)
}

// Valid reports whether t is one of the six categories.
func (t RiasecType) Valid() bool {
	switch t {
	case Realistic, Investigative, Artistic, Social, Enterprising, Conventional:
		return true
	}
	return false
}

func (t RiasecType) index() int {
	for i, candidate := range AllRiasecTypes {
		if candidate == t {
			return i
		}
	}
	return len(AllRiasecTypes)
}

// Scores holds per-category totals for one quiz session.
type Scores struct {
	R int `json:"R"`
	I int `json:"I"`
	A int `json:"A"`
	S int `json:"S"`
	E int `json:"E"`
	C int `json:"C"`
}

// Get returns the total for t, zero for unknown types.
func (s Scores) Get(t RiasecType) int {
	switch t {
	case Realistic:
		return s.R
	case Investigative:
		return s.I
	case Artistic:
		return s.A
	case Social:
		return s.S
	case Enterprising:
		return s.E
	case Conventional:
		return s.C
	}
	return 0
}

// Add returns a copy of s with value added to the t counter.
func (s Scores) Add(t RiasecType, value int) Scores {
	switch t {
	case Realistic:
		s.R += value
	case Investigative:
		s.I += value
	case Artistic:
		s.A += value
	case Social:
		s.S += value
	case Enterprising:
		s.E += value
	case Conventional:
		s.C += value
	}
	return s
}

// Total is the sum of all six counters.
func (s Scores) Total() int {
	return s.R + s.I + s.A + s.S + s.E + s.C
}

// Map exposes the scores keyed by letter, the shape stored with quiz results.
func (s Scores) Map() map[string]int {
	out := make(map[string]int, len(AllRiasecTypes))
	for _, t := range AllRiasecTypes {
		out[string(t)] = s.Get(t)
	}
	return out
}

// ScoresFromMap is the inverse of Map. Unknown keys are ignored.
func ScoresFromMap(values map[string]int) Scores {
	var s Scores
	for key, value := range values {
		t, err := ParseRiasecType(key)
		if err != nil {
			continue
		}
		s = s.Add(t, value)
	}
	return s
}

// Question is one Likert item of the career quiz.
type Question struct {
	ID   int        `json:"id" yaml:"id"`
	Text string     `json:"text" yaml:"text"`
	Type RiasecType `json:"type" yaml:"type"`
}

// Answers maps question id to the selected Likert value.
type Answers map[int]int

// Value returns the recorded answer for id, or 0 when missing or outside
// [MinAnswer, MaxAnswer].
func (a Answers) Value(id int) int {
	v, ok := a[id]
	if !ok || v < MinAnswer || v > MaxAnswer {
		return 0
	}
	return v
}

// Aggregate reduces the answers of a question set into category totals.
// Unanswered or out-of-range answers count as 0.
func Aggregate(questions []Question, answers Answers) Scores {
	var scores Scores
	for _, q := range questions {
		scores = scores.Add(q.Type, answers.Value(q.ID))
	}
	return scores
}

// MaxScoreFor is the highest total one category can reach.
func MaxScoreFor(questionsPerCategory int) int {
	if questionsPerCategory <= 0 {
		return 0
	}
	return questionsPerCategory * MaxAnswer
}

// QuestionsPerCategory returns the largest number of questions any single
// category has in the bank.
func QuestionsPerCategory(questions []Question) int {
	counts := make(map[RiasecType]int, len(AllRiasecTypes))
	max := 0
	for _, q := range questions {
		counts[q.Type]++
		if counts[q.Type] > max {
			max = counts[q.Type]
		}
	}
	return max
}
