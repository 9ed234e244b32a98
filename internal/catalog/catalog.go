// Package catalog holds the static reference data shipped with the binary:
// the career quiz question bank and the RIASEC type descriptions.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sngm3741/unikz/api/internal/public/domain"
)

//go:embed questions.yaml
var questionsYAML []byte

//go:embed riasec.yaml
var riasecYAML []byte

type questionFile struct {
	Questions []domain.Question `yaml:"questions"`
}

type riasecFile struct {
	Types []domain.RiasecDescription `yaml:"types"`
}

// Catalog is the parsed, validated reference data.
type Catalog struct {
	questions    []domain.Question
	descriptions []domain.RiasecDescription
	byType       map[domain.RiasecType]domain.RiasecDescription
}

// Load parses the embedded files.
func Load() (*Catalog, error) {
	return Parse(questionsYAML, riasecYAML)
}

// Parse builds a Catalog from raw YAML documents.
func Parse(questionsDoc, riasecDoc []byte) (*Catalog, error) {
	var qf questionFile
	if err := yaml.Unmarshal(questionsDoc, &qf); err != nil {
		return nil, fmt.Errorf("parse questions: %w", err)
	}
	var rf riasecFile
	if err := yaml.Unmarshal(riasecDoc, &rf); err != nil {
		return nil, fmt.Errorf("parse riasec types: %w", err)
	}

	if len(qf.Questions) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	seen := make(map[int]struct{}, len(qf.Questions))
	for _, q := range qf.Questions {
		if !q.Type.Valid() {
			return nil, fmt.Errorf("question %d: unknown type %q", q.ID, q.Type)
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("question %d: duplicate id", q.ID)
		}
		seen[q.ID] = struct{}{}
	}

	byType := make(map[domain.RiasecType]domain.RiasecDescription, len(rf.Types))
	for _, d := range rf.Types {
		if !d.Type.Valid() {
			return nil, fmt.Errorf("description: unknown type %q", d.Type)
		}
		byType[d.Type] = d
	}
	for _, t := range domain.AllRiasecTypes {
		if _, ok := byType[t]; !ok {
			return nil, fmt.Errorf("description missing for type %s", t)
		}
	}

	ordered := make([]domain.RiasecDescription, 0, len(domain.AllRiasecTypes))
	for _, t := range domain.AllRiasecTypes {
		ordered = append(ordered, byType[t])
	}

	return &Catalog{
		questions:    qf.Questions,
		descriptions: ordered,
		byType:       byType,
	}, nil
}

// Questions returns the bank in presentation order.
func (c *Catalog) Questions() []domain.Question {
	return append([]domain.Question(nil), c.questions...)
}

// Descriptions returns one entry per type in enumeration order.
func (c *Catalog) Descriptions() []domain.RiasecDescription {
	return append([]domain.RiasecDescription(nil), c.descriptions...)
}

// DescriptionsByType is the lookup used by the recommendation engine.
func (c *Catalog) DescriptionsByType() map[domain.RiasecType]domain.RiasecDescription {
	out := make(map[domain.RiasecType]domain.RiasecDescription, len(c.byType))
	for k, v := range c.byType {
		out[k] = v
	}
	return out
}

// QuestionsPerCategory is derived from the loaded bank.
func (c *Catalog) QuestionsPerCategory() int {
	return domain.QuestionsPerCategory(c.questions)
}
