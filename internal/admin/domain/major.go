package domain

import "strings"

// Major aggregates one field of study maintained by operators.
type Major struct {
	ID                 string
	Code               MajorCode
	Name               string
	NameRu             string
	Description        string
	DescriptionRu      string
	Category           MajorCategory
	RiasecTypes        RiasecTypeList
	SubjectCombination []string
}

// MajorInput is the raw operator input for one major.
type MajorInput struct {
	Code               string
	Name               string
	NameRu             string
	Description        string
	DescriptionRu      string
	Category           string
	RiasecTypes        []string
	SubjectCombination []string
}

func NewMajor(in MajorInput) (Major, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Major{}, invalidf("name is required")
	}
	code, err := NewMajorCode(in.Code)
	if err != nil {
		return Major{}, err
	}
	category, err := NewMajorCategory(in.Category)
	if err != nil {
		return Major{}, err
	}
	types, err := NewRiasecTypeList(in.RiasecTypes)
	if err != nil {
		return Major{}, err
	}

	subjects := make([]string, 0, len(in.SubjectCombination))
	for _, s := range in.SubjectCombination {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			subjects = append(subjects, trimmed)
		}
	}

	return Major{
		Code:               code,
		Name:               name,
		NameRu:             strings.TrimSpace(in.NameRu),
		Description:        strings.TrimSpace(in.Description),
		DescriptionRu:      strings.TrimSpace(in.DescriptionRu),
		Category:           category,
		RiasecTypes:        types,
		SubjectCombination: subjects,
	}, nil
}
