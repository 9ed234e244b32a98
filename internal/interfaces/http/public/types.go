package public

import (
	"time"

	"github.com/sngm3741/unikz/api/internal/public/application"
	publicdomain "github.com/sngm3741/unikz/api/internal/public/domain"
)

type universityResponse struct {
	ID              string   `json:"id"`
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	NameRu          string   `json:"nameRu,omitempty"`
	Country         string   `json:"country,omitempty"`
	CountryRu       string   `json:"countryRu,omitempty"`
	City            string   `json:"city"`
	CityRu          string   `json:"cityRu,omitempty"`
	Description     string   `json:"description,omitempty"`
	DescriptionRu   string   `json:"descriptionRu,omitempty"`
	LogoURL         string   `json:"logoUrl,omitempty"`
	CoverImageURL   string   `json:"coverImageUrl,omitempty"`
	Ranking         *int     `json:"ranking"`
	FoundedYear     *int     `json:"foundedYear,omitempty"`
	Website         string   `json:"website,omitempty"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Address         string   `json:"address,omitempty"`
	AddressRu       string   `json:"addressRu,omitempty"`
	StudentsCount   *int     `json:"studentsCount,omitempty"`
	HasHostel       bool     `json:"hasHostel"`
	HasMilitaryDept bool     `json:"hasMilitaryDept"`
	AcceptanceRate  *float64 `json:"acceptanceRate,omitempty"`
	TuitionFee      *int     `json:"tuitionFee,omitempty"`
	Accreditation   string   `json:"accreditation,omitempty"`
	UniversityType  string   `json:"universityType"`
}

type universityListResponse struct {
	Items []universityResponse `json:"items"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
	Total int                  `json:"total"`
}

type cityResponse struct {
	Code   string `json:"code"`
	NameRu string `json:"nameRu,omitempty"`
	Count  int    `json:"count"`
}

type majorResponse struct {
	ID                 string   `json:"id"`
	Code               string   `json:"code"`
	Name               string   `json:"name"`
	NameRu             string   `json:"nameRu,omitempty"`
	Description        string   `json:"description,omitempty"`
	DescriptionRu      string   `json:"descriptionRu,omitempty"`
	Category           string   `json:"category"`
	RiasecTypes        []string `json:"riasecTypes"`
	SubjectCombination []string `json:"subjectCombination"`
}

type careerResultResponse struct {
	Scores   publicdomain.Scores            `json:"scores"`
	Profile  publicdomain.Profile           `json:"profile"`
	MaxScore int                            `json:"maxScore"`
	Dominant publicdomain.RiasecDescription `json:"dominant"`
	Careers  []string                       `json:"careers"`
	Majors   []majorResponse                `json:"majors"`
}

type estimateResponse struct {
	Subjects     map[string]int               `json:"subjects"`
	Total        int                          `json:"total"`
	MaxTotal     int                          `json:"maxTotal"`
	Major        *majorResponse               `json:"major,omitempty"`
	Threshold    *publicdomain.GrantThreshold `json:"threshold,omitempty"`
	Chance       *int                         `json:"chance,omitempty"`
	Level        string                       `json:"level,omitempty"`
	Gap          *int                         `json:"gap,omitempty"`
	Advice       string                       `json:"advice,omitempty"`
	Universities []universityResponse         `json:"universities"`
}

type thresholdResponse struct {
	Category string `json:"category"`
	Min      int    `json:"min"`
	Avg      int    `json:"avg"`
}

type chatMessageResponse struct {
	ID        string    `json:"id,omitempty"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type sessionUserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type sessionResponse struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expiresAt"`
	User      sessionUserResponse `json:"user"`
}

func buildUniversityResponse(u publicdomain.University) universityResponse {
	return universityResponse{
		ID:              u.ID,
		Slug:            u.Slug,
		Name:            u.Name,
		NameRu:          u.NameRu,
		Country:         u.Country,
		CountryRu:       u.CountryRu,
		City:            u.City,
		CityRu:          u.CityRu,
		Description:     u.Description,
		DescriptionRu:   u.DescriptionRu,
		LogoURL:         u.LogoURL,
		CoverImageURL:   u.CoverImageURL,
		Ranking:         u.Ranking,
		FoundedYear:     u.FoundedYear,
		Website:         u.Website,
		Email:           u.Email,
		Phone:           u.Phone,
		Address:         u.Address,
		AddressRu:       u.AddressRu,
		StudentsCount:   u.StudentsCount,
		HasHostel:       u.HasHostel,
		HasMilitaryDept: u.HasMilitaryDept,
		AcceptanceRate:  u.AcceptanceRate,
		TuitionFee:      u.TuitionFee,
		Accreditation:   u.Accreditation,
		UniversityType:  string(u.UniversityType),
	}
}

func buildUniversityResponses(items []publicdomain.University) []universityResponse {
	out := make([]universityResponse, 0, len(items))
	for _, u := range items {
		out = append(out, buildUniversityResponse(u))
	}
	return out
}

func buildMajorResponse(m publicdomain.Major) majorResponse {
	types := make([]string, 0, len(m.RiasecTypes))
	for _, t := range m.RiasecTypes {
		types = append(types, string(t))
	}
	subjects := m.SubjectCombination
	if subjects == nil {
		subjects = []string{}
	}
	return majorResponse{
		ID:                 m.ID,
		Code:               m.Code,
		Name:               m.Name,
		NameRu:             m.NameRu,
		Description:        m.Description,
		DescriptionRu:      m.DescriptionRu,
		Category:           string(m.Category),
		RiasecTypes:        types,
		SubjectCombination: subjects,
	}
}

func buildMajorResponses(items []publicdomain.Major) []majorResponse {
	out := make([]majorResponse, 0, len(items))
	for _, m := range items {
		out = append(out, buildMajorResponse(m))
	}
	return out
}

func buildEstimateResponse(e application.Estimate) estimateResponse {
	resp := estimateResponse{
		Subjects:     map[string]int(e.Subjects),
		Total:        e.Total,
		MaxTotal:     e.MaxTotal,
		Threshold:    e.Threshold,
		Advice:       e.Advice,
		Universities: buildUniversityResponses(e.Universities),
	}
	if e.Major != nil {
		major := buildMajorResponse(*e.Major)
		resp.Major = &major
	}
	if e.Threshold != nil {
		chance, gap := e.Chance, e.Gap
		resp.Chance = &chance
		resp.Gap = &gap
		resp.Level = string(e.Level)
	}
	return resp
}

func buildSessionResponse(s *application.Session) sessionResponse {
	return sessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User: sessionUserResponse{
			ID:          s.UserID,
			Email:       s.Email,
			DisplayName: s.DisplayName,
		},
	}
}
