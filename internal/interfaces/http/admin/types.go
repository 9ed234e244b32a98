package admin

import (
	"time"

	adminapp "github.com/sngm3741/unikz/api/internal/admin/application"
	admindomain "github.com/sngm3741/unikz/api/internal/admin/domain"
)

type adminUniversityResponse struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	NameRu          string    `json:"nameRu"`
	Country         string    `json:"country"`
	CountryRu       string    `json:"countryRu"`
	City            string    `json:"city"`
	CityRu          string    `json:"cityRu"`
	Description     string    `json:"description"`
	DescriptionRu   string    `json:"descriptionRu"`
	LogoURL         string    `json:"logoUrl"`
	CoverImageURL   string    `json:"coverImageUrl"`
	Ranking         *int      `json:"ranking"`
	FoundedYear     *int      `json:"foundedYear"`
	Website         string    `json:"website"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	AddressRu       string    `json:"addressRu"`
	StudentsCount   *int      `json:"studentsCount"`
	HasHostel       bool      `json:"hasHostel"`
	HasMilitaryDept bool      `json:"hasMilitaryDept"`
	AcceptanceRate  *float64  `json:"acceptanceRate"`
	TuitionFee      *int      `json:"tuitionFee"`
	Accreditation   string    `json:"accreditation"`
	UniversityType  string    `json:"universityType"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// adminUniversityRequest is used for both POST and PATCH. Absent fields keep
// their current value on PATCH.
type adminUniversityRequest struct {
	Slug            *string  `json:"slug"`
	Name            *string  `json:"name"`
	NameRu          *string  `json:"nameRu"`
	Country         *string  `json:"country"`
	CountryRu       *string  `json:"countryRu"`
	City            *string  `json:"city"`
	CityRu          *string  `json:"cityRu"`
	Description     *string  `json:"description"`
	DescriptionRu   *string  `json:"descriptionRu"`
	LogoURL         *string  `json:"logoUrl"`
	CoverImageURL   *string  `json:"coverImageUrl"`
	Ranking         *int     `json:"ranking"`
	FoundedYear     *int     `json:"foundedYear"`
	Website         *string  `json:"website"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	Address         *string  `json:"address"`
	AddressRu       *string  `json:"addressRu"`
	StudentsCount   *int     `json:"studentsCount"`
	HasHostel       *bool    `json:"hasHostel"`
	HasMilitaryDept *bool    `json:"hasMilitaryDept"`
	AcceptanceRate  *float64 `json:"acceptanceRate"`
	TuitionFee      *int     `json:"tuitionFee"`
	Accreditation   *string  `json:"accreditation"`
	UniversityType  *string  `json:"universityType"`
}

type adminMajorResponse struct {
	ID                 string   `json:"id"`
	Code               string   `json:"code"`
	Name               string   `json:"name"`
	NameRu             string   `json:"nameRu"`
	Description        string   `json:"description"`
	DescriptionRu      string   `json:"descriptionRu"`
	Category           string   `json:"category"`
	RiasecTypes        []string `json:"riasecTypes"`
	SubjectCombination []string `json:"subjectCombination"`
}

type adminMajorRequest struct {
	Code               string   `json:"code"`
	Name               string   `json:"name"`
	NameRu             string   `json:"nameRu"`
	Description        string   `json:"description"`
	DescriptionRu      string   `json:"descriptionRu"`
	Category           string   `json:"category"`
	RiasecTypes        []string `json:"riasecTypes"`
	SubjectCombination []string `json:"subjectCombination"`
}

func (r adminMajorRequest) command() adminapp.UpsertMajorCommand {
	return adminapp.UpsertMajorCommand{
		Code:               r.Code,
		Name:               r.Name,
		NameRu:             r.NameRu,
		Description:        r.Description,
		DescriptionRu:      r.DescriptionRu,
		Category:           r.Category,
		RiasecTypes:        r.RiasecTypes,
		SubjectCombination: r.SubjectCombination,
	}
}

func adminUniversityToResponse(u admindomain.University) adminUniversityResponse {
	return adminUniversityResponse{
		ID:              u.ID,
		Slug:            u.Slug.String(),
		Name:            u.Name,
		NameRu:          u.NameRu,
		Country:         u.Country,
		CountryRu:       u.CountryRu,
		City:            u.City.String(),
		CityRu:          u.CityRu,
		Description:     u.Description,
		DescriptionRu:   u.DescriptionRu,
		LogoURL:         u.LogoURL.String(),
		CoverImageURL:   u.CoverImageURL.String(),
		Ranking:         u.Ranking.Ptr(),
		FoundedYear:     u.FoundedYear.Ptr(),
		Website:         u.Website.String(),
		Email:           u.Email.String(),
		Phone:           u.Phone,
		Address:         u.Address,
		AddressRu:       u.AddressRu,
		StudentsCount:   u.StudentsCount.Ptr(),
		HasHostel:       u.HasHostel,
		HasMilitaryDept: u.HasMilitaryDept,
		AcceptanceRate:  u.AcceptanceRate.Ptr(),
		TuitionFee:      u.TuitionFee.Ptr(),
		Accreditation:   u.Accreditation,
		UniversityType:  u.UniversityType.String(),
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func adminMajorToResponse(m admindomain.Major) adminMajorResponse {
	subjects := m.SubjectCombination
	if subjects == nil {
		subjects = []string{}
	}
	return adminMajorResponse{
		ID:                 m.ID,
		Code:               m.Code.String(),
		Name:               m.Name,
		NameRu:             m.NameRu,
		Description:        m.Description,
		DescriptionRu:      m.DescriptionRu,
		Category:           m.Category.String(),
		RiasecTypes:        m.RiasecTypes.Strings(),
		SubjectCombination: subjects,
	}
}
