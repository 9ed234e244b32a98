package admin

import (
	"errors"
	"net/http"
	"strings"

	adminapp "github.com/sngm3741/unikz/api/internal/admin/application"
	admindomain "github.com/sngm3741/unikz/api/internal/admin/domain"
	"github.com/sngm3741/unikz/api/internal/interfaces/http/common"
)

// writeServiceError maps admin service errors onto status codes. Validation
// messages are returned verbatim since they come from value objects.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, admindomain.ErrInvalid):
		common.WriteError(h.logger, w, http.StatusBadRequest, strings.TrimPrefix(err.Error(), admindomain.ErrInvalid.Error()+": "))
	case errors.Is(err, adminapp.ErrDuplicate):
		common.WriteError(h.logger, w, http.StatusConflict, "already exists")
	case errors.Is(err, adminapp.ErrNotFound):
		common.WriteError(h.logger, w, http.StatusNotFound, "not found")
	default:
		h.logger.Printf("admin %s failed: %v", op, err)
		common.WriteError(h.logger, w, http.StatusInternalServerError, "internal error")
	}
}

// universityInput converts a stored university back into raw input so a
// PATCH can overlay only the fields it carries.
func universityInput(u admindomain.University) adminapp.UpsertUniversityCommand {
	return adminapp.UpsertUniversityCommand{
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
	}
}

// apply overlays the fields present in req onto cmd.
func (req adminUniversityRequest) apply(cmd *adminapp.UpsertUniversityCommand) {
	setString(&cmd.Slug, req.Slug)
	setString(&cmd.Name, req.Name)
	setString(&cmd.NameRu, req.NameRu)
	setString(&cmd.Country, req.Country)
	setString(&cmd.CountryRu, req.CountryRu)
	setString(&cmd.City, req.City)
	setString(&cmd.CityRu, req.CityRu)
	setString(&cmd.Description, req.Description)
	setString(&cmd.DescriptionRu, req.DescriptionRu)
	setString(&cmd.LogoURL, req.LogoURL)
	setString(&cmd.CoverImageURL, req.CoverImageURL)
	setString(&cmd.Website, req.Website)
	setString(&cmd.Email, req.Email)
	setString(&cmd.Phone, req.Phone)
	setString(&cmd.Address, req.Address)
	setString(&cmd.AddressRu, req.AddressRu)
	setString(&cmd.Accreditation, req.Accreditation)
	setString(&cmd.UniversityType, req.UniversityType)
	if req.Ranking != nil {
		cmd.Ranking = req.Ranking
	}
	if req.FoundedYear != nil {
		cmd.FoundedYear = req.FoundedYear
	}
	if req.StudentsCount != nil {
		cmd.StudentsCount = req.StudentsCount
	}
	if req.AcceptanceRate != nil {
		cmd.AcceptanceRate = req.AcceptanceRate
	}
	if req.TuitionFee != nil {
		cmd.TuitionFee = req.TuitionFee
	}
	if req.HasHostel != nil {
		cmd.HasHostel = *req.HasHostel
	}
	if req.HasMilitaryDept != nil {
		cmd.HasMilitaryDept = *req.HasMilitaryDept
	}
}

func setString(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}
