package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/unikz/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/unikz/api/internal/public/application"
	publicdomain "github.com/sngm3741/unikz/api/internal/public/domain"
)

func (h *Handler) universityListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		universityType, err := common.UniversityTypeParam(query.Get("type"))
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Неизвестный тип университета")
			return
		}

		filter := publicdomain.UniversityFilter{
			Query:           strings.TrimSpace(query.Get("query")),
			City:            common.CityParam(query.Get("city")),
			UniversityType:  universityType,
			HasHostel:       common.ParseFlag(query.Get("hasHostel")),
			HasMilitaryDept: common.ParseFlag(query.Get("hasMilitaryDept")),
		}
		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit := common.ParseLimit(query.Get("limit"))

		result, err := h.catalog.ListUniversities(ctx, filter, publicapp.Paging{Page: page, Limit: limit})
		if err != nil {
			h.logger.Printf("university list fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Не удалось загрузить список университетов")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, universityListResponse{
			Items: buildUniversityResponses(result.Items),
			Page:  result.Page,
			Limit: limit,
			Total: result.Total,
		})
	}
}

func (h *Handler) universityCitiesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		cities, err := h.catalog.Cities(ctx)
		if err != nil {
			h.logger.Printf("city list fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.GenericErrorMessage)
			return
		}

		items := make([]cityResponse, 0, len(cities))
		for _, c := range cities {
			items = append(items, cityResponse{Code: c.Code, NameRu: c.NameRu, Count: c.Count})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) universityDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		university, err := h.catalog.UniversityBySlug(ctx, slug)
		if err != nil {
			h.writeLookupError(w, err, msgUniversityNotFound, "university detail slug="+slug)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildUniversityResponse(*university))
	}
}
