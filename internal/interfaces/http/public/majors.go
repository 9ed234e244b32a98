package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/unikz/api/internal/interfaces/http/common"
	publicdomain "github.com/sngm3741/unikz/api/internal/public/domain"
)

func (h *Handler) majorListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		category, err := common.MajorCategoryParam(query.Get("category"))
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Неизвестная категория")
			return
		}
		riasec, err := common.RiasecTypeParam(query.Get("riasec"))
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Неизвестный тип RIASEC")
			return
		}

		majors, err := h.catalog.ListMajors(ctx, publicdomain.MajorFilter{
			Query:      strings.TrimSpace(query.Get("query")),
			Category:   category,
			RiasecType: riasec,
		})
		if err != nil {
			h.logger.Printf("major list fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Не удалось загрузить список специальностей")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"items": buildMajorResponses(majors),
			"total": len(majors),
		})
	}
}

func (h *Handler) majorDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		major, err := h.catalog.MajorByID(ctx, id)
		if err != nil {
			h.writeLookupError(w, err, msgMajorNotFound, "major detail id="+id)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildMajorResponse(*major))
	}
}
