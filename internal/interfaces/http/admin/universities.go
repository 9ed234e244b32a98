package admin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/sngm3741/unikz/api/internal/admin/application"
	"github.com/sngm3741/unikz/api/internal/interfaces/http/common"
)

func (h *Handler) universitySearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := adminapp.UniversityFilter{
			City:    strings.TrimSpace(query.Get("city")),
			Keyword: strings.TrimSpace(query.Get("keyword")),
		}
		limit, _ := common.ParsePositiveInt(query.Get("limit"), common.DefaultPageLimit)

		universities, err := h.universities.List(ctx, filter, adminapp.Paging{Limit: limit})
		if err != nil {
			h.writeServiceError(w, err, "university search")
			return
		}

		items := make([]adminUniversityResponse, 0, len(universities))
		for _, u := range universities {
			items = append(items, adminUniversityToResponse(u))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) universityDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		university, err := h.universities.Detail(ctx, id)
		if err != nil {
			h.writeServiceError(w, err, "university detail id="+id)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, adminUniversityToResponse(*university))
	}
}

func (h *Handler) universityCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminUniversityRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var cmd adminapp.UpsertUniversityCommand
		req.apply(&cmd)
		university, err := h.universities.Create(ctx, cmd)
		if err != nil {
			h.writeServiceError(w, err, "university create")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, adminUniversityToResponse(*university))
	}
}

func (h *Handler) universityUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		var req adminUniversityRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		current, err := h.universities.Detail(ctx, id)
		if err != nil {
			h.writeServiceError(w, err, "university load id="+id)
			return
		}
		cmd := universityInput(*current)
		req.apply(&cmd)

		updated, err := h.universities.Update(ctx, id, cmd)
		if err != nil {
			h.writeServiceError(w, err, "university update id="+id)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, adminUniversityToResponse(*updated))
	}
}
