package admin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	adminapp "github.com/sngm3741/unikz/api/internal/admin/application"
	"github.com/sngm3741/unikz/api/internal/interfaces/http/common"
)

func (h *Handler) majorSearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := adminapp.MajorFilter{
			Category: strings.TrimSpace(query.Get("category")),
			Keyword:  strings.TrimSpace(query.Get("keyword")),
		}
		limit, _ := common.ParsePositiveInt(query.Get("limit"), common.DefaultPageLimit)

		majors, err := h.majors.List(ctx, filter, adminapp.Paging{Limit: limit})
		if err != nil {
			h.writeServiceError(w, err, "major search")
			return
		}

		items := make([]adminMajorResponse, 0, len(majors))
		for _, m := range majors {
			items = append(items, adminMajorToResponse(m))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) majorCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminMajorRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		major, err := h.majors.Create(ctx, req.command())
		if err != nil {
			h.writeServiceError(w, err, "major create")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, adminMajorToResponse(*major))
	}
}
