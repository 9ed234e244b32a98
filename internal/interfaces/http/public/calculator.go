package public

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sngm3741/unikz/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/unikz/api/internal/public/application"
	publicdomain "github.com/sngm3741/unikz/api/internal/public/domain"
)

type estimateRequest struct {
	Scores  map[string]int `json:"scores"`
	MajorID string         `json:"majorId"`
}

func (h *Handler) calculatorSubjectsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"items":    h.calc.Subjects(),
			"maxTotal": publicdomain.MaxEntScore,
		})
	}
}

func (h *Handler) calculatorThresholdsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		thresholds := h.calc.Thresholds()
		items := make([]thresholdResponse, 0, len(thresholds))
		for _, category := range publicdomain.MajorCategories {
			t, ok := thresholds[category]
			if !ok {
				continue
			}
			items = append(items, thresholdResponse{Category: string(category), Min: t.Min, Avg: t.Avg})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) calculatorEstimateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var req estimateRequest
		if err := decodeJSON(r, common.MaxRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		estimate, err := h.calc.Estimate(ctx, common.UserIDFromContext(r.Context()), publicapp.EstimateCommand{
			Scores:  publicdomain.SubjectScores(req.Scores),
			MajorID: req.MajorID,
		})
		if errors.Is(err, publicapp.ErrNotFound) {
			common.WriteError(h.logger, w, http.StatusNotFound, msgMajorNotFound)
			return
		}
		if err != nil {
			h.logger.Printf("calculator estimate failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.GenericErrorMessage)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildEstimateResponse(estimate))
	}
}
