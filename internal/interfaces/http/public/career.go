package public

import (
	"context"
	"net/http"
	"time"

	"github.com/sngm3741/unikz/api/internal/interfaces/http/common"
	publicdomain "github.com/sngm3741/unikz/api/internal/public/domain"
)

type careerEvaluateRequest struct {
	Answers publicdomain.Answers `json:"answers"`
}

type careerSessionRequest struct {
	State *publicdomain.QuizSession `json:"state"`
	Event publicdomain.QuizEvent    `json:"event"`
}

type careerSessionResponse struct {
	State    publicdomain.QuizSession `json:"state"`
	Question *publicdomain.Question   `json:"question,omitempty"`
	Total    int                      `json:"total"`
}

func (h *Handler) careerQuestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		questions := h.career.Questions()
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"items": questions,
			"total": len(questions),
		})
	}
}

func (h *Handler) careerTypesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": h.career.Types()})
	}
}

func (h *Handler) careerEvaluateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var req careerEvaluateRequest
		if err := decodeJSON(r, common.MaxRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		result, err := h.career.Evaluate(ctx, common.UserIDFromContext(r.Context()), req.Answers)
		if err != nil {
			h.logger.Printf("career evaluate failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.GenericErrorMessage)
			return
		}

		resp := careerResultResponse{
			Scores:   result.Scores,
			Profile:  result.Profile,
			MaxScore: result.Profile.MaxScore,
			Careers:  result.Recommendation.Careers,
			Majors:   buildMajorResponses(result.Recommendation.Majors),
		}
		if resp.Careers == nil {
			resp.Careers = []string{}
		}
		for _, d := range h.career.Types() {
			if d.Type == result.Profile.Dominant.Type {
				resp.Dominant = d
				break
			}
		}
		common.WriteJSON(h.logger, w, http.StatusOK, resp)
	}
}

// careerSessionHandler applies one quiz event to the client-held state.
func (h *Handler) careerSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req careerSessionRequest
		if err := decodeJSON(r, common.MaxRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		state := publicdomain.NewQuizSession()
		if req.State != nil {
			state = *req.State
		}
		next := h.career.Advance(state, req.Event)

		questions := h.career.Questions()
		resp := careerSessionResponse{State: next, Total: len(questions)}
		if next.Phase == publicdomain.PhaseQuiz && next.Current >= 0 && next.Current < len(questions) {
			q := questions[next.Current]
			resp.Question = &q
		}
		common.WriteJSON(h.logger, w, http.StatusOK, resp)
	}
}
