package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sngm3741/unikz/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/unikz/api/internal/public/application"
	publicdomain "github.com/sngm3741/unikz/api/internal/public/domain"
)

const msgMessagesRequired = "Messages required"

type chatMessagePayload struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []chatMessagePayload `json:"messages"`
}

// sseWriter commits the event-stream headers on the first frame so that a
// failure before any content can still be answered with a JSON error.
type sseWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	started bool
}

func (s *sseWriter) start() {
	if s.started {
		return
	}
	s.started = true
	header := s.w.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	s.w.WriteHeader(http.StatusOK)
}

func (s *sseWriter) frame(data string) error {
	s.start()
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		return err
	}
	if s.flusher != nil {
		s.flusher.Flush()
	}
	return nil
}

func (s *sseWriter) event(payload any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.frame(string(encoded))
}

func (h *Handler) chatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := decodeJSON(r, common.MaxChatRequestBody, &req); err != nil || req.Messages == nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, msgMessagesRequired)
			return
		}

		turns := make([]publicdomain.ChatMessage, 0, len(req.Messages))
		for _, m := range req.Messages {
			turns = append(turns, publicdomain.ChatMessage{
				Role:    publicdomain.ChatRole(m.Role),
				Content: m.Content,
			})
		}

		flusher, _ := w.(http.Flusher)
		stream := &sseWriter{w: w, flusher: flusher}

		err := h.chat.Stream(r.Context(), common.UserIDFromContext(r.Context()), turns, func(fragment string) error {
			return stream.event(map[string]string{"content": fragment})
		})
		switch {
		case err == nil:
			if err := stream.frame("[DONE]"); err != nil {
				h.logger.Printf("chat stream close failed: %v", err)
			}
		case errors.Is(err, publicapp.ErrMessagesRequired):
			common.WriteError(h.logger, w, http.StatusBadRequest, msgMessagesRequired)
		case errors.Is(err, context.Canceled):
			// client went away; nothing left to write
		case !stream.started:
			h.logger.Printf("chat completion failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.GenericErrorMessage)
		default:
			h.logger.Printf("chat stream aborted: %v", err)
			_ = stream.event(map[string]string{"error": common.GenericErrorMessage})
		}
	}
}

func (h *Handler) chatHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		messages, err := h.chat.History(ctx, common.UserIDFromContext(r.Context()))
		if err != nil {
			h.writeLookupError(w, err, "История не найдена", "chat history")
			return
		}

		items := make([]chatMessageResponse, 0, len(messages))
		for _, m := range messages {
			items = append(items, chatMessageResponse{
				ID:        m.ID,
				Role:      string(m.Role),
				Content:   m.Content,
				CreatedAt: m.CreatedAt,
			})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}
