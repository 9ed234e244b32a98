package llm

import (
	"context"
	"time"

	"github.com/sngm3741/unikz/api/internal/public/application"
	"github.com/sngm3741/unikz/api/internal/public/domain"
)

// CompletionAdapter exposes a Streamer as the chat use-case's completion
// port. It applies the configured generation limits and timeout.
type CompletionAdapter struct {
	streamer    Streamer
	maxTokens   int
	temperature float64
	timeout     time.Duration
}

var _ application.CompletionStreamer = (*CompletionAdapter)(nil)

// NewCompletionAdapter binds a streamer to the generation settings in cfg.
func NewCompletionAdapter(s Streamer, cfg Config) *CompletionAdapter {
	return &CompletionAdapter{
		streamer:    s,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

func (a *CompletionAdapter) StreamCompletion(ctx context.Context, req application.CompletionRequest, emit func(string) error) error {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	msgs := make([]Message, 0, len(req.Turns))
	for _, t := range req.Turns {
		role := RoleUser
		if t.Role == domain.ChatRoleAssistant {
			role = RoleAssistant
		}
		msgs = append(msgs, Message{Role: role, Content: t.Content})
	}

	return a.streamer.Stream(ctx, Request{
		System:      req.System,
		Messages:    msgs,
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
	}, emit)
}
