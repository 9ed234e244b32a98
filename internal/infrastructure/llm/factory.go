package llm

import (
	"context"
	"fmt"
	"log"
)

// NewStreamer creates a Streamer from the config, wrapped with logging.
func NewStreamer(ctx context.Context, cfg Config, logger *log.Logger) (Streamer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var s Streamer
	var err error
	switch cfg.Provider {
	case "groq":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = groqBaseURL
		}
		s, err = NewOpenAIStreamer("groq", cfg.APIKey, baseURL, cfg.Model)
	case "openai":
		s, err = NewOpenAIStreamer("openai", cfg.APIKey, cfg.BaseURL, cfg.Model)
	case "gemini":
		s, err = NewGeminiStreamer(ctx, cfg.APIKey, cfg.Model)
	case "anthropic":
		s, err = NewAnthropicStreamer(cfg.APIKey, cfg.Model)
	case "mock":
		s = NewMockStreamer()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return WithLogging(s, cfg.Provider, logger), nil
}
