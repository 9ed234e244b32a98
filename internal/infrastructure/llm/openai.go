package llm

import (
	"context"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIStreamer talks to any OpenAI-compatible chat completion API. Groq is
// served through the same client with its own base URL.
type OpenAIStreamer struct {
	client   *openai.Client
	model    string
	provider string
}

// NewOpenAIStreamer creates a streamer for an OpenAI-compatible endpoint.
func NewOpenAIStreamer(provider, apiKey, baseURL, model string) (*OpenAIStreamer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s API key is required", provider)
	}
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIStreamer{
		client:   openai.NewClientWithConfig(config),
		model:    model,
		provider: provider,
	}, nil
}

func (p *OpenAIStreamer) Stream(ctx context.Context, req Request, emit func(string) error) error {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	stream, err := p.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    msgs,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
		Stream:      true,
	})
	if err != nil {
		return p.mapError(err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return p.mapError(err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if text := resp.Choices[0].Delta.Content; text != "" {
			if err := emit(text); err != nil {
				return err
			}
		}
	}
}

func (p *OpenAIStreamer) ModelID() string {
	return p.model
}

func (p *OpenAIStreamer) mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(p.provider, apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(p.provider, reqErr.HTTPStatusCode, err)
	}
	return classifyStatus(p.provider, 0, err)
}
