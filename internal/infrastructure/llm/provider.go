package llm

import "context"

// Streamer is the core abstraction for streaming chat completions.
type Streamer interface {
	// Stream sends the conversation and calls emit once per non-empty text
	// fragment, in arrival order. An error returned by emit stops the stream
	// and is returned unchanged.
	Stream(ctx context.Context, req Request, emit func(fragment string) error) error

	// ModelID returns the model identifier this streamer is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Message is a single turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
