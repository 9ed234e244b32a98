package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the completion provider configuration.
type Config struct {
	// Provider selects the backend.
	// Values: "groq", "openai", "gemini", "anthropic", "mock"
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int

	// Timeout bounds a whole streamed reply.
	Timeout time.Duration
}

const groqBaseURL = "https://api.groq.com/openai/v1"

var defaultModels = map[string]string{
	"groq":      "llama-3.3-70b-versatile",
	"openai":    "gpt-4o-mini",
	"gemini":    "gemini-flash",
	"anthropic": "claude-haiku",
	"mock":      "mock",
}

// DefaultConfig returns the Groq configuration the assistant ships with.
func DefaultConfig() Config {
	return Config{
		Provider:    "groq",
		Model:       defaultModels["groq"],
		BaseURL:     groqBaseURL,
		Temperature: 0.7,
		MaxTokens:   1024,
		Timeout:     60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from LLM_* variables. GROQ_API_KEY is
// accepted as a fallback key for the groq provider.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER"))); p != "" {
		cfg.Provider = p
		cfg.Model = defaultModels[p]
		if p != "groq" {
			cfg.BaseURL = ""
		}
	}
	if m := strings.TrimSpace(os.Getenv("LLM_MODEL")); m != "" {
		cfg.Model = m
	}
	if u := strings.TrimSpace(os.Getenv("LLM_BASE_URL")); u != "" {
		cfg.BaseURL = u
	}

	cfg.APIKey = strings.TrimSpace(os.Getenv("LLM_API_KEY"))
	if cfg.APIKey == "" && cfg.Provider == "groq" {
		cfg.APIKey = strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	}

	if raw := strings.TrimSpace(os.Getenv("LLM_TEMPERATURE")); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			cfg.Temperature = v
		}
	}
	if raw := strings.TrimSpace(os.Getenv("LLM_MAX_TOKENS")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			cfg.MaxTokens = v
		}
	}
	if raw := strings.TrimSpace(os.Getenv("LLM_TIMEOUT")); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil && v > 0 {
			cfg.Timeout = v
		}
	}
	return cfg
}

// Validate checks that the selected provider has what it needs.
func (c Config) Validate() error {
	switch c.Provider {
	case "groq", "openai", "gemini", "anthropic":
		if c.APIKey == "" {
			return fmt.Errorf("LLM_API_KEY is required for the %s provider", c.Provider)
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2, got %v", c.Temperature)
	}
	return nil
}
