package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sngm3741/unikz/api/internal/infrastructure/llm"
)

// JWTConfig holds the signing parameters of session tokens.
type JWTConfig struct {
	Issuer   string
	Audience string
	Secret   []byte
	TTL      time.Duration
}

// Collections names every Mongo collection the API touches.
type Collections struct {
	Universities string
	Majors       string
	Users        string
	Credentials  string
	QuizResults  string
	EntScores    string
	Chat         string
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                 string
	MongoURI             string
	MongoDatabase        string
	Collections          Collections
	Timeout              time.Duration
	ServerLog            *log.Logger
	JWT                  JWTConfig
	AdminToken           string
	AllowedOrigins       []string
	QuestionsPerCategory int
	RecordTimeout        time.Duration
	HistoryWindow        int
	LLM                  llm.Config
}

// Load reads environment variables (and an optional .env file) and returns
// a fully populated Config.
func Load() Config {
	logger := log.New(os.Stdout, "[unikz-api] ", log.LstdFlags|log.Lshortfile)
	if err := godotenv.Load(); err == nil {
		logger.Printf("loaded .env")
	}

	secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET must be configured")
	}

	llmConfig := llm.ConfigFromEnv()
	if err := llmConfig.Validate(); err != nil {
		log.Fatalf("invalid LLM configuration: %v", err)
	}

	cfg := Config{
		Addr:          envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:      envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase: envOrDefault("MONGO_DB", "unikz"),
		Collections: Collections{
			Universities: envOrDefault("UNIVERSITY_COLLECTION", "universities"),
			Majors:       envOrDefault("MAJOR_COLLECTION", "majors"),
			Users:        envOrDefault("USER_COLLECTION", "users"),
			Credentials:  envOrDefault("CREDENTIAL_COLLECTION", "credentials"),
			QuizResults:  envOrDefault("QUIZ_RESULT_COLLECTION", "quizResults"),
			EntScores:    envOrDefault("ENT_SCORE_COLLECTION", "entScores"),
			Chat:         envOrDefault("CHAT_COLLECTION", "chatHistory"),
		},
		Timeout:   parseDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		ServerLog: logger,
		JWT: JWTConfig{
			Issuer:   envOrDefault("AUTH_JWT_ISSUER", "unikz-auth"),
			Audience: envOrDefault("AUTH_JWT_AUDIENCE", "unikz-web"),
			Secret:   []byte(secret),
			TTL:      parseDuration("AUTH_TOKEN_TTL", 7*24*time.Hour),
		},
		AdminToken:           strings.TrimSpace(os.Getenv("ADMIN_API_TOKEN")),
		AllowedOrigins:       parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		QuestionsPerCategory: parseInt("QUIZ_QUESTIONS_PER_CATEGORY", 0),
		RecordTimeout:        parseDuration("RECORD_WRITE_TIMEOUT", 5*time.Second),
		HistoryWindow:        parseInt("LLM_HISTORY_WINDOW", 20),
		LLM:                  llmConfig,
	}

	cfg.ServerLog.Printf("loaded config: db=%q llmProvider=%q llmModel=%q adminRoutes=%t",
		cfg.MongoDatabase, cfg.LLM.Provider, cfg.LLM.Model, cfg.AdminToken != "")

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	if raw := strings.TrimSpace(os.Getenv(key)); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func parseInt(key string, fallback int) int {
	if raw := strings.TrimSpace(os.Getenv(key)); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
