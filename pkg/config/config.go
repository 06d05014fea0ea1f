package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded once at startup
type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
	Store  StoreConfig
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Port        int
	Environment string
	LogLevel    string
}

// OpenAIConfig configures the chat completion client
type OpenAIConfig struct {
	APIKey string
	Model  string

	// Generation parameters per operation
	QuestionTemperature float64
	QuestionMaxTokens   int64
	FeedbackTemperature float64
	FeedbackMaxTokens   int64
}

// StoreConfig selects and configures the session store backend
type StoreConfig struct {
	// Backend is one of "memory", "redis", "postgres"
	Backend string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PostgresDSN string
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// Load reads configuration from the environment. A .env file is applied
// first when present. The OpenAI API key is required; everything else
// has a default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvInt("PORT", 3000),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		OpenAI: OpenAIConfig{
			APIKey:              apiKey,
			Model:               getEnv("OPENAI_MODEL", "gpt-4"),
			QuestionTemperature: getEnvFloat("QUESTION_TEMPERATURE", 0.2),
			QuestionMaxTokens:   int64(getEnvInt("QUESTION_MAX_TOKENS", 100)),
			FeedbackTemperature: getEnvFloat("FEEDBACK_TEMPERATURE", 0.3),
			FeedbackMaxTokens:   int64(getEnvInt("FEEDBACK_MAX_TOKENS", 150)),
		},
		Store: StoreConfig{
			Backend:       getEnv("SESSION_STORE", "memory"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			PostgresDSN:   os.Getenv("DATABASE_URL"),
		},
	}

	switch cfg.Store.Backend {
	case "memory", "redis":
	case "postgres":
		if cfg.Store.PostgresDSN == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when SESSION_STORE=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q (expected memory, redis or postgres)", cfg.Store.Backend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
