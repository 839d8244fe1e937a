package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	PostgresURL string

	RedisURL   string
	SessionTTL time.Duration

	CompletionProvider    string
	OpenAIAPIKey          string
	OpenAIModel           string
	GeminiAPIKey          string
	GeminiModel           string
	CompletionMaxTokens   int
	CompletionTemperature float32

	DemoUserEmail string
	DemoUserName  string
}

// Load reads the environment, after merging a .env file when one exists.
// Variables already set in the environment win over the file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to read .env file: %v", err)
	}

	return Config{
		Port:     getEnvWithDefault("PORT", "8080"),
		GinMode:  getEnvWithDefault("GIN_MODE", "release"),
		LogLevel: strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")),

		PostgresURL: os.Getenv("POSTGRES_URL"),

		RedisURL:   os.Getenv("REDIS_URL"),
		SessionTTL: getDurationWithDefault("SESSION_TTL", 24*time.Hour),

		CompletionProvider:    strings.ToLower(getEnvWithDefault("COMPLETION_PROVIDER", "openai")),
		OpenAIAPIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:           getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		GeminiModel:           getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		CompletionMaxTokens:   getIntWithDefault("COMPLETION_MAX_TOKENS", 1024),
		CompletionTemperature: float32(getFloatWithDefault("COMPLETION_TEMPERATURE", 0.7)),

		DemoUserEmail: getEnvWithDefault("DEMO_USER_EMAIL", "demo@example.com"),
		DemoUserName:  getEnvWithDefault("DEMO_USER_NAME", "Demo User"),
	}
}

// CompletionAPIKey returns the credential of the selected completion provider.
func (c Config) CompletionAPIKey() string {
	if c.CompletionProvider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getFloatWithDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		log.Printf("Invalid %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return f
}
