package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service. It is loaded once at
// startup and injected into each service; handlers never read the
// environment themselves.
type Config struct {
	Port             string
	YouTubeAPIKey    string
	AIProvider       string // "openai" or "gemini"
	OpenAIAPIKey     string
	OpenAIEndpoint   string
	GeminiAPIKey     string
	AIModel          string
	MaxRetries       int
	RetryBaseDelay   time.Duration
	TrendingRegion   string
	TrendingRegionUS string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		YouTubeAPIKey:    getEnv("YOUTUBE_API_KEY", ""),
		AIProvider:       getEnv("AI_PROVIDER", "openai"),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIEndpoint:   getEnv("OPENAI_ENDPOINT", "https://api.openai.com/v1/chat/completions"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		AIModel:          getEnv("AI_MODEL", ""),
		MaxRetries:       getEnvInt("MAX_RETRIES", 3),
		RetryBaseDelay:   time.Duration(getEnvInt("RETRY_BASE_DELAY_MS", 1000)) * time.Millisecond,
		TrendingRegion:   getEnv("TRENDING_REGION", "IN"),
		TrendingRegionUS: getEnv("TRENDING_REGION_US", "US"),
	}
}

// HasYouTubeKey reports whether the YouTube Data API can be called at all.
func (c *Config) HasYouTubeKey() bool {
	return c.YouTubeAPIKey != ""
}

// HasAIKey reports whether the configured AI provider has a credential.
func (c *Config) HasAIKey() bool {
	switch c.AIProvider {
	case "gemini":
		return c.GeminiAPIKey != ""
	default:
		return c.OpenAIAPIKey != ""
	}
}

// Validate checks for configuration combinations that can never work.
// Missing keys are not fatal: the service degrades per-endpoint instead.
func (c *Config) Validate() error {
	if c.AIProvider != "openai" && c.AIProvider != "gemini" {
		return fmt.Errorf("unknown AI_PROVIDER %q (valid: openai, gemini)", c.AIProvider)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("MAX_RETRIES must be at least 1")
	}
	if c.RetryBaseDelay <= 0 {
		return fmt.Errorf("RETRY_BASE_DELAY_MS must be positive")
	}
	return nil
}

// getEnv returns an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default value.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}
