// Package ai talks to an LLM provider for title scoring, rewriting and
// content ideas, and carries the fallback policy for when the provider is
// unconfigured, rate limited or out of quota.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/titleboost/titleboost/internal/config"
)

// Provider generates a completion for a prompt.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewProvider creates the configured provider, or nil when no credential
// is set. A nil provider means every call takes the fallback path.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	if !cfg.HasAIKey() {
		return nil, nil
	}

	switch cfg.AIProvider {
	case "gemini":
		model := cfg.AIModel
		if model == "" {
			model = "gemini-2.5-flash-lite"
		}
		return newGeminiProvider(ctx, cfg.GeminiAPIKey, model)
	case "openai":
		model := cfg.AIModel
		if model == "" {
			model = "gpt-4o-mini"
		}
		client := &http.Client{Timeout: 30 * time.Second}
		return &openaiProvider{
			apiKey:   cfg.OpenAIAPIKey,
			endpoint: cfg.OpenAIEndpoint,
			model:    model,
			client:   client,
		}, nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q", cfg.AIProvider)
	}
}
