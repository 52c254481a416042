package ai

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/titleboost/titleboost/internal/models"
	"github.com/titleboost/titleboost/internal/retry"
	"github.com/titleboost/titleboost/internal/scorer"
)

// Meta reports whether a result came from the local fallback path and why.
type Meta struct {
	FallbackUsed bool   `json:"fallbackUsed"`
	Message      string `json:"message,omitempty"`
}

const (
	msgNoCredential = "AI credential not configured; result produced by the built-in analyzer."
	msgQuota        = "AI quota exhausted; result produced by the built-in analyzer."
	msgBadReply     = "AI reply could not be used; result produced by the built-in analyzer."
)

// Service applies the shared provider policy to every AI-backed operation:
// no credential or exhausted quota falls back locally, rate limits are
// retried and then surfaced, anything else is surfaced as-is.
type Service struct {
	provider  Provider
	retryOpts retry.Options
}

// NewService wraps a provider (which may be nil for the always-fallback
// mode) with the retry schedule.
func NewService(provider Provider, retryOpts retry.Options) *Service {
	return &Service{provider: provider, retryOpts: retryOpts}
}

// Configured reports whether a remote provider is available at all.
func (s *Service) Configured() bool {
	return s.provider != nil
}

// IsQuota reports whether err is a quota/billing exhaustion signal, which
// must fall back immediately instead of retrying or erroring.
func IsQuota(err error) bool {
	if err == nil || retry.IsRateLimit(err) {
		return false
	}
	var httpErr *retry.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusPaymentRequired {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") || strings.Contains(msg, "billing")
}

// ScoreTitle scores a title with the provider, falling back to the
// heuristic scorer per the policy above.
func (s *Service) ScoreTitle(ctx context.Context, title string) (models.TitleScore, Meta, error) {
	if s.provider == nil {
		return scorer.Score(title), Meta{FallbackUsed: true, Message: msgNoCredential}, nil
	}

	content, err := s.complete(ctx, scorePrompt(title))
	if err != nil {
		if IsQuota(err) {
			log.Printf("WARN: AI quota exhausted, scoring heuristically: %v", err)
			return scorer.Score(title), Meta{FallbackUsed: true, Message: msgQuota}, nil
		}
		return models.TitleScore{}, Meta{}, err
	}

	score, perr := parseScoreReply(content)
	if perr != nil {
		log.Printf("WARN: unusable score reply, scoring heuristically: %v", perr)
		return scorer.Score(title), Meta{FallbackUsed: true, Message: msgBadReply}, nil
	}
	return score, Meta{}, nil
}

// Rewrite produces five title variants, falling back to templates.
func (s *Service) Rewrite(ctx context.Context, title string) ([]string, Meta, error) {
	if s.provider == nil {
		return fallbackRewrite(title), Meta{FallbackUsed: true, Message: msgNoCredential}, nil
	}

	content, err := s.complete(ctx, rewritePrompt(title))
	if err != nil {
		if IsQuota(err) {
			log.Printf("WARN: AI quota exhausted, using template rewrite: %v", err)
			return fallbackRewrite(title), Meta{FallbackUsed: true, Message: msgQuota}, nil
		}
		return nil, Meta{}, err
	}

	variants, perr := parseRewriteReply(content)
	if perr != nil {
		log.Printf("WARN: unusable rewrite reply, using templates: %v", perr)
		return fallbackRewrite(title), Meta{FallbackUsed: true, Message: msgBadReply}, nil
	}
	return variants, Meta{}, nil
}

// Ideas produces content ideas for a keyword, falling back to templates.
func (s *Service) Ideas(ctx context.Context, keyword string) ([]models.VideoIdea, Meta, error) {
	if s.provider == nil {
		return fallbackIdeas(keyword), Meta{FallbackUsed: true, Message: msgNoCredential}, nil
	}

	content, err := s.complete(ctx, ideasPrompt(keyword))
	if err != nil {
		if IsQuota(err) {
			log.Printf("WARN: AI quota exhausted, using template ideas: %v", err)
			return fallbackIdeas(keyword), Meta{FallbackUsed: true, Message: msgQuota}, nil
		}
		return nil, Meta{}, err
	}

	ideas, perr := parseIdeasReply(content)
	if perr != nil {
		log.Printf("WARN: unusable ideas reply, using templates: %v", perr)
		return fallbackIdeas(keyword), Meta{FallbackUsed: true, Message: msgBadReply}, nil
	}
	return ideas, Meta{}, nil
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	return retry.Do(ctx, s.retryOpts, func(ctx context.Context) (string, error) {
		return s.provider.Complete(ctx, prompt)
	})
}
