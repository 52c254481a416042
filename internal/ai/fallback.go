package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/titleboost/titleboost/internal/hashtags"
	"github.com/titleboost/titleboost/internal/models"
)

// fallbackRewrite produces five template-based variants when the provider
// cannot be used.
func fallbackRewrite(title string) []string {
	title = strings.TrimSpace(title)
	year := time.Now().Year()
	return []string{
		fmt.Sprintf("%s (Step by Step)", title),
		fmt.Sprintf("%s - You Need to See This", title),
		fmt.Sprintf("The Ultimate Guide: %s", title),
		fmt.Sprintf("%s in %d", title, year),
		fmt.Sprintf("Why %s Is Trending Right Now", title),
	}
}

// fallbackIdeas produces templated content ideas from the keyword alone.
func fallbackIdeas(keyword string) []models.VideoIdea {
	keyword = strings.TrimSpace(keyword)
	tags := hashtags.FromTitle(keyword)
	if len(tags) > 3 {
		tags = tags[:3]
	}

	templates := []struct {
		title string
		desc  string
	}{
		{"%s for Beginners: Everything You Need to Know", "A complete beginner-friendly introduction to %s."},
		{"5 %s Mistakes Everyone Makes", "The most common %s mistakes and how to avoid them."},
		{"I Tried %s for 30 Days", "A 30-day experiment with %s and what actually changed."},
		{"%s vs The Alternatives: Honest Comparison", "How %s stacks up against the popular alternatives."},
		{"The Truth About %s Nobody Tells You", "What most videos about %s leave out."},
	}

	ideas := make([]models.VideoIdea, 0, len(templates))
	for _, tpl := range templates {
		ideas = append(ideas, models.VideoIdea{
			Title:       fmt.Sprintf(tpl.title, capitalize(keyword)),
			Description: fmt.Sprintf(tpl.desc, keyword),
			Hashtags:    tags,
		})
	}
	return ideas
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
