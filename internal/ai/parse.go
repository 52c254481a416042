package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/titleboost/titleboost/internal/models"
)

// stripFences removes markdown code fences some models insist on adding.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// parseScoreReply validates the scoring reply. A reply that is not JSON or
// lacks a required key is an error; the caller falls back to the heuristic.
func parseScoreReply(content string) (models.TitleScore, error) {
	var raw struct {
		Overall      *int           `json:"overall"`
		Breakdown    map[string]int `json:"breakdown"`
		Improvements []string       `json:"improvements"`
		Strengths    []string       `json:"strengths"`
	}
	if err := json.Unmarshal([]byte(stripFences(content)), &raw); err != nil {
		return models.TitleScore{}, fmt.Errorf("score reply is not JSON: %w", err)
	}
	if raw.Overall == nil {
		return models.TitleScore{}, fmt.Errorf("score reply missing %q", "overall")
	}
	if raw.Breakdown == nil {
		return models.TitleScore{}, fmt.Errorf("score reply missing %q", "breakdown")
	}
	for _, key := range []string{
		models.CategoryLength, models.CategoryKeywords, models.CategoryEngagement,
		models.CategoryClarity, models.CategoryTrending,
	} {
		if _, ok := raw.Breakdown[key]; !ok {
			return models.TitleScore{}, fmt.Errorf("score reply missing breakdown key %q", key)
		}
	}

	score := models.TitleScore{
		Overall:      clampScore(*raw.Overall),
		Breakdown:    make(map[string]int, len(raw.Breakdown)),
		Improvements: raw.Improvements,
		Strengths:    raw.Strengths,
	}
	for k, v := range raw.Breakdown {
		score.Breakdown[k] = clampScore(v)
	}
	if len(score.Improvements) > 4 {
		score.Improvements = score.Improvements[:4]
	}
	if len(score.Strengths) > 3 {
		score.Strengths = score.Strengths[:3]
	}
	if score.Improvements == nil {
		score.Improvements = []string{}
	}
	if score.Strengths == nil {
		score.Strengths = []string{}
	}
	return score, nil
}

// parseRewriteReply extracts up to five variant lines, stripping any
// numbering or bullets the model added anyway.
func parseRewriteReply(content string) ([]string, error) {
	variants := []string{}
	for _, line := range strings.Split(stripFences(content), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "•-* ")
		line = stripNumbering(line)
		if line == "" {
			continue
		}
		variants = append(variants, line)
		if len(variants) == 5 {
			break
		}
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("rewrite reply contained no variants")
	}
	return variants, nil
}

// stripNumbering removes leading "1. " / "2) " style prefixes.
func stripNumbering(line string) string {
	for i, c := range line {
		if c >= '0' && c <= '9' {
			continue
		}
		if c == '.' || c == ')' {
			if i > 0 {
				return strings.TrimSpace(line[i+1:])
			}
		}
		break
	}
	return line
}

// parseIdeasReply validates the content-ideas reply.
func parseIdeasReply(content string) ([]models.VideoIdea, error) {
	var ideas []models.VideoIdea
	if err := json.Unmarshal([]byte(stripFences(content)), &ideas); err != nil {
		return nil, fmt.Errorf("ideas reply is not JSON: %w", err)
	}
	if len(ideas) == 0 {
		return nil, fmt.Errorf("ideas reply is empty")
	}
	for _, idea := range ideas {
		if idea.Title == "" {
			return nil, fmt.Errorf("ideas reply has an entry without a title")
		}
	}
	if len(ideas) > 5 {
		ideas = ideas[:5]
	}
	return ideas, nil
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
