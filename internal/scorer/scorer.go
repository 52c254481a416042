package scorer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/titleboost/titleboost/internal/models"
)

// Fixed vocabulary for the scoring rubric. These lists are part of the
// scoring contract: changing them changes every fallback score.
var (
	intentKeywords = []string{
		"how to", "best", "top", "guide", "tutorial",
		"review", "tips", "tricks", "easy", "free",
	}

	trendWords = []string{
		"2024", "2025", "new", "viral", "latest", "trending",
	}

	powerWords = []string{
		"amazing", "insane", "ultimate", "secret",
		"shocking", "incredible", "epic", "crazy",
	}

	formatWords = []string{
		"vs", "reaction", "challenge", "unboxing", "review", "shorts", "live",
	}
)

var uppercaseRun = regexp.MustCompile(`[A-Z]{2,}`)

// Score computes the heuristic engagement score for a title. It is pure
// apart from reading the current calendar year, which feeds the trending
// sub-score.
func Score(title string) models.TitleScore {
	return scoreWithYear(title, time.Now().Year())
}

func scoreWithYear(title string, year int) models.TitleScore {
	breakdown := map[string]int{
		models.CategoryLength:     lengthScore(title),
		models.CategoryKeywords:   keywordScore(title),
		models.CategoryEngagement: engagementScore(title),
		models.CategoryClarity:    clarityScore(title),
		models.CategoryTrending:   trendingScore(title, year),
	}

	sum := 0
	for _, v := range breakdown {
		sum += v
	}
	overall := int(math.Round(float64(sum) / 5.0))

	return models.TitleScore{
		Overall:      overall,
		Breakdown:    breakdown,
		Improvements: generateImprovements(breakdown),
		Strengths:    generateStrengths(breakdown),
	}
}

// lengthScore is a banded function of character count: 50-60 is the sweet
// spot, nearby bands degrade stepwise, everything else hits the floor.
// Counted in runes, not bytes, so Devanagari and other non-ASCII titles
// land in the right band.
func lengthScore(title string) int {
	n := utf8.RuneCountInString(title)
	switch {
	case n >= 50 && n <= 60:
		return 100
	case (n >= 40 && n <= 49) || (n >= 61 && n <= 70):
		return 80
	case n >= 71 && n <= 80:
		return 60
	default:
		return 40
	}
}

func keywordScore(title string) int {
	lower := strings.ToLower(title)
	score := 50
	for _, kw := range intentKeywords {
		if strings.Contains(lower, kw) {
			score += 10
		}
	}
	for _, tw := range trendWords {
		if strings.Contains(lower, tw) {
			score += 5
		}
	}
	return min(score, 100)
}

func engagementScore(title string) int {
	lower := strings.ToLower(title)
	score := 40
	for _, pw := range powerWords {
		if strings.Contains(lower, pw) {
			score += 8
		}
	}
	if strings.ContainsFunc(title, unicode.IsDigit) {
		score += 15
	}
	if strings.Contains(title, "?") {
		score += 10
	}
	if strings.Contains(title, "!") {
		score += 5
	}
	if uppercaseRun.MatchString(title) {
		score += 10
	}
	return min(score, 100)
}

func clarityScore(title string) int {
	score := 70

	punctuation := 0
	for _, r := range title {
		if strings.ContainsRune("!?.,;:", r) {
			punctuation++
		}
	}
	if punctuation > 3 {
		score -= 20
	}

	if strings.ContainsAny(title, ":-") {
		score += 10
	}

	letters, uppers := 0, 0
	for _, r := range title {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
	}
	if letters > 0 && float64(uppers)/float64(letters) > 0.3 {
		score -= 15
	}

	if score < 20 {
		return 20
	}
	return min(score, 100)
}

func trendingScore(title string, year int) int {
	lower := strings.ToLower(title)
	score := 50
	for _, fw := range formatWords {
		if containsWord(lower, fw) {
			score += 10
		}
	}
	if strings.Contains(title, strconv.Itoa(year)) {
		score += 15
	}
	return min(score, 100)
}

// containsWord matches fw as a whole word so that e.g. "vs" does not match
// inside "observations".
func containsWord(lower, fw string) bool {
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if w == fw {
			return true
		}
	}
	return false
}
