package api

import (
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/titleboost/titleboost/internal/hashtags"
	"github.com/titleboost/titleboost/internal/scorer"
)

const (
	maxRelatedTitles   = 8
	relatedMinLength   = 20
	relatedMaxOverlap  = 0.7
	relatedSearchDays  = 30
	relatedSearchLimit = 25
)

// Score answers POST /api/v1/score.
func (h *Handler) Score(c *gin.Context) {
	title, ok := bindTitle(c)
	if !ok {
		return
	}

	score, meta, err := h.ai.ScoreTitle(c.Request.Context(), title)
	if err != nil {
		log.Printf("ERROR: scoring %q failed: %v", title, err)
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"overall":      score.Overall,
		"breakdown":    score.Breakdown,
		"improvements": score.Improvements,
		"strengths":    score.Strengths,
		"fallbackUsed": meta.FallbackUsed,
		"message":      meta.Message,
	})
}

// Rewrite answers POST /api/v1/rewrite.
func (h *Handler) Rewrite(c *gin.Context) {
	title, ok := bindTitle(c)
	if !ok {
		return
	}

	variants, meta, err := h.ai.Rewrite(c.Request.Context(), title)
	if err != nil {
		log.Printf("ERROR: rewriting %q failed: %v", title, err)
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"variants":     variants,
		"fallbackUsed": meta.FallbackUsed,
		"message":      meta.Message,
	})
}

// Ideas answers POST /api/v1/ideas.
func (h *Handler) Ideas(c *gin.Context) {
	keyword, ok := bindKeyword(c)
	if !ok {
		return
	}

	ideas, meta, err := h.ai.Ideas(c.Request.Context(), keyword)
	if err != nil {
		log.Printf("ERROR: generating ideas for %q failed: %v", keyword, err)
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ideas":        ideas,
		"fallbackUsed": meta.FallbackUsed,
		"message":      meta.Message,
	})
}

// Analyze answers POST /api/v1/analyze: related titles from YouTube search,
// hashtag suggestions and scoring-driven improvement tips.
func (h *Handler) Analyze(c *gin.Context) {
	title, ok := bindTitle(c)
	if !ok {
		return
	}
	if !h.requireVideos(c) {
		return
	}

	after := time.Now().AddDate(0, 0, -relatedSearchDays)
	hits, _, err := h.videos.SearchRecent(c.Request.Context(), title, after, relatedSearchLimit)
	if err != nil {
		log.Printf("ERROR: related-title search for %q failed: %v", title, err)
		respondUpstreamError(c, err)
		return
	}

	related := []string{}
	for _, hit := range hits {
		if len(related) == maxRelatedTitles {
			break
		}
		if utf8.RuneCountInString(hit.Title) <= relatedMinLength {
			continue
		}
		if wordOverlap(title, hit.Title) >= relatedMaxOverlap {
			continue
		}
		related = append(related, hit.Title)
	}

	score := scorer.Score(title)
	c.JSON(http.StatusOK, gin.H{
		"relatedTitles": related,
		"hashtags":      hashtags.FromTitle(title),
		"suggestions":   score.Improvements,
	})
}

// wordOverlap computes the share of shared significant words between two
// titles, relative to the smaller word set.
func wordOverlap(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	shared := 0
	for w := range setA {
		if setB[w] {
			shared++
		}
	}

	smaller := len(setA)
	if len(setB) < smaller {
		smaller = len(setB)
	}
	return float64(shared) / float64(smaller)
}

func wordSet(title string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(title)) {
		set[w] = true
	}
	return set
}
