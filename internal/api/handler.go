// Package api contains the HTTP handlers. Each handler validates a small
// JSON body, calls the relevant service and shapes the response; every
// failure path returns a structured JSON error.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/titleboost/titleboost/internal/ai"
	"github.com/titleboost/titleboost/internal/config"
	"github.com/titleboost/titleboost/internal/models"
	"github.com/titleboost/titleboost/internal/retry"
	"github.com/titleboost/titleboost/internal/youtube"
)

// videoAPI is the slice of the YouTube service the handlers use.
type videoAPI interface {
	MostPopular(ctx context.Context, region, categoryID string) ([]youtube.Video, error)
	SearchRecent(ctx context.Context, query string, publishedAfter time.Time, max int64) ([]youtube.SearchResult, int64, error)
}

// researcher runs keyword research.
type researcher interface {
	Research(ctx context.Context, seed string) []models.KeywordAnalysis
}

// Handler holds the services behind the HTTP endpoints.
type Handler struct {
	cfg      *config.Config
	ai       *ai.Service
	videos   videoAPI
	research researcher
}

// NewHandler creates a handler with all its dependencies injected. videos
// and research may be nil when no YouTube credential is configured; the
// endpoints that need them then answer with a configuration error.
func NewHandler(cfg *config.Config, aiSvc *ai.Service, videos videoAPI, research researcher) *Handler {
	return &Handler{cfg: cfg, ai: aiSvc, videos: videos, research: research}
}

const (
	errMissingTitle      = "title is required"
	errMissingKeyword    = "keyword is required"
	errMissingKeywords   = "keywords are required"
	errMissingYouTubeKey = "YouTube API key is not configured"
	errGeneric           = "something went wrong, please try again"
	errRateLimited       = "AI service is rate limited, please try again shortly"
)

type titleRequest struct {
	Title string `json:"title"`
}

type keywordRequest struct {
	Keyword string `json:"keyword"`
}

type categoryRequest struct {
	CategoryID string `json:"categoryId"`
}

// bindTitle parses a {title} body, answering 400 itself when invalid.
func bindTitle(c *gin.Context) (string, bool) {
	var req titleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingTitle})
		return "", false
	}
	return req.Title, true
}

// bindKeyword parses a {keyword} body, answering 400 itself when invalid.
func bindKeyword(c *gin.Context) (string, bool) {
	var req keywordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingKeyword})
		return "", false
	}
	return req.Keyword, true
}

// respondUpstreamError maps a service error onto the wire taxonomy:
// exhausted rate limits become 429 with a machine-readable type, anything
// else becomes a generic 500.
func respondUpstreamError(c *gin.Context, err error) {
	if retry.IsRateLimit(err) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": errRateLimited,
			"type":  "rate_limit",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   errGeneric,
		"details": err.Error(),
	})
}

// requireVideos answers the configuration error when the YouTube client is
// absent.
func (h *Handler) requireVideos(c *gin.Context) bool {
	if h.videos == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errMissingYouTubeKey})
		return false
	}
	return true
}
