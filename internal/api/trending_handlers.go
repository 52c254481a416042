package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/titleboost/titleboost/internal/hashtags"
	"github.com/titleboost/titleboost/internal/youtube"
)

// Trending answers POST /api/v1/trending: the India feed plus
// category-specific hashtag suggestions. An empty upstream listing is a
// successful, empty response, never an error.
func (h *Handler) Trending(c *gin.Context) {
	var req categoryRequest
	_ = c.ShouldBindJSON(&req) // categoryId is optional; an empty body is fine

	if !h.requireVideos(c) {
		return
	}

	videos, err := h.videos.MostPopular(c.Request.Context(), h.cfg.TrendingRegion, req.CategoryID)
	if err != nil {
		log.Printf("ERROR: trending fetch (region=%s category=%q) failed: %v",
			h.cfg.TrendingRegion, req.CategoryID, err)
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trending": youtube.BuildTrending(videos),
		"hashtags": hashtags.ForCategory(req.CategoryID),
	})
}

// TrendingUS answers POST /api/v1/trending/us, the secondary region feed.
func (h *Handler) TrendingUS(c *gin.Context) {
	var req categoryRequest
	_ = c.ShouldBindJSON(&req)

	if !h.requireVideos(c) {
		return
	}

	videos, err := h.videos.MostPopular(c.Request.Context(), h.cfg.TrendingRegionUS, req.CategoryID)
	if err != nil {
		log.Printf("ERROR: US trending fetch (category=%q) failed: %v", req.CategoryID, err)
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trending": youtube.BuildTrending(videos),
	})
}
