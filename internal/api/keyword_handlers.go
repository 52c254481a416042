package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/titleboost/titleboost/internal/export"
	"github.com/titleboost/titleboost/internal/models"
)

// Keywords answers POST /api/v1/keywords with the researched variations
// of a seed keyword. Per-variation failures have already been dropped by
// the research service, so this handler cannot partially fail.
func (h *Handler) Keywords(c *gin.Context) {
	keyword, ok := bindKeyword(c)
	if !ok {
		return
	}
	if !h.requireVideos(c) {
		return
	}

	analyses := h.research.Research(c.Request.Context(), keyword)
	c.JSON(http.StatusOK, gin.H{"keywords": analyses})
}

type exportRequest struct {
	Keywords []models.KeywordAnalysis `json:"keywords"`
	Term     string                   `json:"term"`
}

// ExportKeywords answers POST /api/v1/keywords/export with a CSV
// attachment of the supplied keyword analyses.
func (h *Handler) ExportKeywords(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Keywords) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingKeywords})
		return
	}
	if req.Term == "" && len(req.Keywords) > 0 {
		req.Term = req.Keywords[0].Keyword
	}

	filename := export.Filename(req.Term, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.CSV(req.Keywords)))
}
