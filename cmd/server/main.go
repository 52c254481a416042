package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/titleboost/titleboost/internal/ai"
	"github.com/titleboost/titleboost/internal/api"
	"github.com/titleboost/titleboost/internal/config"
	"github.com/titleboost/titleboost/internal/keywords"
	"github.com/titleboost/titleboost/internal/retry"
	"github.com/titleboost/titleboost/internal/youtube"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()
	retryOpts := retry.Options{MaxRetries: cfg.MaxRetries, BaseDelay: cfg.RetryBaseDelay}

	// AI provider is optional: without a credential every AI endpoint
	// answers from the built-in analyzer.
	provider, err := ai.NewProvider(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create AI provider: %v", err)
	}
	if provider == nil {
		log.Printf("No AI credential configured, AI endpoints run in fallback mode")
	} else {
		log.Printf("AI provider: %s", cfg.AIProvider)
	}
	aiService := ai.NewService(provider, retryOpts)

	// The YouTube client is also optional; endpoints that need it answer
	// with a configuration error instead.
	var handler *api.Handler
	if cfg.HasYouTubeKey() {
		ytService, err := youtube.New(ctx, cfg.YouTubeAPIKey, retryOpts)
		if err != nil {
			log.Fatalf("Failed to create YouTube client: %v", err)
		}
		handler = api.NewHandler(cfg, aiService, ytService, keywords.NewService(ytService))
	} else {
		log.Printf("No YouTube API key configured, trending/keyword endpoints disabled")
		handler = api.NewHandler(cfg, aiService, nil, nil)
	}

	router := gin.Default()
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestIDMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", handler.Analyze)
		v1.POST("/score", handler.Score)
		v1.POST("/rewrite", handler.Rewrite)
		v1.POST("/ideas", handler.Ideas)
		v1.POST("/keywords", handler.Keywords)
		v1.POST("/keywords/export", handler.ExportKeywords)
		v1.POST("/trending", handler.Trending)
		v1.POST("/trending/us", handler.TrendingUS)
	}

	log.Printf("TitleBoost starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
