package models

// TrendingSearch is one entry of the trending feed. SearchVolume is an
// approximation derived from view counts, not a real search-volume metric.
type TrendingSearch struct {
	Keyword      string `json:"keyword"`
	SearchVolume int64  `json:"searchVolume"`
	Category     string `json:"category"`
}

// KeywordAnalysis is the per-variation result of keyword research.
type KeywordAnalysis struct {
	Keyword          string `json:"keyword"`
	SearchVolume     int64  `json:"searchVolume"`
	CompetitionScore int    `json:"competitionScore"`
	TrendDirection   string `json:"trendDirection"`
	VideoCount       int64  `json:"videoCount"`
	AvgViews         int64  `json:"avgViews"`
}

// Trend directions.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)
