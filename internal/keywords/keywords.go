// Package keywords implements keyword research: templated query
// variations fanned out against YouTube search, each scored for volume,
// competition and trend direction.
package keywords

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/titleboost/titleboost/internal/models"
	"github.com/titleboost/titleboost/internal/youtube"
)

const (
	maxVariations  = 10
	sampleSize     = 10
	searchWindow   = 30 * 24 * time.Hour
	recentWindow   = 7 * 24 * time.Hour
	newerWindow    = 15 * 24 * time.Hour
	minTrendSample = 5
	maxVolume      = 500000
)

// variationTemplates expand a seed keyword into candidate queries. %s is
// the seed.
var variationTemplates = []string{
	"%s",
	"%s tutorial",
	"how to %s",
	"%s for beginners",
	"best %s",
	"%s tips",
	"%s vs",
	"%s review",
	"%s 2025",
	"%s guide",
}

// searcher is the slice of the YouTube service this package needs.
type searcher interface {
	SearchRecent(ctx context.Context, query string, publishedAfter time.Time, max int64) ([]youtube.SearchResult, int64, error)
	ViewCounts(ctx context.Context, ids []string) (map[string]int64, error)
}

// Service runs keyword research against YouTube.
type Service struct {
	yt searcher
}

// NewService creates a keyword research service.
func NewService(yt searcher) *Service {
	return &Service{yt: yt}
}

// Variations returns up to ten templated query variations for a seed.
func Variations(seed string) []string {
	variations := make([]string, 0, maxVariations)
	for _, tpl := range variationTemplates {
		variations = append(variations, fmt.Sprintf(tpl, seed))
		if len(variations) == maxVariations {
			break
		}
	}
	return variations
}

// Research analyzes every variation of the seed concurrently. A failed
// variation is logged and dropped; it never fails the whole request. The
// result is sorted by opportunity (volume over competition), descending.
func (s *Service) Research(ctx context.Context, seed string) []models.KeywordAnalysis {
	variations := Variations(seed)
	results := make([]*models.KeywordAnalysis, len(variations))

	var wg sync.WaitGroup
	for i, variation := range variations {
		wg.Add(1)
		go func(i int, variation string) {
			defer wg.Done()
			analysis, err := s.analyzeOne(ctx, variation)
			if err != nil {
				log.Printf("WARN: keyword variation %q dropped: %v", variation, err)
				return
			}
			results[i] = analysis
		}(i, variation)
	}
	wg.Wait()

	analyses := []models.KeywordAnalysis{}
	for _, r := range results {
		if r != nil {
			analyses = append(analyses, *r)
		}
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return opportunity(analyses[i]) > opportunity(analyses[j])
	})
	return analyses
}

func (s *Service) analyzeOne(ctx context.Context, variation string) (*models.KeywordAnalysis, error) {
	now := time.Now()
	hits, total, err := s.yt.SearchRecent(ctx, variation, now.Add(-searchWindow), sampleSize)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.VideoID)
	}
	views, err := s.yt.ViewCounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("stats fetch failed: %w", err)
	}

	var totalViews int64
	for _, h := range hits {
		totalViews += views[h.VideoID]
	}
	var avgViews int64
	if len(hits) > 0 {
		avgViews = totalViews / int64(len(hits))
	}

	publishTimes := make([]time.Time, 0, len(hits))
	for _, h := range hits {
		publishTimes = append(publishTimes, h.PublishedAt)
	}

	return &models.KeywordAnalysis{
		Keyword:          variation,
		SearchVolume:     searchVolume(avgViews),
		CompetitionScore: competitionScore(total, publishTimes, now),
		TrendDirection:   trendDirection(publishTimes, now),
		VideoCount:       total,
		AvgViews:         avgViews,
	}, nil
}

// searchVolume approximates demand from average views, clamped to the
// range the rest of the service uses.
func searchVolume(avgViews int64) int64 {
	volume := avgViews / 10
	if volume < 0 {
		return 0
	}
	if volume > maxVolume {
		return maxVolume
	}
	return volume
}

// competitionScore combines the scaled total-result count (capped at 100)
// with a recency bonus for very fresh uploads (capped at 20); the sum is
// capped at 100.
func competitionScore(totalResults int64, publishTimes []time.Time, now time.Time) int {
	base := int(totalResults / 5000)
	if base > 100 {
		base = 100
	}

	recent := 0
	for _, t := range publishTimes {
		if !t.IsZero() && now.Sub(t) <= recentWindow {
			recent++
		}
	}
	bonus := recent * 4
	if bonus > 20 {
		bonus = 20
	}

	score := base + bonus
	if score > 100 {
		score = 100
	}
	return score
}

// trendDirection splits the sample by publish recency and compares the
// halves. Fewer than five samples is always "stable".
func trendDirection(publishTimes []time.Time, now time.Time) string {
	if len(publishTimes) < minTrendSample {
		return models.TrendStable
	}

	newer, older := 0, 0
	for _, t := range publishTimes {
		if t.IsZero() {
			continue
		}
		if now.Sub(t) <= newerWindow {
			newer++
		} else {
			older++
		}
	}

	switch {
	case older == 0:
		if newer > 0 {
			return models.TrendUp
		}
		return models.TrendStable
	case float64(newer) > 1.5*float64(older):
		return models.TrendUp
	case float64(newer) < 0.7*float64(older):
		return models.TrendDown
	default:
		return models.TrendStable
	}
}

// opportunity ranks a keyword by demand relative to competition.
func opportunity(a models.KeywordAnalysis) float64 {
	return float64(a.SearchVolume) / float64(a.CompetitionScore+1)
}
