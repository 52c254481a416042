package youtube

import (
	"sort"
	"strings"

	"github.com/titleboost/titleboost/internal/hashtags"
	"github.com/titleboost/titleboost/internal/models"
)

const (
	maxTrending     = 10
	keywordWords    = 3
	minApproxVolume = 1000
	maxApproxVolume = 500000
)

// DeriveKeyword reduces a video title to a short display keyword: the
// first few significant words, lowercased.
func DeriveKeyword(title string) string {
	words := hashtags.SignificantWords(title)
	if len(words) > keywordWords {
		words = words[:keywordWords]
	}
	return strings.Join(words, " ")
}

// ApproxVolume maps a view count to an approximate "search volume". The
// proportion is arbitrary but deterministic, clamped to the range the
// numbers have always lived in.
func ApproxVolume(views int64) int64 {
	volume := views / 50
	if volume < minApproxVolume {
		return minApproxVolume
	}
	if volume > maxApproxVolume {
		return maxApproxVolume
	}
	return volume
}

// BuildTrending derives keywords from the videos, deduplicates them,
// sorts by approximate volume descending and truncates to ten entries.
// An empty input yields an empty (non-nil) slice.
func BuildTrending(videos []Video) []models.TrendingSearch {
	seen := make(map[string]bool)
	trending := []models.TrendingSearch{}

	for _, v := range videos {
		keyword := DeriveKeyword(v.Title)
		if keyword == "" || seen[keyword] {
			continue
		}
		seen[keyword] = true
		trending = append(trending, models.TrendingSearch{
			Keyword:      keyword,
			SearchVolume: ApproxVolume(v.Views),
			Category:     v.CategoryID,
		})
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].SearchVolume > trending[j].SearchVolume
	})
	if len(trending) > maxTrending {
		trending = trending[:maxTrending]
	}
	return trending
}
