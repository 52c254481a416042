package keywords

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titleboost/titleboost/internal/models"
	"github.com/titleboost/titleboost/internal/youtube"
)

func TestVariations(t *testing.T) {
	variations := Variations("bgmi")
	assert.Len(t, variations, 10)
	assert.Equal(t, "bgmi", variations[0])
	assert.Contains(t, variations, "bgmi tutorial")
	assert.Contains(t, variations, "how to bgmi")
	assert.Contains(t, variations, "bgmi vs")
}

func TestSearchVolume(t *testing.T) {
	assert.Equal(t, int64(0), searchVolume(0))
	assert.Equal(t, int64(100), searchVolume(1000))
	assert.Equal(t, int64(500000), searchVolume(50_000_000))
}

func TestCompetitionScore(t *testing.T) {
	now := time.Now()
	fresh := now.Add(-24 * time.Hour)
	stale := now.Add(-20 * 24 * time.Hour)

	tests := []struct {
		name    string
		total   int64
		publish []time.Time
		want    int
	}{
		{"no results", 0, nil, 0},
		{"base scaling", 50000, nil, 10},
		{"base capped at 100", 10_000_000, nil, 100},
		{"recency bonus", 0, []time.Time{fresh, fresh, stale}, 8},
		{"recency bonus capped at 20", 0, []time.Time{fresh, fresh, fresh, fresh, fresh, fresh, fresh}, 20},
		{"overall capped at 100", 10_000_000, []time.Time{fresh, fresh}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, competitionScore(tt.total, tt.publish, now))
		})
	}
}

func TestTrendDirection(t *testing.T) {
	now := time.Now()
	newer := now.Add(-5 * 24 * time.Hour)
	older := now.Add(-25 * 24 * time.Hour)

	tests := []struct {
		name    string
		publish []time.Time
		want    string
	}{
		{"too few samples", []time.Time{newer, newer, newer, newer}, models.TrendStable},
		{"rising", []time.Time{newer, newer, newer, newer, older}, models.TrendUp},
		{"falling", []time.Time{newer, older, older, older, older}, models.TrendDown},
		{"balanced", []time.Time{newer, newer, newer, older, older}, models.TrendStable},
		{"all newer", []time.Time{newer, newer, newer, newer, newer}, models.TrendUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trendDirection(tt.publish, now))
		})
	}
}

// fakeSearcher serves canned results per query and fails on demand.
type fakeSearcher struct {
	hits    map[string][]youtube.SearchResult
	totals  map[string]int64
	views   map[string]int64
	failing map[string]bool
}

func (f *fakeSearcher) SearchRecent(ctx context.Context, query string, publishedAfter time.Time, max int64) ([]youtube.SearchResult, int64, error) {
	if f.failing[query] {
		return nil, 0, errors.New("upstream unavailable")
	}
	return f.hits[query], f.totals[query], nil
}

func (f *fakeSearcher) ViewCounts(ctx context.Context, ids []string) (map[string]int64, error) {
	views := make(map[string]int64, len(ids))
	for _, id := range ids {
		views[id] = f.views[id]
	}
	return views, nil
}

func TestResearchDropsFailedVariations(t *testing.T) {
	now := time.Now()
	fake := &fakeSearcher{
		hits: map[string][]youtube.SearchResult{
			"bgmi": {
				{VideoID: "a", PublishedAt: now.Add(-2 * 24 * time.Hour)},
				{VideoID: "b", PublishedAt: now.Add(-20 * 24 * time.Hour)},
			},
		},
		totals:  map[string]int64{"bgmi": 25000},
		views:   map[string]int64{"a": 10000, "b": 30000},
		failing: map[string]bool{"bgmi tutorial": true},
	}
	// Every variation other than the two above returns zero hits.

	svc := NewService(fake)
	analyses := svc.Research(context.Background(), "bgmi")

	require.NotEmpty(t, analyses)
	// The failing variation is dropped, the rest survive.
	assert.Len(t, analyses, 9)
	for _, a := range analyses {
		assert.NotEqual(t, "bgmi tutorial", a.Keyword)
	}
}

func TestResearchComputesAveragesAndSorts(t *testing.T) {
	now := time.Now()
	fake := &fakeSearcher{
		hits: map[string][]youtube.SearchResult{
			"cats": {
				{VideoID: "a", PublishedAt: now.Add(-24 * time.Hour)},
				{VideoID: "b", PublishedAt: now.Add(-24 * time.Hour)},
			},
			"best cats": {
				{VideoID: "c", PublishedAt: now.Add(-24 * time.Hour)},
			},
		},
		totals: map[string]int64{"cats": 100000, "best cats": 1000},
		views:  map[string]int64{"a": 1000, "b": 3000, "c": 200000},
	}

	svc := NewService(fake)
	analyses := svc.Research(context.Background(), "cats")
	require.NotEmpty(t, analyses)

	byKeyword := map[string]models.KeywordAnalysis{}
	for _, a := range analyses {
		byKeyword[a.Keyword] = a
	}

	cats := byKeyword["cats"]
	assert.Equal(t, int64(2000), cats.AvgViews)
	assert.Equal(t, int64(100000), cats.VideoCount)

	best := byKeyword["best cats"]
	assert.Equal(t, int64(200000), best.AvgViews)

	// "best cats" has far higher volume and low competition, so it ranks
	// ahead of "cats".
	assert.Equal(t, "best cats", analyses[0].Keyword)

	// Descending opportunity throughout.
	for i := 1; i < len(analyses); i++ {
		assert.GreaterOrEqual(t, opportunity(analyses[i-1]), opportunity(analyses[i]))
	}
}
