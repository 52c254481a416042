package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titleboost/titleboost/internal/ai"
	"github.com/titleboost/titleboost/internal/config"
	"github.com/titleboost/titleboost/internal/models"
	"github.com/titleboost/titleboost/internal/retry"
	"github.com/titleboost/titleboost/internal/youtube"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeVideos serves canned YouTube data.
type fakeVideos struct {
	popular    []youtube.Video
	popularErr error
	hits       []youtube.SearchResult
	hitsErr    error
}

func (f *fakeVideos) MostPopular(ctx context.Context, region, categoryID string) ([]youtube.Video, error) {
	return f.popular, f.popularErr
}

func (f *fakeVideos) SearchRecent(ctx context.Context, query string, publishedAfter time.Time, max int64) ([]youtube.SearchResult, int64, error) {
	return f.hits, int64(len(f.hits)), f.hitsErr
}

type fakeResearch struct {
	analyses []models.KeywordAnalysis
}

func (f *fakeResearch) Research(ctx context.Context, seed string) []models.KeywordAnalysis {
	return f.analyses
}

// rateLimitedProvider always answers 429.
type rateLimitedProvider struct{}

func (rateLimitedProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return "", &retry.HTTPError{StatusCode: http.StatusTooManyRequests, Message: "rate limited"}
}

func testRouter(h *Handler) *gin.Engine {
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/analyze", h.Analyze)
	v1.POST("/score", h.Score)
	v1.POST("/rewrite", h.Rewrite)
	v1.POST("/ideas", h.Ideas)
	v1.POST("/keywords", h.Keywords)
	v1.POST("/keywords/export", h.ExportKeywords)
	v1.POST("/trending", h.Trending)
	v1.POST("/trending/us", h.TrendingUS)
	return r
}

func newTestHandler(provider ai.Provider, videos videoAPI, research researcher) *Handler {
	cfg := &config.Config{TrendingRegion: "IN", TrendingRegionUS: "US"}
	aiSvc := ai.NewService(provider, retry.Options{MaxRetries: 3, BaseDelay: time.Millisecond})
	return NewHandler(cfg, aiSvc, videos, research)
}

func doJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestScoreMissingTitle(t *testing.T) {
	r := testRouter(newTestHandler(nil, nil, nil))
	w := doJSON(t, r, "/api/v1/score", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decode(t, w)["error"])
}

func TestScoreFallbackWithoutProvider(t *testing.T) {
	r := testRouter(newTestHandler(nil, nil, nil))
	w := doJSON(t, r, "/api/v1/score", map[string]string{"title": "My Gardening Video"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["fallbackUsed"])
	assert.NotEmpty(t, body["message"])
	breakdown, ok := body["breakdown"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, breakdown, 5)
}

func TestScoreRateLimitedAfterRetries(t *testing.T) {
	r := testRouter(newTestHandler(rateLimitedProvider{}, nil, nil))
	w := doJSON(t, r, "/api/v1/score", map[string]string{"title": "t"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	body := decode(t, w)
	assert.Equal(t, "rate_limit", body["type"])
	assert.NotEmpty(t, body["error"])
}

func TestRewriteFallback(t *testing.T) {
	r := testRouter(newTestHandler(nil, nil, nil))
	w := doJSON(t, r, "/api/v1/rewrite", map[string]string{"title": "My Video"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	variants, ok := body["variants"].([]any)
	require.True(t, ok)
	assert.Len(t, variants, 5)
	assert.Equal(t, true, body["fallbackUsed"])
}

func TestIdeasMissingKeyword(t *testing.T) {
	r := testRouter(newTestHandler(nil, nil, nil))
	w := doJSON(t, r, "/api/v1/ideas", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeWithoutYouTubeKey(t *testing.T) {
	r := testRouter(newTestHandler(nil, nil, nil))
	w := doJSON(t, r, "/api/v1/analyze", map[string]string{"title": "My Gardening Video"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errMissingYouTubeKey, decode(t, w)["error"])
}

func TestAnalyzeFiltersRelatedTitles(t *testing.T) {
	videos := &fakeVideos{hits: []youtube.SearchResult{
		{Title: "How I Built a Thriving Balcony Garden in Mumbai"}, // kept
		{Title: "My Gardening Video"},                              // identical words, filtered
		{Title: "short one"},                                       // too short, filtered
		{Title: "Complete Guide to Growing Vegetables at Home"},    // kept
	}}
	r := testRouter(newTestHandler(nil, videos, nil))
	w := doJSON(t, r, "/api/v1/analyze", map[string]string{"title": "My Gardening Video"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	related, ok := body["relatedTitles"].([]any)
	require.True(t, ok)
	assert.Len(t, related, 2)
	assert.NotContains(t, related, "My Gardening Video")
	assert.NotEmpty(t, body["hashtags"])
}

func TestAnalyzeMeasuresTitleLengthInRunes(t *testing.T) {
	videos := &fakeVideos{hits: []youtube.SearchResult{
		// 12 Devanagari characters is 36 bytes; still too short to keep.
		{Title: strings.Repeat("क", 12)},
		{Title: strings.Repeat("क", 25)}, // kept
	}}
	r := testRouter(newTestHandler(nil, videos, nil))
	w := doJSON(t, r, "/api/v1/analyze", map[string]string{"title": "My Gardening Video"})
	require.Equal(t, http.StatusOK, w.Code)

	related := decode(t, w)["relatedTitles"].([]any)
	require.Len(t, related, 1)
	assert.Equal(t, strings.Repeat("क", 25), related[0])
}

func TestAnalyzeCapsRelatedTitles(t *testing.T) {
	hits := make([]youtube.SearchResult, 0, 20)
	for i := 0; i < 20; i++ {
		hits = append(hits, youtube.SearchResult{
			Title: "A Completely Different Crafting Tutorial Episode " + string(rune('A'+i)),
		})
	}
	r := testRouter(newTestHandler(nil, &fakeVideos{hits: hits}, nil))
	w := doJSON(t, r, "/api/v1/analyze", map[string]string{"title": "My Gardening Video"})
	require.Equal(t, http.StatusOK, w.Code)

	related := decode(t, w)["relatedTitles"].([]any)
	assert.LessOrEqual(t, len(related), 8)
}

func TestKeywordsEndpoint(t *testing.T) {
	research := &fakeResearch{analyses: []models.KeywordAnalysis{
		{Keyword: "cats", SearchVolume: 100, TrendDirection: "up"},
	}}
	r := testRouter(newTestHandler(nil, &fakeVideos{}, research))
	w := doJSON(t, r, "/api/v1/keywords", map[string]string{"keyword": "cats"})
	require.Equal(t, http.StatusOK, w.Code)

	keywords := decode(t, w)["keywords"].([]any)
	assert.Len(t, keywords, 1)
}

func TestExportKeywords(t *testing.T) {
	r := testRouter(newTestHandler(nil, nil, nil))
	body := map[string]any{
		"term": "cats",
		"keywords": []models.KeywordAnalysis{{
			Keyword: "cats", SearchVolume: 100, CompetitionScore: 20,
			TrendDirection: "up", VideoCount: 500, AvgViews: 50,
		}},
	}
	w := doJSON(t, r, "/api/v1/keywords/export", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "youtube-keywords-cats-")
	assert.Contains(t, w.Body.String(), `"cats",100,20,"up",500,50`)
}

func TestExportKeywordsRejectsEmptyList(t *testing.T) {
	r := testRouter(newTestHandler(nil, nil, nil))
	w := doJSON(t, r, "/api/v1/keywords/export", map[string]any{"term": "cats"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrendingEmptyUpstreamIsNotAnError(t *testing.T) {
	r := testRouter(newTestHandler(nil, &fakeVideos{}, nil))
	w := doJSON(t, r, "/api/v1/trending", map[string]string{"categoryId": "20"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	trending, ok := body["trending"].([]any)
	require.True(t, ok)
	assert.Empty(t, trending)
	assert.NotEmpty(t, body["hashtags"], "India feed always carries hashtag suggestions")
}

func TestTrendingUSEmptyUpstream(t *testing.T) {
	r := testRouter(newTestHandler(nil, &fakeVideos{}, nil))
	w := doJSON(t, r, "/api/v1/trending/us", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	trending, ok := body["trending"].([]any)
	require.True(t, ok)
	assert.Empty(t, trending)
	_, hasHashtags := body["hashtags"]
	assert.False(t, hasHashtags)
}

func TestTrendingUpstreamFailure(t *testing.T) {
	videos := &fakeVideos{popularErr: errors.New("upstream exploded")}
	r := testRouter(newTestHandler(nil, videos, nil))
	w := doJSON(t, r, "/api/v1/trending", map[string]string{})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decode(t, w)
	assert.NotEmpty(t, body["error"])
	assert.NotEmpty(t, body["details"])
}

func TestTrendingRateLimitMapsTo429(t *testing.T) {
	videos := &fakeVideos{popularErr: &retry.HTTPError{StatusCode: 429, Message: "rate limited"}}
	r := testRouter(newTestHandler(nil, videos, nil))
	w := doJSON(t, r, "/api/v1/trending", map[string]string{})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "rate_limit", decode(t, w)["type"])
}

func TestTrendingBuildsFeed(t *testing.T) {
	videos := &fakeVideos{popular: []youtube.Video{
		{Title: "Cricket Final Highlights Today", Views: 5_000_000, CategoryID: "17"},
		{Title: "Cricket Final Highlights Tomorrow", Views: 4_000_000, CategoryID: "17"},
		{Title: "Street Food Tour Delhi", Views: 1_000_000, CategoryID: "26"},
	}}
	r := testRouter(newTestHandler(nil, videos, nil))
	w := doJSON(t, r, "/api/v1/trending", map[string]string{})
	require.Equal(t, http.StatusOK, w.Code)

	trending := decode(t, w)["trending"].([]any)
	assert.Len(t, trending, 2, "duplicate derived keywords collapse")
}
