// Package youtube wraps the YouTube Data API v3 calls the service depends
// on: most-popular listings, recent search and video statistics.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/titleboost/titleboost/internal/retry"
)

// Service is a thin client over the Data API. All methods are safe for
// concurrent use; the underlying client holds no per-request state.
type Service struct {
	api       *yt.Service
	retryOpts retry.Options
}

// New creates a Service authenticated with an API key.
func New(ctx context.Context, apiKey string, retryOpts retry.Options) (*Service, error) {
	api, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}
	return &Service{api: api, retryOpts: retryOpts}, nil
}

// Video is the slice of upstream video data the handlers care about.
type Video struct {
	ID          string
	Title       string
	Views       int64
	CategoryID  string
	PublishedAt time.Time
}

// SearchResult is one hit from Search.List.
type SearchResult struct {
	VideoID     string
	Title       string
	PublishedAt time.Time
}

// MostPopular lists the most popular videos for a region, optionally
// filtered by category. An unfiltered listing is requested with an empty
// category, "all" or "0".
func (s *Service) MostPopular(ctx context.Context, region, categoryID string) ([]Video, error) {
	return retry.Do(ctx, s.retryOpts, func(ctx context.Context) ([]Video, error) {
		call := s.api.Videos.List([]string{"snippet", "statistics"}).
			Chart("mostPopular").
			RegionCode(region).
			MaxResults(50)
		if !Unfiltered(categoryID) {
			call = call.VideoCategoryId(categoryID)
		}

		resp, err := call.Context(ctx).Do()
		if err != nil {
			return nil, classify(err)
		}

		videos := make([]Video, 0, len(resp.Items))
		for _, item := range resp.Items {
			if item.Snippet == nil {
				continue
			}
			v := Video{
				ID:         item.Id,
				Title:      item.Snippet.Title,
				CategoryID: item.Snippet.CategoryId,
			}
			if item.Statistics != nil {
				v.Views = int64(item.Statistics.ViewCount)
			}
			if t, perr := time.Parse(time.RFC3339, item.Snippet.PublishedAt); perr == nil {
				v.PublishedAt = t
			}
			videos = append(videos, v)
		}
		return videos, nil
	})
}

// SearchRecent runs a video search restricted to uploads after the given
// time. It returns the hits plus the upstream total-result estimate.
func (s *Service) SearchRecent(ctx context.Context, query string, publishedAfter time.Time, max int64) ([]SearchResult, int64, error) {
	type searchPage struct {
		results []SearchResult
		total   int64
	}

	page, err := retry.Do(ctx, s.retryOpts, func(ctx context.Context) (searchPage, error) {
		call := s.api.Search.List([]string{"snippet"}).
			Q(query).
			Type("video").
			Order("relevance").
			PublishedAfter(publishedAfter.UTC().Format(time.RFC3339)).
			MaxResults(max)

		resp, err := call.Context(ctx).Do()
		if err != nil {
			return searchPage{}, classify(err)
		}

		page := searchPage{results: make([]SearchResult, 0, len(resp.Items))}
		if resp.PageInfo != nil {
			page.total = resp.PageInfo.TotalResults
		}
		for _, item := range resp.Items {
			if item.Id == nil || item.Snippet == nil {
				continue
			}
			r := SearchResult{VideoID: item.Id.VideoId, Title: item.Snippet.Title}
			if t, perr := time.Parse(time.RFC3339, item.Snippet.PublishedAt); perr == nil {
				r.PublishedAt = t
			}
			page.results = append(page.results, r)
		}
		return page, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return page.results, page.total, nil
}

// ViewCounts fetches view counts for up to 50 video IDs, keyed by ID.
func (s *Service) ViewCounts(ctx context.Context, ids []string) (map[string]int64, error) {
	if len(ids) == 0 {
		return map[string]int64{}, nil
	}
	return retry.Do(ctx, s.retryOpts, func(ctx context.Context) (map[string]int64, error) {
		resp, err := s.api.Videos.List([]string{"statistics"}).Id(ids...).Context(ctx).Do()
		if err != nil {
			return nil, classify(err)
		}
		views := make(map[string]int64, len(resp.Items))
		for _, item := range resp.Items {
			if item.Statistics != nil {
				views[item.Id] = int64(item.Statistics.ViewCount)
			}
		}
		return views, nil
	})
}

// Unfiltered reports whether a category identifier means "no filter".
func Unfiltered(categoryID string) bool {
	return categoryID == "" || categoryID == "all" || categoryID == "0"
}

// classify converts Data API errors into status-carrying errors so the
// retry wrapper can recognize rate limits.
func classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &retry.HTTPError{StatusCode: apiErr.Code, Message: apiErr.Message}
	}
	return err
}
