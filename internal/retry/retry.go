// Package retry wraps outbound API calls with exponential backoff on
// rate-limit responses. Any other failure propagates immediately.
package retry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPError carries the upstream status code so callers can classify
// rate-limit and quota conditions without string matching.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ErrMaxRetries marks a call that kept hitting rate limits until the
// attempt budget ran out.
var ErrMaxRetries = errors.New("max retries exceeded")

// Options control the backoff schedule.
type Options struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// DefaultOptions matches the production schedule: 3 attempts starting at 1s.
func DefaultOptions() Options {
	return Options{MaxRetries: 3, BaseDelay: time.Second}
}

// IsRateLimit reports whether err represents an upstream HTTP 429.
func IsRateLimit(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusTooManyRequests
}

// Do invokes op, retrying on rate-limit failures with delay
// BaseDelay * 2^attempt between tries. Non-rate-limit failures are
// returned as-is on the first occurrence.
func Do[T any](ctx context.Context, opts Options, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < opts.MaxRetries; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if !IsRateLimit(err) {
			return zero, err
		}
		lastErr = err

		if attempt == opts.MaxRetries-1 {
			break
		}

		delay := opts.BaseDelay * (1 << attempt)
		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("cancelled during retry wait: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	return zero, fmt.Errorf("%w: %w", ErrMaxRetries, lastErr)
}
