// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-15
// Last Modified: 2026-10-18

package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RetryConfig controls how transient completion failures are retried.
type RetryConfig struct {
	MaxRetries  int           // attempts after the first call
	BaseDelay   time.Duration // delay before the first retry
	MaxDelay    time.Duration // cap for any single delay, Retry-After included
	JitterRatio float64       // extra random delay as a fraction, 0.0-1.0
}

// DefaultRetryConfig returns 3 retries starting at 2s, capped at 30s.
// A review is a single short completion, so the budget stays small.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:  3,
		BaseDelay:   2 * time.Second,
		MaxDelay:    30 * time.Second,
		JitterRatio: 0.25,
	}
}

// retryHint classifies err. retry is false for permanent failures; wait is
// the server-requested delay, if any.
func retryHint(err error) (retry bool, wait time.Duration) {
	if err == nil {
		return false, 0
	}

	var serr *StatusError
	if errors.As(err, &serr) {
		return retryableStatus(serr.Code), serr.RetryAfter
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return retryableStatus(gerr.Code), parseRetryAfter(gerr.Header.Get("Retry-After"))
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.ResourceExhausted, codes.Unavailable, codes.Internal:
			return true, 0
		}
	}
	return false, 0
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || (code >= 500 && code < 600)
}

// parseRetryAfter reads a Retry-After header given in seconds.
// HTTP-date values are ignored and fall back to backoff.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// backoff returns the delay before retry number attempt (0-based).
// A server hint wins over the exponential delay; both are capped.
func backoff(cfg RetryConfig, attempt int, hint time.Duration) time.Duration {
	delay := hint
	if delay <= 0 {
		delay = cfg.BaseDelay << attempt
		if cfg.JitterRatio > 0 {
			delay += time.Duration(rand.Float64() * cfg.JitterRatio * float64(delay))
		}
	}
	if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}
	return delay
}

// withRetry calls fn until it succeeds, fails permanently, runs out of
// retries or ctx is done.
func withRetry[T any](ctx context.Context, cfg RetryConfig, operation string, fn func() (T, error)) (T, error) {
	var zero T

	for attempt := 0; ; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		retry, hint := retryHint(err)
		if !retry {
			return zero, err
		}
		if attempt == cfg.MaxRetries {
			return zero, fmt.Errorf("%s failed after %d retries: %w", operation, cfg.MaxRetries, err)
		}

		delay := backoff(cfg, attempt, hint)
		log.Printf("[llm] %s: %v, retrying in %s (%d/%d)", operation, err, delay, attempt+1, cfg.MaxRetries)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, fmt.Errorf("%s: context cancelled during retry: %w", operation, ctx.Err())
		case <-timer.C:
		}
	}
}
