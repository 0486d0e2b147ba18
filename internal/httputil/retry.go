// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the API client.
package httputil

import (
	"context"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// retryable responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const defaultMaxRetries = 3

// MaxRetryAfter caps how long a server-provided Retry-After value is
// honored; anything longer falls back to the computed backoff so a
// hostile header cannot stall a generation for hours.
const MaxRetryAfter = 2 * time.Minute

// Retryable reports whether the response should be retried: HTTP 429,
// all 5xx responses, and the 403 form of quota exhaustion GitHub signals
// with X-RateLimit-Remaining: 0 all qualify. A plain 403 is a permission
// failure and is not retried. Transport errors are handled separately by
// DoWithRetry.
func Retryable(resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return true
	}
	return resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0"
}

// DoWithRetry executes an HTTP request and retries rate-limited (429 or
// 403 with exhausted quota) and server-error (5xx) responses as well as
// transport failures, with exponential backoff starting at
// RetryBaseDelay. A Retry-After header on a rate-limited response
// overrides the computed delay when it is shorter than MaxRetryAfter.
//
// When maxRetries is 0 the default (3) is used. Before each retry the
// response body is drained and closed. If the context is cancelled during
// a backoff wait the function returns ctx.Err() promptly. After
// exhausting retries the last response (or transport error) is returned
// so the caller can map it to a typed error.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))

		if err == nil && !Retryable(resp) {
			return resp, nil
		}
		if attempt >= maxRetries {
			// Exhausted retries; hand back whatever happened last.
			return resp, err
		}

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		if err == nil {
			if ra := retryAfter(resp); ra > 0 && ra < MaxRetryAfter {
				backoff = ra
			}
			// Drain and close the body before retrying.
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// retryAfter extracts the server-requested wait from a response. It
// understands the delta-seconds form of Retry-After and GitHub's
// X-RateLimit-Reset epoch header.
func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	if v := resp.Header.Get("X-RateLimit-Reset"); v != "" {
		if epoch, err := strconv.ParseInt(v, 10, 64); err == nil {
			if d := time.Until(time.Unix(epoch, 0)); d > 0 {
				return d
			}
		}
	}
	return 0
}

// RetryAfterHint exposes the parsed reset delay of a response so the
// client can attach it to surfaced rate-limit errors.
func RetryAfterHint(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}
	return retryAfter(resp)
}
