package phishnet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// RetryPolicy controls how failed requests are reattempted.
//
// Rate-limit responses back off on a separate, slower curve than
// transport failures, but every kind of failure counts against the
// same attempt ceiling.
type RetryPolicy struct {
	// MaxAttempts is the total number of tries for one request,
	// including the first. Values below 1 use DefaultMaxAttempts.
	MaxAttempts int

	// TransientBackoff returns the wait before reattempting after a
	// network failure or an unexpected HTTP status. attempt is 1-based.
	TransientBackoff func(attempt int) time.Duration

	// RateLimitBackoff returns the wait before reattempting after an
	// HTTP 429. attempt is 1-based.
	RateLimitBackoff func(attempt int) time.Duration
}

const (
	// DefaultMaxAttempts is the attempt ceiling for a single request.
	DefaultMaxAttempts = 3
)

// DefaultRetryPolicy returns the retry behavior recommended by the API
// guidelines: three attempts, with waits escalating linearly from 2s
// after transient failures and from 5s after rate limiting.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		TransientBackoff: func(attempt int) time.Duration {
			return time.Duration(attempt) * 2 * time.Second
		},
		RateLimitBackoff: func(attempt int) time.Duration {
			return time.Duration(attempt) * 5 * time.Second
		},
	}
}

// withDefaults fills unset fields from DefaultRetryPolicy.
func (p RetryPolicy) withDefaults() RetryPolicy {
	def := DefaultRetryPolicy()
	if p.MaxAttempts < 1 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.TransientBackoff == nil {
		p.TransientBackoff = def.TransientBackoff
	}
	if p.RateLimitBackoff == nil {
		p.RateLimitBackoff = def.RateLimitBackoff
	}
	return p
}

// SleepFunc pauses for the given duration, returning false if the
// context ended first. Tests inject one to run retries without real
// waiting.
type SleepFunc func(ctx context.Context, duration time.Duration) bool

// get makes a GET request to the Phish.net API with retry logic.
//
// It handles:
// - URL construction with the API key attached
// - Backoff and retry for network failures, bad statuses, and rate limits
// - Envelope parsing and semantic error detection
// - The post-success pacing delay
// - Context cancellation
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	// Build the request URL with the API key attached.
	params := url.Values{}
	for k, vs := range query {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	params.Set("apikey", c.apiKey)
	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	var lastErr error
	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		c.logDebugf("phishnet: GET %s (attempt %d/%d)", endpoint, attempt, c.retry.MaxAttempts)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if attempt < c.retry.MaxAttempts {
				c.logDebugf("phishnet: request failed, retrying: %v", err)
				if !c.sleep(ctx, c.retry.TransientBackoff(attempt)) {
					return nil, ctx.Err()
				}
				continue
			}
			return nil, fmt.Errorf("http request failed: %w", err)
		}

		// Rate limiting gets its own backoff curve but shares the
		// attempt ceiling with every other failure.
		if resp.StatusCode == http.StatusTooManyRequests {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("rate limited: %s", resp.Status)
			if attempt < c.retry.MaxAttempts {
				wait := c.retry.RateLimitBackoff(attempt)
				c.logDebugf("phishnet: rate limited, waiting %s", wait)
				if !c.sleep(ctx, wait) {
					return nil, ctx.Err()
				}
			}
			continue
		}

		// Read response body
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		// Any status outside 2xx is treated as transient.
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			lastErr = fmt.Errorf("unexpected status: %s", resp.Status)
			if attempt < c.retry.MaxAttempts {
				c.logDebugf("phishnet: bad status, retrying: %v", lastErr)
				if !c.sleep(ctx, c.retry.TransientBackoff(attempt)) {
					return nil, ctx.Err()
				}
				continue
			}
			return nil, lastErr
		}

		// Pace requests even on success so bulk extraction stays polite.
		if c.requestDelay > 0 {
			if !c.sleep(ctx, c.requestDelay) {
				return nil, ctx.Err()
			}
		}

		// Parse the response envelope
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		// Check for API errors
		if apiErr := env.apiError(); apiErr != nil {
			return nil, apiErr
		}

		// Success
		c.logDebugf("phishnet: GET %s succeeded", endpoint)
		return env.Data, nil
	}

	return nil, fmt.Errorf("max attempts exceeded: %w", lastErr)
}

// sleep waits for the specified duration or until context is cancelled.
// Returns true if sleep completed, false if context was cancelled.
func sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(duration):
		return true
	}
}
