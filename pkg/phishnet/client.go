// Package phishnet provides a client for the Phish.net API v5.
//
// This package implements the read-only show and setlist endpoints
// used for data extraction. It is designed to be used as a
// standalone SDK.
//
// Example usage:
//
//	import "github.com/phishtab/phishtab/pkg/phishnet"
//
//	client, err := phishnet.NewClient(phishnet.Config{
//	    APIKey: "your-api-key",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	shows, err := client.Shows().ByYear(ctx, 1997)
package phishnet

import (
	"net/http"
	"strings"
	"time"
)

// Config holds client configuration.
type Config struct {
	APIKey       string        // Required: Phish.net API key
	HTTPClient   *http.Client  // Optional: HTTP client (defaults to a client with DefaultTimeout)
	BaseURL      string        // Optional: Base URL for API (defaults to Phish.net API, used for testing)
	Logger       Logger        // Optional: Logger interface for debug logging
	Retry        RetryPolicy   // Optional: Retry tuning (zero value uses DefaultRetryPolicy)
	RequestDelay time.Duration // Optional: Pause after each successful request (negative disables)
	Sleep        SleepFunc     // Optional: Wait implementation, replaced in tests
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Phish.net API operations.
type Client struct {
	apiKey       string
	httpClient   *http.Client
	baseURL      string
	logger       Logger
	retry        RetryPolicy
	requestDelay time.Duration
	sleep        SleepFunc

	shows    *ShowService
	setlists *SetlistService
}

const (
	// DefaultBaseURL is the default Phish.net API endpoint.
	DefaultBaseURL = "https://api.phish.net/v5"

	// DefaultTimeout bounds a single HTTP request when no custom
	// client is supplied.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestDelay is the pause after every successful request,
	// keeping bulk extraction polite to the API.
	DefaultRequestDelay = 500 * time.Millisecond

	userAgent = "phishtab/1.0"
)

// NewClient creates a new Phish.net API client.
//
// Returns an error if required configuration (APIKey) is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	requestDelay := cfg.RequestDelay
	if requestDelay == 0 {
		requestDelay = DefaultRequestDelay
	}

	sleepFn := cfg.Sleep
	if sleepFn == nil {
		sleepFn = sleep
	}

	c := &Client{
		apiKey:       cfg.APIKey,
		httpClient:   httpClient,
		baseURL:      baseURL,
		logger:       cfg.Logger,
		retry:        cfg.Retry.withDefaults(),
		requestDelay: requestDelay,
		sleep:        sleepFn,
	}

	c.shows = &ShowService{client: c}
	c.setlists = &SetlistService{client: c}

	return c, nil
}

// Shows returns the show catalog service.
func (c *Client) Shows() *ShowService {
	return c.shows
}

// Setlists returns the setlist service.
func (c *Client) Setlists() *SetlistService {
	return c.setlists
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
