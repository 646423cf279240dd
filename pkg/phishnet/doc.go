// Package phishnet provides a client library for the Phish.net API v5.
//
// # Overview
//
// This package implements a Go client for the read-only Phish.net
// endpoints used to extract show and setlist data. It provides a
// type-safe API with context support, structured errors, and built-in
// retry and rate-limit handling tuned for long bulk-extraction runs.
//
// # Installation
//
//	go get github.com/phishtab/phishtab/pkg/phishnet
//
// # Quick Start
//
// Create a client with your API key:
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
// # Fetching Shows
//
// The show catalog is queried one calendar year at a time:
//
//	shows, err := client.Shows().ByYear(ctx, 1997)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, show := range shows {
//	    fmt.Println(show.ShowDate, show.Venue)
//	}
//
// Results cover every artist in the archive, so callers typically
// filter on ArtistName. The TodayInHistory endpoint returns the shows
// played on today's date in past years and doubles as a cheap
// connectivity probe.
//
// # Fetching Setlists
//
// Setlists are addressed by show date:
//
//	entries, err := client.Setlists().ByDate(ctx, "1997-11-22")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Each entry carries the set label, song title, position, and the
// segue marker into the next song, in performance order.
//
// # Retries and Rate Limiting
//
// Every request is attempted up to RetryPolicy.MaxAttempts times.
// Network failures and unexpected HTTP statuses wait on the transient
// backoff curve; HTTP 429 waits on a slower rate-limit curve. Both
// share the same attempt ceiling. After every successful response the
// client pauses for RequestDelay so that bulk extraction does not
// hammer the API.
//
// The defaults (three attempts, 2s/5s linear backoff, 500ms pacing)
// follow the API usage guidelines and can be overridden via Config.
//
// # Error Handling
//
// Semantic errors reported inside a well-formed response envelope are
// returned as *Error and are never retried:
//
//	shows, err := client.Shows().ByYear(ctx, 1997)
//	if err != nil {
//	    var apiErr *phishnet.Error
//	    if errors.As(err, &apiErr) {
//	        // The API rejected the request; retrying will not help.
//	    }
//	}
//
// # Context Support
//
// All API methods accept a context.Context for cancellation and
// timeouts. Cancellation is honored both between attempts and during
// backoff waits:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
//	defer cancel()
//
//	shows, err := client.Shows().ByYear(ctx, 1997)
//
// # Configuration
//
// The client can be configured with custom HTTP clients, base URLs
// (for testing), retry policies, and optional loggers:
//
//	client, err := phishnet.NewClient(phishnet.Config{
//	    APIKey:       "your-api-key",
//	    HTTPClient:   &http.Client{Timeout: 30 * time.Second},
//	    RequestDelay: time.Second,
//	    Logger:       myLogger, // Implements phishnet.Logger interface
//	})
//
// # API Coverage
//
// Currently implemented:
//   - Show catalog by year (shows/showyear)
//   - Today in history (shows/tiph)
//   - Setlist by show date (setlists/showdate)
//
// # Phish.net API Documentation
//
// For more information about the Phish.net API:
// https://docs.phish.net/
package phishnet
