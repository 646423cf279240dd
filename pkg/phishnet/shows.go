package phishnet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// ShowService provides access to the show catalog.
type ShowService struct {
	client *Client
}

// ByYear returns every show on record for a calendar year, ordered by
// show date.
//
// The catalog covers every artist in the archive, not just the
// headline act; callers interested in a single artist must filter on
// ArtistName themselves.
//
// Example:
//
//	shows, err := client.Shows().ByYear(ctx, 1997)
//	if err != nil {
//	    log.Printf("Failed to fetch shows: %v", err)
//	}
func (s *ShowService) ByYear(ctx context.Context, year int) ([]Show, error) {
	query := url.Values{}
	query.Set("order_by", "showdate")

	data, err := s.client.get(ctx, fmt.Sprintf("shows/showyear/%d.json", year), query)
	if err != nil {
		return nil, err
	}

	var shows []Show
	if err := json.Unmarshal(data, &shows); err != nil {
		return nil, fmt.Errorf("phishnet: failed to parse shows response: %w", err)
	}

	return shows, nil
}

// TodayInHistory returns the shows played on today's calendar date
// across all years.
//
// A successful call proves the API key and network path work, which
// makes this the conventional connectivity probe before a long
// extraction run.
func (s *ShowService) TodayInHistory(ctx context.Context) ([]Show, error) {
	data, err := s.client.get(ctx, "shows/tiph.json", nil)
	if err != nil {
		return nil, err
	}

	var shows []Show
	if err := json.Unmarshal(data, &shows); err != nil {
		return nil, fmt.Errorf("phishnet: failed to parse shows response: %w", err)
	}

	return shows, nil
}
