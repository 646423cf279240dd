package phishnet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// SetlistService provides access to per-show setlists.
type SetlistService struct {
	client *Client
}

// ByDate returns the setlist entries for the show played on date,
// formatted YYYY-MM-DD. Entries arrive in performance order.
//
// A date with no setlist on record yields an empty slice, not an
// error.
//
// Example:
//
//	entries, err := client.Setlists().ByDate(ctx, "1997-11-22")
//	if err != nil {
//	    log.Printf("Failed to fetch setlist: %v", err)
//	}
func (s *SetlistService) ByDate(ctx context.Context, date string) ([]SetlistEntry, error) {
	data, err := s.client.get(ctx, fmt.Sprintf("setlists/showdate/%s.json", url.PathEscape(date)), nil)
	if err != nil {
		return nil, err
	}

	var entries []SetlistEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("phishnet: failed to parse setlist response: %w", err)
	}

	return entries, nil
}
