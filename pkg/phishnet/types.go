package phishnet

import (
	"encoding/json"
	"strings"
)

// Show represents one concert in the show catalog.
//
// The API omits fields freely: missing strings decode as empty and
// missing numbers as zero. Callers are expected to cope.
type Show struct {
	ShowID     int64  `json:"showid"`
	ShowDate   string `json:"showdate"` // YYYY-MM-DD
	ArtistName string `json:"artist_name"`
	Venue      string `json:"venue"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	TourName   string `json:"tour_name"`
	Rating     string `json:"rating"`
	Reviews    int64  `json:"reviews"`
	VenueID    int64  `json:"venueid"`
	Permalink  string `json:"permalink"`
}

// SetlistEntry represents one song slot within a show's setlist.
type SetlistEntry struct {
	Set      string `json:"set"`      // Set label, e.g. "Set 1" or "Encore"
	Song     string `json:"song"`     // Song title
	Position int    `json:"position"` // 1-based slot within the show, 0 when missing
	Segue    string `json:"segue"`    // Marker into the next song (">" or "->"), empty when none
}

// envelope is the common response wrapper shared by every endpoint:
//
//	{"error": false, "error_message": "", "data": [...]}
//
// The error field is false on success and truthy, usually a string,
// on failure.
type envelope struct {
	Error        json.RawMessage `json:"error"`
	ErrorMessage string          `json:"error_message"`
	Data         json.RawMessage `json:"data"`
}

// apiError interprets the envelope's error field. Anything other than
// absent, null, or false marks the response as failed.
func (e *envelope) apiError() *Error {
	raw := strings.TrimSpace(string(e.Error))
	if raw == "" || raw == "false" || raw == "null" {
		return nil
	}

	msg := e.ErrorMessage
	if msg == "" {
		var s string
		if err := json.Unmarshal(e.Error, &s); err == nil {
			msg = s
		}
	}
	if msg == "" {
		msg = "no message"
	}

	return &Error{Message: msg}
}
