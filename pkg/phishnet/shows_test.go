package phishnet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestShowService_ByYear tests show catalog decoding.
func TestShowService_ByYear(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shows/showyear/1995.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		response := `{
			"error": false,
			"error_message": "",
			"data": [
				{
					"showid": 1251,
					"showdate": "1995-12-31",
					"artist_name": "Phish",
					"venue": "Madison Square Garden",
					"city": "New York",
					"state": "NY",
					"country": "USA",
					"tour_name": "1995 Fall Tour",
					"rating": "4.80",
					"reviews": 42,
					"venueid": 157,
					"permalink": "https://phish.net/setlists/1995-12-31"
				},
				{
					"showid": 1252,
					"showdate": "1995-06-10",
					"artist_name": "Trey Anastasio",
					"venue": "Somewhere Else"
				}
			]
		}`
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(response)); err != nil {
			t.Fatalf("failed to write response body: %v", err)
		}
	}))
	defer server.Close()

	client, err := NewClient(Config{
		APIKey:       "test-api-key",
		BaseURL:      server.URL,
		RequestDelay: -1,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	ctx := context.Background()
	shows, err := client.Shows().ByYear(ctx, 1995)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(shows) != 2 {
		t.Fatalf("expected 2 shows, got %d", len(shows))
	}

	first := shows[0]
	if first.ShowID != 1251 {
		t.Errorf("expected show id 1251, got %d", first.ShowID)
	}
	if first.ShowDate != "1995-12-31" {
		t.Errorf("expected date 1995-12-31, got %q", first.ShowDate)
	}
	if first.ArtistName != "Phish" {
		t.Errorf("expected artist Phish, got %q", first.ArtistName)
	}
	if first.Venue != "Madison Square Garden" {
		t.Errorf("expected venue Madison Square Garden, got %q", first.Venue)
	}
	if first.Rating != "4.80" {
		t.Errorf("expected rating 4.80, got %q", first.Rating)
	}
	if first.Reviews != 42 {
		t.Errorf("expected 42 reviews, got %d", first.Reviews)
	}

	// Missing fields decode as zero values.
	second := shows[1]
	if second.TourName != "" || second.Reviews != 0 || second.VenueID != 0 {
		t.Errorf("expected zero values for missing fields, got %+v", second)
	}
}

// TestShowService_TodayInHistory tests the connectivity probe endpoint.
func TestShowService_TodayInHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shows/tiph.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if key := r.URL.Query().Get("apikey"); key != "test-api-key" {
			t.Errorf("expected apikey test-api-key, got %q", key)
		}

		response := `{
			"error": false,
			"error_message": "",
			"data": [
				{"showid": 77, "showdate": "1994-08-22", "artist_name": "Phish"}
			]
		}`
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(response)); err != nil {
			t.Fatalf("failed to write response body: %v", err)
		}
	}))
	defer server.Close()

	client, err := NewClient(Config{
		APIKey:       "test-api-key",
		BaseURL:      server.URL,
		RequestDelay: -1,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	ctx := context.Background()
	shows, err := client.Shows().TodayInHistory(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shows) != 1 {
		t.Fatalf("expected 1 show, got %d", len(shows))
	}
	if shows[0].ShowDate != "1994-08-22" {
		t.Errorf("expected date 1994-08-22, got %q", shows[0].ShowDate)
	}
}
