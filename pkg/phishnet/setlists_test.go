package phishnet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestSetlistService_ByDate tests setlist decoding and path
// construction.
func TestSetlistService_ByDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/setlists/showdate/1997-11-22.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		response := `{
			"error": false,
			"error_message": "",
			"data": [
				{"set": "Set 1", "song": "Mike's Song", "position": 1, "segue": ">"},
				{"set": "Set 1", "song": "Weekapaug Groove", "position": 2, "segue": ""},
				{"set": "Encore", "song": "Character Zero", "position": 3}
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
	entries, err := client.Setlists().ByDate(ctx, "1997-11-22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Set != "Set 1" {
		t.Errorf("expected set 'Set 1', got %q", first.Set)
	}
	if first.Song != "Mike's Song" {
		t.Errorf("expected song 'Mike's Song', got %q", first.Song)
	}
	if first.Position != 1 {
		t.Errorf("expected position 1, got %d", first.Position)
	}
	if first.Segue != ">" {
		t.Errorf("expected segue '>', got %q", first.Segue)
	}

	if entries[1].Segue != "" {
		t.Errorf("expected empty segue, got %q", entries[1].Segue)
	}
	if entries[2].Segue != "" {
		t.Errorf("expected empty segue for missing field, got %q", entries[2].Segue)
	}
}

// TestSetlistService_ByDate_Empty tests that a date with no setlist
// yields an empty slice rather than an error.
func TestSetlistService_ByDate_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"error": false, "error_message": "", "data": []}`)); err != nil {
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
	entries, err := client.Setlists().ByDate(ctx, "1983-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
