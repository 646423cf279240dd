package export

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/phishtab/phishtab/internal/extract"
	"github.com/phishtab/phishtab/internal/setlist"
	"github.com/phishtab/phishtab/pkg/phishnet"
)

// TestParseSetlist tests recovering song rows from formatted setlists.
func TestParseSetlist(t *testing.T) {
	tests := []struct {
		name      string
		formatted string
		want      []songRow
	}{
		{
			name:      "two sets with segue",
			formatted: "Set 1: Tweezer >, Mike's Song | Encore: Tweezer",
			want: []songRow{
				{SetName: "Set 1", Position: 1, SongName: "Tweezer", HasSegue: true, Segue: ">"},
				{SetName: "Set 1", Position: 2, SongName: "Mike's Song"},
				{SetName: "Encore", Position: 1, SongName: "Tweezer"},
			},
		},
		{
			name:      "arrow segue",
			formatted: "Set 2: Mike's Song ->, Weekapaug Groove",
			want: []songRow{
				{SetName: "Set 2", Position: 1, SongName: "Mike's Song", HasSegue: true, Segue: "->"},
				{SetName: "Set 2", Position: 2, SongName: "Weekapaug Groove"},
			},
		},
		{
			name:      "empty chunk keeps its slot",
			formatted: "Set 1: , Foo",
			want: []songRow{
				{SetName: "Set 1", Position: 2, SongName: "Foo"},
			},
		},
		{
			name:      "chunk without label separator skipped",
			formatted: "no label here | Set 2: Ghost",
			want: []songRow{
				{SetName: "Set 2", Position: 1, SongName: "Ghost"},
			},
		},
		{
			name:      "empty string",
			formatted: "",
			want:      nil,
		},
		{
			name:      "whitespace only",
			formatted: "   ",
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSetlist(tt.formatted)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSetlist(%q) = %+v, want %+v", tt.formatted, got, tt.want)
			}
		})
	}
}

// TestParseSetlist_RecoversSetGroupings tests that parsing a formatted
// setlist recovers the same set and song pairs that feature extraction
// derives from the structured entries.
func TestParseSetlist_RecoversSetGroupings(t *testing.T) {
	entries := []phishnet.SetlistEntry{
		{Set: "Set 1", Song: "Tweezer", Position: 1, Segue: ">"},
		{Set: "Set 1", Song: "Mike's Song", Position: 2},
		{Set: "Set 2", Song: "Ghost", Position: 3, Segue: "->"},
		{Set: "Set 2", Song: "Free", Position: 4},
		{Set: "Encore", Song: "Tweezer", Position: 5},
	}

	bag := setlist.ExtractFeatures(entries, nil)
	rows := parseSetlist(setlist.Format(entries))

	type pair struct {
		set  string
		song string
	}

	want := make(map[pair]bool)
	for set, songs := range bag.Sets {
		for _, song := range songs {
			want[pair{set, song}] = true
		}
	}

	got := make(map[pair]bool)
	for _, row := range rows {
		got[pair{row.SetName, row.SongName}] = true
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("recovered pairs = %v, want %v", got, want)
	}
}

// TestWriteLong tests the one-row-per-song dataset shape.
func TestWriteLong(t *testing.T) {
	universe := setlist.NewUniverse()
	shows := []extract.Show{
		buildShow(t, 1, "1997-11-22", []phishnet.SetlistEntry{
			{Set: "Set 1", Song: "Tweezer", Position: 1, Segue: ">"},
			{Set: "Set 1", Song: "Taste", Position: 2},
			{Set: "Encore", Song: "Character Zero", Position: 3},
		}, universe),
		buildShow(t, 2, "1997-11-23", nil, universe),
	}

	var buf bytes.Buffer
	if err := WriteLong(&buf, shows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := readCSV(t, &buf)
	if len(records) != 5 {
		t.Fatalf("expected header plus 4 rows, got %d records", len(records))
	}

	header := records[0]
	if !reflect.DeepEqual(header, longHeader) {
		t.Errorf("header = %v, want %v", header, longHeader)
	}

	setName := columnIndex(t, header, "set_name")
	position := columnIndex(t, header, "song_position")
	songName := columnIndex(t, header, "song_name")
	hasSegue := columnIndex(t, header, "has_segue")
	segueInfo := columnIndex(t, header, "segue_info")

	wantSongs := []struct {
		setName, position, songName, hasSegue, segueInfo string
	}{
		{"Set 1", "1", "Tweezer", "true", ">"},
		{"Set 1", "2", "Taste", "false", ""},
		{"Encore", "1", "Character Zero", "false", ""},
	}
	for i, want := range wantSongs {
		row := records[i+1]
		if row[setName] != want.setName || row[position] != want.position ||
			row[songName] != want.songName || row[hasSegue] != want.hasSegue ||
			row[segueInfo] != want.segueInfo {
			t.Errorf("row %d = (%q, %q, %q, %q, %q), want (%q, %q, %q, %q, %q)",
				i+1, row[setName], row[position], row[songName], row[hasSegue], row[segueInfo],
				want.setName, want.position, want.songName, want.hasSegue, want.segueInfo)
		}
	}

	// Base show fields repeat on every song row.
	venue := columnIndex(t, header, "venue")
	for i := 1; i <= 3; i++ {
		if records[i][venue] != records[1][venue] {
			t.Errorf("row %d venue = %q, want %q", i, records[i][venue], records[1][venue])
		}
	}

	// A show without setlist data still gets one placeholder row.
	last := records[4]
	if last[columnIndex(t, header, "show_id")] != "2" {
		t.Errorf("expected placeholder row for show 2, got show_id %q", last[columnIndex(t, header, "show_id")])
	}
	if last[setName] != "" || last[position] != "0" || last[songName] != "" ||
		last[hasSegue] != "false" || last[segueInfo] != "" {
		t.Errorf("placeholder row = (%q, %q, %q, %q, %q), want blanks with zero position",
			last[setName], last[position], last[songName], last[hasSegue], last[segueInfo])
	}
}
