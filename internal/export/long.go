package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/phishtab/phishtab/internal/extract"
)

// longHeader is the column set for the one-row-per-song dataset.
var longHeader = []string{
	"show_id", "date", "artist_name", "venue", "city", "state",
	"country", "tour_name", "rating", "reviews", "venue_id",
	"permalink", "set_name", "song_position", "song_name",
	"has_segue", "segue_info",
}

// songRow is one parsed (set, song) slot from a formatted setlist.
type songRow struct {
	SetName  string
	Position int
	SongName string
	HasSegue bool
	Segue    string
}

// parseSetlist recovers per-song rows from a formatted setlist line.
//
// The formatted string is the source of truth for this dataset, so the
// split is purely textual: sets on "|", the set label at the first ":",
// songs on ",". A trailing "->" or ">" marks a segue and is stripped
// from the name. Positions are 1-based comma slots within the set; a
// chunk that is empty after trimming keeps its slot but emits no row.
// Set chunks without a ":" are skipped entirely.
func parseSetlist(formatted string) []songRow {
	var rows []songRow
	if strings.TrimSpace(formatted) == "" {
		return rows
	}

	for _, setChunk := range strings.Split(formatted, "|") {
		label, songs, ok := strings.Cut(setChunk, ":")
		if !ok {
			continue
		}
		label = strings.TrimSpace(label)

		for i, songChunk := range strings.Split(songs, ",") {
			name := strings.TrimSpace(songChunk)

			hasSegue := false
			segue := ""
			switch {
			case strings.HasSuffix(name, "->"):
				hasSegue = true
				segue = "->"
				name = strings.TrimSpace(strings.TrimSuffix(name, "->"))
			case strings.HasSuffix(name, ">"):
				hasSegue = true
				segue = ">"
				name = strings.TrimSpace(strings.TrimSuffix(name, ">"))
			}

			if name == "" {
				continue
			}

			rows = append(rows, songRow{
				SetName:  label,
				Position: i + 1,
				SongName: name,
				HasSegue: hasSegue,
				Segue:    segue,
			})
		}
	}

	return rows
}

// WriteLong writes the one-row-per-song dataset for ML pipelines.
//
// A show whose setlist parses to nothing still emits a single row with
// blank song fields so every show stays represented.
func WriteLong(w io.Writer, shows []extract.Show) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(longHeader); err != nil {
		return err
	}

	for _, show := range shows {
		base := []string{
			itoa(show.ShowID),
			show.Date,
			show.ArtistName,
			show.Venue,
			show.City,
			show.State,
			show.Country,
			show.TourName,
			show.Rating,
			itoa(show.Reviews),
			itoa(show.VenueID),
			show.Permalink,
		}

		rows := parseSetlist(show.Setlist)
		if len(rows) == 0 {
			record := append(append([]string{}, base...), "", "0", "", "false", "")
			if err := cw.Write(record); err != nil {
				return err
			}
			continue
		}

		for _, row := range rows {
			record := append(append([]string{}, base...),
				row.SetName,
				strconv.Itoa(row.Position),
				row.SongName,
				strconv.FormatBool(row.HasSegue),
				row.Segue,
			)
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
