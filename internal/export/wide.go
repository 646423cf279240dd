package export

import (
	"encoding/csv"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/phishtab/phishtab/internal/extract"
	"github.com/phishtab/phishtab/internal/setlist"
)

// wideBaseHeader is the fixed prefix of the one-row-per-show feature
// matrix. The dynamic set and song columns follow it.
var wideBaseHeader = []string{
	"show_id", "date", "artist_name", "venue", "city", "state",
	"country", "tour_name", "rating", "reviews", "venue_id",
	"permalink", "total_songs", "unique_songs", "total_sets",
	"has_encore",
}

var (
	nonColumnChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// CleanColumnName reduces a song name to a CSV-safe column name:
// apostrophes drop, other non-alphanumerics become underscores,
// underscore runs collapse, edges trim, and the result lowercases.
//
//	"Run Like an Antelope" -> "run_like_an_antelope"
//	"Mike's Song"          -> "mikes_song"
func CleanColumnName(name string) string {
	cleaned := strings.ReplaceAll(name, "'", "")
	cleaned = nonColumnChars.ReplaceAllString(cleaned, "_")
	cleaned = underscoreRuns.ReplaceAllString(cleaned, "_")
	cleaned = strings.Trim(cleaned, "_")
	return strings.ToLower(cleaned)
}

// setColumn derives the per-set count column from a set label.
func setColumn(label string) string {
	return "songs_in_" + strings.ReplaceAll(strings.ToLower(label), " ", "_")
}

// WriteWide writes the one-row-per-show feature matrix.
//
// After the fixed base columns come one songs_in_* count column per
// set label, ordered by first appearance anywhere in the dataset, then
// the song indicator and repeat-count columns sorted by column name.
// Indicator cells are "1" or "0". Count columns exist only for songs
// some show played more than once and stay blank everywhere else, as
// do set counts for sets a show did not play.
func WriteWide(w io.Writer, shows []extract.Show, universe *setlist.Universe) error {
	var setColumns []string
	seenSets := make(map[string]bool)
	countColumns := make(map[string]string) // column -> song it counts

	for _, show := range shows {
		for _, label := range show.Features.SetOrder {
			column := setColumn(label)
			if !seenSets[column] {
				seenSets[column] = true
				setColumns = append(setColumns, column)
			}
		}
		for name, count := range show.Features.Counts {
			if count > 1 {
				countColumns["song_"+CleanColumnName(name)+"_count"] = name
			}
		}
	}

	indicatorColumns := make(map[string]string, universe.Len()) // column -> song it flags
	songColumns := make([]string, 0, universe.Len()+len(countColumns))
	seenSongs := make(map[string]bool)
	for _, name := range universe.Songs() {
		column := "song_" + CleanColumnName(name)
		indicatorColumns[column] = name
		if !seenSongs[column] {
			seenSongs[column] = true
			songColumns = append(songColumns, column)
		}
	}
	for column := range countColumns {
		if !seenSongs[column] {
			seenSongs[column] = true
			songColumns = append(songColumns, column)
		}
	}
	sort.Strings(songColumns)

	header := make([]string, 0, len(wideBaseHeader)+len(setColumns)+len(songColumns))
	header = append(header, wideBaseHeader...)
	header = append(header, setColumns...)
	header = append(header, songColumns...)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, show := range shows {
		record := make([]string, 0, len(header))
		record = append(record,
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
			strconv.Itoa(show.Features.TotalSongs()),
			strconv.Itoa(show.Features.UniqueSongs()),
			strconv.Itoa(show.Features.TotalSets()),
			strconv.FormatBool(show.Features.HasEncore()),
		)

		setCounts := make(map[string]string, len(show.Features.Sets))
		for label, songs := range show.Features.Sets {
			setCounts[setColumn(label)] = strconv.Itoa(len(songs))
		}
		for _, column := range setColumns {
			record = append(record, setCounts[column])
		}

		for _, column := range songColumns {
			if name, ok := indicatorColumns[column]; ok {
				if show.Features.Counts[name] > 0 {
					record = append(record, "1")
				} else {
					record = append(record, "0")
				}
				continue
			}
			name := countColumns[column]
			if count := show.Features.Counts[name]; count > 1 {
				record = append(record, strconv.Itoa(count))
			} else {
				record = append(record, "")
			}
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
