package export

import (
	"encoding/csv"
	"io"

	"github.com/phishtab/phishtab/internal/extract"
)

// standardHeader is the column set for the per-show summary dataset.
var standardHeader = []string{
	"show_id", "date", "artist_name", "venue", "city", "state",
	"country", "tour_name", "setlist", "rating", "reviews",
	"venue_id", "permalink",
}

// WriteStandard writes one row per show: the descriptive catalog fields
// plus the formatted setlist line. The derived feature bag has no flat
// representation in this shape and is dropped.
func WriteStandard(w io.Writer, shows []extract.Show) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(standardHeader); err != nil {
		return err
	}

	for _, show := range shows {
		record := []string{
			itoa(show.ShowID),
			show.Date,
			show.ArtistName,
			show.Venue,
			show.City,
			show.State,
			show.Country,
			show.TourName,
			show.Setlist,
			show.Rating,
			itoa(show.Reviews),
			itoa(show.VenueID),
			show.Permalink,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
