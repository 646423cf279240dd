package extract

import (
	"github.com/phishtab/phishtab/internal/setlist"
	"github.com/phishtab/phishtab/pkg/phishnet"
)

// Show is one enriched concert record: the catalog fields plus the
// formatted setlist line and the derived song features.
type Show struct {
	ShowID     int64
	Date       string // YYYY-MM-DD, the natural key for setlist lookup
	ArtistName string
	Venue      string
	City       string
	State      string
	Country    string
	TourName   string
	Setlist    string
	Rating     string
	Reviews    int64
	VenueID    int64
	Permalink  string
	Features   setlist.FeatureBag
}

// newShow builds the enriched record for one catalog show.
func newShow(raw phishnet.Show, entries []phishnet.SetlistEntry, universe *setlist.Universe) Show {
	return Show{
		ShowID:     raw.ShowID,
		Date:       raw.ShowDate,
		ArtistName: raw.ArtistName,
		Venue:      raw.Venue,
		City:       raw.City,
		State:      raw.State,
		Country:    raw.Country,
		TourName:   raw.TourName,
		Setlist:    setlist.Format(entries),
		Rating:     raw.Rating,
		Reviews:    raw.Reviews,
		VenueID:    raw.VenueID,
		Permalink:  raw.Permalink,
		Features:   setlist.ExtractFeatures(entries, universe),
	}
}
