// Package extract orchestrates a full extraction run: sweeping the show
// catalog year by year, filtering to one artist, and enriching each
// show with its setlist.
package extract

import (
	"context"
	"strings"
	"time"

	"github.com/phishtab/phishtab/internal/setlist"
	"github.com/phishtab/phishtab/pkg/phishnet"
	"github.com/rs/zerolog"
)

// Options holds extraction run configuration
type Options struct {
	StartYear     int                // First year to sweep (defaults to DefaultStartYear)
	EndYear       int                // Last year to sweep (defaults to the current year)
	Artist        string             // Artist to keep, matched case-insensitively
	YearBatchSize int                // Years fetched between pauses
	ShowBatchSize int                // Shows enriched between pauses
	BatchDelay    time.Duration      // Pause between batches
	Sleep         phishnet.SleepFunc // Optional: wait implementation, replaced in tests
}

// Extraction defaults, tuned to stay inside the API rate limits.
const (
	DefaultStartYear     = 1983
	DefaultArtist        = "Phish"
	DefaultYearBatchSize = 5
	DefaultShowBatchSize = 50
	DefaultBatchDelay    = 2 * time.Second
)

// withDefaults fills unset options.
func (o Options) withDefaults(now time.Time) Options {
	if o.StartYear == 0 {
		o.StartYear = DefaultStartYear
	}
	if o.EndYear == 0 {
		o.EndYear = now.Year()
	}
	if o.Artist == "" {
		o.Artist = DefaultArtist
	}
	if o.YearBatchSize <= 0 {
		o.YearBatchSize = DefaultYearBatchSize
	}
	if o.ShowBatchSize <= 0 {
		o.ShowBatchSize = DefaultShowBatchSize
	}
	if o.BatchDelay == 0 {
		o.BatchDelay = DefaultBatchDelay
	}
	if o.Sleep == nil {
		o.Sleep = waitFor
	}
	return o
}

// Extractor drives the two fetch phases of a run: the year-by-year
// catalog sweep and the per-show setlist enrichment.
type Extractor struct {
	client   *phishnet.Client
	opts     Options
	logger   zerolog.Logger
	universe *setlist.Universe
}

// New creates a new Extractor
func New(client *phishnet.Client, opts Options, logger zerolog.Logger) *Extractor {
	return &Extractor{
		client:   client,
		opts:     opts.withDefaults(time.Now()),
		logger:   logger.With().Str("component", "extract").Logger(),
		universe: setlist.NewUniverse(),
	}
}

// Options returns the effective run options after defaulting.
func (e *Extractor) Options() Options {
	return e.opts
}

// Universe returns the song universe accumulated so far. It is filled
// during Enrich and consumed by the wide exporter.
func (e *Extractor) Universe() *setlist.Universe {
	return e.universe
}

// Run performs a complete extraction: catalog sweep, then setlist
// enrichment.
func (e *Extractor) Run(ctx context.Context) ([]Show, error) {
	shows, err := e.FetchShows(ctx)
	if err != nil {
		return nil, err
	}
	if len(shows) == 0 {
		return nil, nil
	}
	return e.Enrich(ctx, shows)
}

// FetchShows sweeps the show catalog year by year and keeps only the
// configured artist's shows, in the order the API returned them.
//
// A year that fails or comes back empty is logged and skipped; only
// context cancellation aborts the sweep.
func (e *Extractor) FetchShows(ctx context.Context) ([]phishnet.Show, error) {
	e.logger.Info().
		Int("start_year", e.opts.StartYear).
		Int("end_year", e.opts.EndYear).
		Str("artist", e.opts.Artist).
		Msg("Fetching show catalog")

	var all []phishnet.Show
	for batchStart := e.opts.StartYear; batchStart <= e.opts.EndYear; batchStart += e.opts.YearBatchSize {
		batchEnd := batchStart + e.opts.YearBatchSize - 1
		if batchEnd > e.opts.EndYear {
			batchEnd = e.opts.EndYear
		}

		e.logger.Info().Int("from", batchStart).Int("to", batchEnd).Msg("Processing year batch")

		for year := batchStart; year <= batchEnd; year++ {
			shows, err := e.client.Shows().ByYear(ctx, year)
			if err != nil {
				if ctx.Err() != nil {
					return all, ctx.Err()
				}
				e.logger.Warn().Err(err).Int("year", year).Msg("Failed to fetch shows for year")
				continue
			}
			if len(shows) == 0 {
				e.logger.Warn().Int("year", year).Msg("No shows found for year")
				continue
			}

			kept := 0
			for _, show := range shows {
				if strings.EqualFold(show.ArtistName, e.opts.Artist) {
					all = append(all, show)
					kept++
				}
			}

			e.logger.Info().
				Int("year", year).
				Int("kept", kept).
				Int("dropped", len(shows)-kept).
				Msg("Fetched shows for year")
		}

		// Pause between year batches, never after the last one.
		if batchEnd < e.opts.EndYear {
			if !e.opts.Sleep(ctx, e.opts.BatchDelay) {
				return all, ctx.Err()
			}
		}
	}

	e.logger.Info().Int("total", len(all)).Msg("Show catalog fetched")
	return all, nil
}

// Enrich fetches the setlist for each show and attaches the formatted
// line and derived features, preserving catalog order.
//
// Shows whose setlist cannot be fetched are kept with an empty setlist.
// Shows that fail the artist re-check or carry no date are dropped with
// a warning; only context cancellation aborts the pass.
func (e *Extractor) Enrich(ctx context.Context, shows []phishnet.Show) ([]Show, error) {
	total := len(shows)
	if total == 0 {
		return nil, nil
	}

	batches := (total + e.opts.ShowBatchSize - 1) / e.opts.ShowBatchSize
	e.logger.Info().Int("shows", total).Int("batches", batches).Msg("Fetching setlists")

	enriched := make([]Show, 0, total)
	for start := 0; start < total; start += e.opts.ShowBatchSize {
		end := start + e.opts.ShowBatchSize
		if end > total {
			end = total
		}

		e.logger.Info().
			Int("batch", start/e.opts.ShowBatchSize+1).
			Int("batches", batches).
			Msg("Processing show batch")

		for _, show := range shows[start:end] {
			if !strings.EqualFold(show.ArtistName, e.opts.Artist) {
				e.logger.Warn().
					Str("date", show.ShowDate).
					Str("artist", show.ArtistName).
					Msg("Skipping show by another artist")
				continue
			}
			if show.ShowDate == "" {
				e.logger.Warn().Int64("show_id", show.ShowID).Msg("Skipping show without a date")
				continue
			}

			entries, err := e.client.Setlists().ByDate(ctx, show.ShowDate)
			if err != nil {
				if ctx.Err() != nil {
					return enriched, ctx.Err()
				}
				// Keep the show; it exports with an empty setlist.
				e.logger.Warn().Err(err).Str("date", show.ShowDate).Msg("Failed to fetch setlist")
				entries = nil
			}

			enriched = append(enriched, newShow(show, entries, e.universe))
		}

		// Pause between show batches, never after the last one.
		if end < total {
			if !e.opts.Sleep(ctx, e.opts.BatchDelay) {
				return enriched, ctx.Err()
			}
		}
	}

	e.logger.Info().
		Int("total", len(enriched)).
		Int("distinct_songs", e.universe.Len()).
		Msg("Setlists fetched")
	return enriched, nil
}

// waitFor waits for the specified duration or until context is
// cancelled. Returns true if the wait completed.
func waitFor(ctx context.Context, duration time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(duration):
		return true
	}
}
