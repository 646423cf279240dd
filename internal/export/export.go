// Package export writes extraction results as the three flat CSV
// datasets and an optional SQLite mirror.
package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Dataset tags used in generated filenames.
const (
	TagStandard = "standard"
	TagWide     = "wide_format"
	TagLong     = "ml_format"
)

// DefaultPrefix is the conventional filename prefix.
const DefaultPrefix = "phish_shows"

// Filename builds the conventional output name
//
//	{prefix}_{years}_{tag}_{timestamp}.csv
//
// where years is "all_years" when no explicit range was requested, a
// bare year when start and end match, and "start-end" otherwise.
func Filename(prefix string, startYear, endYear int, tag string, now time.Time) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	years := "all_years"
	switch {
	case startYear != 0 && startYear == endYear:
		years = strconv.Itoa(startYear)
	case startYear != 0 && endYear != 0:
		years = fmt.Sprintf("%d-%d", startYear, endYear)
	}

	return fmt.Sprintf("%s_%s_%s_%s.csv", prefix, years, tag, now.Format("20060102_150405"))
}

// WriteFile creates path and streams the dataset produced by write
// into it.
func WriteFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// itoa renders an integer CSV cell.
func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
