package export

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/phishtab/phishtab/internal/extract"
)

// sqliteSchema mirrors the flat datasets relationally: one row per show
// plus one row per parsed song performance.
const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS shows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		show_id INTEGER,
		date TEXT NOT NULL,
		artist_name TEXT NOT NULL,
		venue TEXT,
		city TEXT,
		state TEXT,
		country TEXT,
		tour_name TEXT,
		setlist TEXT,
		rating TEXT,
		reviews INTEGER,
		venue_id INTEGER,
		permalink TEXT
	);

	CREATE TABLE IF NOT EXISTS performances (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		show INTEGER NOT NULL REFERENCES shows(id),
		set_name TEXT,
		position INTEGER,
		song TEXT NOT NULL,
		has_segue BOOLEAN DEFAULT 0,
		segue TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_performances_show ON performances(show);
	CREATE INDEX IF NOT EXISTS idx_performances_song ON performances(song);
	CREATE INDEX IF NOT EXISTS idx_shows_date ON shows(date);
`

// WriteSQLite mirrors the enriched shows into a SQLite database at
// path, creating the file and schema as needed. Performance rows come
// from the same setlist parse the long dataset uses, so the two stay
// consistent.
func WriteSQLite(path string, shows []extract.Show) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Single connection keeps writes ordered.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",    // Enforce foreign key constraints
		"PRAGMA busy_timeout = 10000", // Wait up to 10 seconds on lock
		"PRAGMA synchronous = NORMAL", // Balance between safety and performance
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertShow, err := tx.Prepare(`
		INSERT INTO shows (show_id, date, artist_name, venue, city, state,
			country, tour_name, setlist, rating, reviews, venue_id, permalink)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare show insert: %w", err)
	}
	defer insertShow.Close()

	insertPerformance, err := tx.Prepare(`
		INSERT INTO performances (show, set_name, position, song, has_segue, segue)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare performance insert: %w", err)
	}
	defer insertPerformance.Close()

	for _, show := range shows {
		result, err := insertShow.Exec(
			show.ShowID,
			show.Date,
			show.ArtistName,
			show.Venue,
			show.City,
			show.State,
			show.Country,
			show.TourName,
			show.Setlist,
			show.Rating,
			show.Reviews,
			show.VenueID,
			show.Permalink,
		)
		if err != nil {
			return fmt.Errorf("failed to insert show %s: %w", show.Date, err)
		}

		rowID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get insert id: %w", err)
		}

		for _, row := range parseSetlist(show.Setlist) {
			if _, err := insertPerformance.Exec(
				rowID,
				row.SetName,
				row.Position,
				row.SongName,
				row.HasSegue,
				row.Segue,
			); err != nil {
				return fmt.Errorf("failed to insert performance %s: %w", row.SongName, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
