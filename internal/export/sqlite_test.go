package export

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/phishtab/phishtab/internal/extract"
	"github.com/phishtab/phishtab/internal/setlist"
	"github.com/phishtab/phishtab/pkg/phishnet"
)

// TestWriteSQLite tests mirroring shows and parsed performances into a
// fresh database file.
func TestWriteSQLite(t *testing.T) {
	universe := setlist.NewUniverse()
	shows := []extract.Show{
		buildShow(t, 1, "1997-11-22", []phishnet.SetlistEntry{
			{Set: "Set 1", Song: "Tweezer", Position: 1, Segue: ">"},
			{Set: "Set 1", Song: "Taste", Position: 2},
			{Set: "Encore", Song: "Character Zero", Position: 3},
		}, universe),
		buildShow(t, 2, "1997-11-23", nil, universe),
	}

	path := filepath.Join(t.TempDir(), "shows.db")
	if err := WriteSQLite(path, shows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var showCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM shows").Scan(&showCount); err != nil {
		t.Fatalf("failed to count shows: %v", err)
	}
	if showCount != 2 {
		t.Errorf("expected 2 shows, got %d", showCount)
	}

	var performanceCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM performances").Scan(&performanceCount); err != nil {
		t.Fatalf("failed to count performances: %v", err)
	}
	if performanceCount != 3 {
		t.Errorf("expected 3 performances, got %d", performanceCount)
	}

	var (
		date    string
		venue   string
		aSet    string
		reviews int64
	)
	row := db.QueryRow("SELECT date, venue, setlist, reviews FROM shows WHERE show_id = 1")
	if err := row.Scan(&date, &venue, &aSet, &reviews); err != nil {
		t.Fatalf("failed to read show: %v", err)
	}
	if date != "1997-11-22" {
		t.Errorf("expected date 1997-11-22, got %q", date)
	}
	if venue != "Madison Square Garden" {
		t.Errorf("expected venue Madison Square Garden, got %q", venue)
	}
	if aSet != "Set 1: Tweezer >, Taste | Encore: Character Zero" {
		t.Errorf("unexpected setlist %q", aSet)
	}
	if reviews != 10 {
		t.Errorf("expected 10 reviews, got %d", reviews)
	}

	var (
		setName  string
		position int
		hasSegue bool
		segue    string
	)
	row = db.QueryRow("SELECT set_name, position, has_segue, segue FROM performances WHERE song = 'Tweezer'")
	if err := row.Scan(&setName, &position, &hasSegue, &segue); err != nil {
		t.Fatalf("failed to read performance: %v", err)
	}
	if setName != "Set 1" || position != 1 || !hasSegue || segue != ">" {
		t.Errorf("performance = (%q, %d, %v, %q), want (Set 1, 1, true, >)", setName, position, hasSegue, segue)
	}

	// The empty show contributes no performance rows.
	var orphanCount int
	query := "SELECT COUNT(*) FROM performances p JOIN shows s ON p.show = s.id WHERE s.show_id = 2"
	if err := db.QueryRow(query).Scan(&orphanCount); err != nil {
		t.Fatalf("failed to count performances for empty show: %v", err)
	}
	if orphanCount != 0 {
		t.Errorf("expected no performances for empty show, got %d", orphanCount)
	}
}

// TestWriteSQLite_Rerun tests that the schema tolerates writing into an
// existing database.
func TestWriteSQLite_Rerun(t *testing.T) {
	universe := setlist.NewUniverse()
	shows := []extract.Show{
		buildShow(t, 1, "1997-11-22", []phishnet.SetlistEntry{
			{Set: "Set 1", Song: "Tweezer", Position: 1},
		}, universe),
	}

	path := filepath.Join(t.TempDir(), "shows.db")
	if err := WriteSQLite(path, shows); err != nil {
		t.Fatalf("unexpected error on first write: %v", err)
	}
	if err := WriteSQLite(path, shows); err != nil {
		t.Fatalf("unexpected error on second write: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var showCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM shows").Scan(&showCount); err != nil {
		t.Fatalf("failed to count shows: %v", err)
	}
	if showCount != 2 {
		t.Errorf("expected 2 shows after rerun, got %d", showCount)
	}
}
