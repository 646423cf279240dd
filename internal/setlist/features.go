package setlist

import (
	"sort"
	"strings"

	"github.com/phishtab/phishtab/pkg/phishnet"
)

// Universe accumulates every distinct song name seen during one
// extraction run. The wide exporter reads it to decide which song
// columns exist, so a Universe is only meaningful for the run that
// filled it. Construct a fresh one per run.
type Universe struct {
	names map[string]struct{}
}

// NewUniverse returns an empty song universe.
func NewUniverse() *Universe {
	return &Universe{names: make(map[string]struct{})}
}

// Add records a song name.
func (u *Universe) Add(name string) {
	u.names[name] = struct{}{}
}

// Contains reports whether name has been recorded.
func (u *Universe) Contains(name string) bool {
	_, ok := u.names[name]
	return ok
}

// Len returns the number of distinct songs recorded.
func (u *Universe) Len() int {
	return len(u.names)
}

// Songs returns the recorded names sorted alphabetically.
func (u *Universe) Songs() []string {
	songs := make([]string, 0, len(u.names))
	for name := range u.names {
		songs = append(songs, name)
	}
	sort.Strings(songs)
	return songs
}

// FeatureBag holds the per-show song features derived from one setlist.
//
// SongsPlayed keeps every performance in order, duplicates included.
// The maps are keyed by song name; when a song repeats within a show,
// its last occurrence wins for Positions and Segues.
type FeatureBag struct {
	SongsPlayed []string            // every performance in order, duplicates kept
	Counts      map[string]int      // plays per song within the show
	Positions   map[string]int      // position of the song's last occurrence
	Segues      map[string]bool     // whether the last occurrence segued
	Sets        map[string][]string // song names grouped by set label
	SetOrder    []string            // set labels in first-seen order
}

// ExtractFeatures derives the feature bag for one show and feeds every
// usable song name into the run's universe. Names that are blank after
// trimming or equal the UnknownSong placeholder are discarded entirely,
// unlike in Format which renders placeholders for visibility.
//
// universe may be nil when cross-show aggregation is not needed.
func ExtractFeatures(entries []phishnet.SetlistEntry, universe *Universe) FeatureBag {
	bag := FeatureBag{
		Counts:    make(map[string]int),
		Positions: make(map[string]int),
		Segues:    make(map[string]bool),
		Sets:      make(map[string][]string),
	}

	for _, entry := range entries {
		name := strings.TrimSpace(entry.Song)
		if name == "" || name == UnknownSong {
			continue
		}

		if universe != nil {
			universe.Add(name)
		}

		bag.SongsPlayed = append(bag.SongsPlayed, name)
		bag.Counts[name]++
		bag.Positions[name] = entry.Position
		bag.Segues[name] = strings.TrimSpace(entry.Segue) != ""

		set := strings.TrimSpace(entry.Set)
		if set == "" {
			set = UnknownSet
		}
		if _, ok := bag.Sets[set]; !ok {
			bag.SetOrder = append(bag.SetOrder, set)
		}
		bag.Sets[set] = append(bag.Sets[set], name)
	}

	return bag
}

// TotalSongs returns the number of performances, duplicates included.
func (b FeatureBag) TotalSongs() int {
	return len(b.SongsPlayed)
}

// UniqueSongs returns the number of distinct songs played.
func (b FeatureBag) UniqueSongs() int {
	return len(b.Counts)
}

// TotalSets returns the number of distinct set labels.
func (b FeatureBag) TotalSets() int {
	return len(b.Sets)
}

// HasEncore reports whether the show carried an encore set, under
// either of the labels the archive uses.
func (b FeatureBag) HasEncore() bool {
	if _, ok := b.Sets["Encore"]; ok {
		return true
	}
	_, ok := b.Sets["E"]
	return ok
}
