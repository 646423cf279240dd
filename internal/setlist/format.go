// Package setlist turns raw setlist entries into the flat strings and
// derived song features the exporters consume.
package setlist

import (
	"sort"
	"strings"

	"github.com/phishtab/phishtab/pkg/phishnet"
)

const (
	// UnknownSong is rendered when an entry has no song title.
	UnknownSong = "Unknown Song"

	// UnknownSet labels entries whose set field is blank.
	UnknownSet = "Unknown Set"

	// missingPositionSentinel sorts entries without a position to the
	// end of their set.
	missingPositionSentinel = 999
)

// Format renders a show's setlist entries as a single line: sets joined
// by " | ", songs within a set joined by ", ", and the segue marker
// appended to the song it leads out of.
//
//	Set 1: Mike's Song >, Weekapaug Groove | Encore: Character Zero
//
// Sets appear in first-seen order and songs sort by position within
// their set, ties keeping arrival order. Entries missing a song title
// or set label render with the Unknown placeholders so gaps stay
// visible. An empty entry slice formats to the empty string.
func Format(entries []phishnet.SetlistEntry) string {
	if len(entries) == 0 {
		return ""
	}

	type slot struct {
		position int
		name     string
	}

	groups := make(map[string][]slot)
	var order []string

	for _, entry := range entries {
		set := strings.TrimSpace(entry.Set)
		if set == "" {
			set = UnknownSet
		}

		name := strings.TrimSpace(entry.Song)
		if name == "" {
			name = UnknownSong
		}
		if segue := strings.TrimSpace(entry.Segue); segue != "" {
			name += " " + segue
		}

		position := entry.Position
		if position <= 0 {
			position = missingPositionSentinel
		}

		if _, ok := groups[set]; !ok {
			order = append(order, set)
		}
		groups[set] = append(groups[set], slot{position: position, name: name})
	}

	sets := make([]string, 0, len(order))
	for _, set := range order {
		slots := groups[set]
		sort.SliceStable(slots, func(i, j int) bool {
			return slots[i].position < slots[j].position
		})

		names := make([]string, len(slots))
		for i, s := range slots {
			names[i] = s.name
		}
		sets = append(sets, set+": "+strings.Join(names, ", "))
	}

	return strings.Join(sets, " | ")
}
