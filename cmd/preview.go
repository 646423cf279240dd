package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/phishtab/phishtab/internal/extract"
)

// previewRows is how many shows the post-extraction preview prints.
const previewRows = 5

// previewColumns defines the preview table layout. Widths are display
// columns, not bytes.
var previewColumns = []struct {
	title string
	width int
}{
	{"DATE", 10},
	{"VENUE", 30},
	{"CITY", 18},
	{"ST", 4},
	{"SONGS", 5},
}

// renderPreview renders the first few extracted shows as a fixed-width
// table so the run's output can be eyeballed before opening the CSVs.
func renderPreview(shows []extract.Show, max int) string {
	if len(shows) == 0 {
		return ""
	}
	count := len(shows)
	if count > max {
		count = max
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Preview (first %d of %d shows):\n", count, len(shows))

	cells := make([]string, len(previewColumns))
	for i, col := range previewColumns {
		cells[i] = padCell(col.title, col.width)
	}
	b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
	b.WriteString("\n")

	for _, show := range shows[:count] {
		row := []string{
			show.Date,
			show.Venue,
			show.City,
			show.State,
			strconv.Itoa(show.Features.TotalSongs()),
		}
		for i, col := range previewColumns {
			cells[i] = padCell(row[i], col.width)
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}

	return b.String()
}

// padCell pads or truncates text to a fixed display width, measured in
// display columns so wide characters stay aligned.
func padCell(text string, width int) string {
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "...")
	}
	if pad := width - runewidth.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}
