// Package localtime produces the display timestamps written to listing rows
// and rendered on pages.
package localtime

import "time"

// displayLayout is the short en-PH style timestamp, e.g. "8/28/2026, 6:07:09 PM".
const displayLayout = "1/2/2006, 3:04:05 PM"

// legacyOffset is the fixed UTC+8 shift applied before formatting.
const legacyOffset = 8 * time.Hour

// Format renders t for display. The UTC instant is shifted by a fixed +8
// hours and the shifted wall clock is then formatted as-is, without a zone
// conversion, so output runs exactly 8 hours ahead of UTC regardless of the
// server's zone or daylight rules.
//
// NOTE: this shift-then-relabel is not correct timezone handling. It is kept
// because stored date_added/date_updated values and rendered pages depend on
// the exact output; do not copy this pattern into new timestamp code.
func Format(t time.Time) string {
	return t.UTC().Add(legacyOffset).Format(displayLayout)
}

// DisplayNow renders the current instant for display.
func DisplayNow() string {
	return Format(time.Now())
}
