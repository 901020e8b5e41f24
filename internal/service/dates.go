package service

import "time"

// Layouts observed in the seed data. Article dates are office-written free
// text ("Oct 26, 2023"); resource and attendance dates are ISO days.
var portalDateLayouts = []string{
	"Jan 2, 2006",
	"2006-01-02",
	"January 2, 2006",
	"02 Jan 2006",
}

// parsePortalDate attempts a best-effort parse of a portal date string.
// Unparseable values report ok=false and sort after everything parseable,
// matching the forgiving behaviour of the listing views.
func parsePortalDate(raw string) (time.Time, bool) {
	for _, layout := range portalDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
