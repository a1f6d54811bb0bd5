// Package schedule partitions events into upcoming and past for display.
//
// Events carry free-text date and time labels ("March 15, 2026",
// "2:00 PM - 5:00 PM") rather than structured timestamps, so classification
// parses them heuristically. Callers that move to structured date storage
// only need to replace this package.
package schedule

import (
	"strings"
	"time"

	"github.com/clearpath-coaching/site-api/internal/domain"
)

// startLayout is the fixed pattern the date and start-time labels are parsed
// against, e.g. "March 15, 2026 2:00 PM".
const startLayout = "January 2, 2006 3:04 PM"

// Classification holds the two display buckets. Order within each bucket
// follows the input order.
type Classification struct {
	Upcoming []domain.Event
	Past     []domain.Event
}

// Classify partitions events by comparing each event's start instant against
// now. An event is past iff its start is strictly before now. Events whose
// date or time is absent or unparseable are always upcoming: a stale label is
// better shown than silently hidden. Pure function of (events, now); callers
// must re-run it per evaluation since now advances.
func Classify(events []domain.Event, now time.Time) Classification {
	var c Classification
	for _, event := range events {
		start, ok := StartInstant(event, now.Location())
		if ok && start.Before(now) {
			c.Past = append(c.Past, event)
		} else {
			c.Upcoming = append(c.Upcoming, event)
		}
	}
	return c
}

// StartInstant derives the comparison instant for an event from its free-text
// labels. The start-time text is the substring of EventTime before the first
// "-" (so "2:00 PM - 5:00 PM" yields "2:00 PM"). Returns ok=false when either
// label is absent or the combined text does not match the expected pattern.
func StartInstant(event domain.Event, loc *time.Location) (time.Time, bool) {
	if event.EventDate == nil || event.EventTime == nil {
		return time.Time{}, false
	}
	startText, _, _ := strings.Cut(*event.EventTime, "-")
	startText = strings.TrimSpace(startText)

	combined := strings.TrimSpace(*event.EventDate) + " " + startText
	start, err := time.ParseInLocation(startLayout, combined, loc)
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}
