package domain

import (
	"strings"
	"unicode/utf8"
)

// Field length caps, matching the admin form limits.
const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 2000
	MaxEventDateLen   = 100
	MaxEventTimeLen   = 100
	MaxLocationLen    = 300
	MaxCapacityLen    = 50
	MaxTicketingIDLen = 50
)

// ValidateEventInput checks in against the event field rules and returns the
// normalized input on success. Every field is trimmed before checking; rules
// are evaluated in field declaration order so the returned messages keep a
// stable order. It never returns a raw error: the second return is nil or a
// *ValidationError listing every violation.
func ValidateEventInput(in EventInput) (EventInput, *ValidationError) {
	out := EventInput{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		EventDate:   strings.TrimSpace(in.EventDate),
		EventTime:   strings.TrimSpace(in.EventTime),
		Location:    strings.TrimSpace(in.Location),
		Capacity:    strings.TrimSpace(in.Capacity),
		TicketingID: strings.TrimSpace(in.TicketingID),
	}

	var msgs []string
	if out.Title == "" {
		msgs = append(msgs, "Title is required")
	} else if utf8.RuneCountInString(out.Title) > MaxTitleLen {
		msgs = append(msgs, "Title must be less than 200 characters")
	}
	if utf8.RuneCountInString(out.Description) > MaxDescriptionLen {
		msgs = append(msgs, "Description must be less than 2000 characters")
	}
	if utf8.RuneCountInString(out.EventDate) > MaxEventDateLen {
		msgs = append(msgs, "Date must be less than 100 characters")
	}
	if utf8.RuneCountInString(out.EventTime) > MaxEventTimeLen {
		msgs = append(msgs, "Time must be less than 100 characters")
	}
	if utf8.RuneCountInString(out.Location) > MaxLocationLen {
		msgs = append(msgs, "Location must be less than 300 characters")
	}
	if utf8.RuneCountInString(out.Capacity) > MaxCapacityLen {
		msgs = append(msgs, "Capacity must be less than 50 characters")
	}
	if out.TicketingID == "" {
		msgs = append(msgs, "Ticketing ID is required")
	} else {
		// Length and character rules are independent; an id can break both.
		if utf8.RuneCountInString(out.TicketingID) > MaxTicketingIDLen {
			msgs = append(msgs, "Ticketing ID must be less than 50 characters")
		}
		if !isDigits(out.TicketingID) {
			msgs = append(msgs, "Ticketing ID must contain only numbers")
		}
	}

	if len(msgs) > 0 {
		return EventInput{}, &ValidationError{Messages: msgs}
	}
	return out, nil
}

// OptionalText renders a trimmed optional field as nil when blank, so blank
// optionals are persisted as absent rather than empty strings.
func OptionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
