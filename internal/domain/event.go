package domain

import "time"

// Event is one bookable or informational occurrence shown on the public site.
// Date, time and capacity are free-text display labels rather than structured
// values; TicketingID is the join key into the external ticketing system.
type Event struct {
	ID          string
	Title       string
	Description *string
	EventDate   *string
	EventTime   *string
	Location    *string
	Capacity    *string
	TicketingID string
	CreatedAt   time.Time
}

// EventInput carries the mutable fields for create and update. ID and
// CreatedAt are store-assigned and never accepted from callers.
type EventInput struct {
	Title       string
	Description string
	EventDate   string
	EventTime   string
	Location    string
	Capacity    string
	TicketingID string
}

// Fields returns the event's mutable fields as an input, with absent
// optionals rendered as empty strings. Used by the admin controller to
// snapshot a row before editing.
func (e Event) Fields() EventInput {
	return EventInput{
		Title:       e.Title,
		Description: deref(e.Description),
		EventDate:   deref(e.EventDate),
		EventTime:   deref(e.EventTime),
		Location:    deref(e.Location),
		Capacity:    deref(e.Capacity),
		TicketingID: e.TicketingID,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
