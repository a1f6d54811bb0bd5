package schedule

import (
	"testing"
	"time"

	"github.com/clearpath-coaching/site-api/internal/domain"
)

func ptr(s string) *string { return &s }

func eventAt(date, timeRange string) domain.Event {
	return domain.Event{
		ID:          "e1",
		Title:       "Career Transition Workshop",
		EventDate:   ptr(date),
		EventTime:   ptr(timeRange),
		TicketingID: "1975525265248",
	}
}

func TestClassify_PastAndUpcoming(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := eventAt("March 15, 2024", "2:00 PM - 5:00 PM")
	upcoming := eventAt("March 15, 2026", "2:00 PM - 5:00 PM")

	c := Classify([]domain.Event{past, upcoming}, now)

	if len(c.Past) != 1 || c.Past[0].ID != past.ID {
		t.Fatalf("expected one past event, got %+v", c.Past)
	}
	if len(c.Upcoming) != 1 || c.Upcoming[0].ID != upcoming.ID {
		t.Fatalf("expected one upcoming event, got %+v", c.Upcoming)
	}
}

func TestClassify_StartStrictlyBeforeNow(t *testing.T) {
	t.Parallel()

	// An event starting exactly at the evaluation instant is still upcoming.
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	event := eventAt("March 15, 2026", "2:00 PM - 5:00 PM")

	c := Classify([]domain.Event{event}, now)
	if len(c.Upcoming) != 1 {
		t.Fatalf("expected event starting now to be upcoming, got %+v", c)
	}

	c = Classify([]domain.Event{event}, now.Add(time.Minute))
	if len(c.Past) != 1 {
		t.Fatalf("expected started event to be past, got %+v", c)
	}
}

func TestClassify_AbsentFieldsDefaultToUpcoming(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	noDate := domain.Event{ID: "a", EventTime: ptr("2:00 PM - 5:00 PM")}
	noTime := domain.Event{ID: "b", EventDate: ptr("March 15, 2024")}
	neither := domain.Event{ID: "c"}

	c := Classify([]domain.Event{noDate, noTime, neither}, now)
	if len(c.Past) != 0 {
		t.Fatalf("expected no past events, got %+v", c.Past)
	}
	if len(c.Upcoming) != 3 {
		t.Fatalf("expected all three events upcoming, got %+v", c.Upcoming)
	}
}

func TestClassify_MalformedTextDefaultsToUpcoming(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	events := []domain.Event{
		eventAt("next Tuesday", "after lunch"),
		eventAt("2024-03-15", "14:00 - 17:00"),
		eventAt("March 15, 2024", "sometime"),
	}

	c := Classify(events, now)
	if len(c.Upcoming) != len(events) {
		t.Fatalf("expected all malformed events upcoming, got %+v", c)
	}
}

func TestStartInstant_SplitsTimeRangeOnFirstDash(t *testing.T) {
	t.Parallel()

	event := eventAt("March 15, 2026", "2:00 PM - 5:00 PM")
	start, ok := StartInstant(event, time.UTC)
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	want := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Fatalf("expected start %v, got %v", want, start)
	}

	// A time label without a range still parses as the start time.
	single := eventAt("March 15, 2026", "2:00 PM")
	start, ok = StartInstant(single, time.UTC)
	if !ok || !start.Equal(want) {
		t.Fatalf("expected single time to parse to %v, got %v ok=%v", want, start, ok)
	}
}

func TestClassify_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	first := eventAt("January 10, 2026", "6:00 PM - 8:00 PM")
	first.ID = "first"
	second := eventAt("January 25, 2026", "10:00 AM - 1:00 PM")
	second.ID = "second"

	c := Classify([]domain.Event{first, second}, now)
	if len(c.Past) != 2 || c.Past[0].ID != "first" || c.Past[1].ID != "second" {
		t.Fatalf("expected input order preserved, got %+v", c.Past)
	}
}
