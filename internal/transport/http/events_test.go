package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clearpath-coaching/site-api/internal/clock"
	"github.com/clearpath-coaching/site-api/internal/domain"
)

type stubPublicService struct {
	events []domain.Event
	err    error
}

func (s *stubPublicService) ListPublic(_ context.Context) ([]domain.Event, error) {
	return s.events, s.err
}

func ptr(s string) *string { return &s }

func TestHandlePublicEvents_ClassifiesBuckets(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &stubPublicService{events: []domain.Event{
		{
			ID:          "past-1",
			Title:       "Interview Skills Workshop",
			EventDate:   ptr("March 15, 2024"),
			EventTime:   ptr("2:00 PM - 5:00 PM"),
			TicketingID: "111",
		},
		{
			ID:          "up-1",
			Title:       "Networking Strategies Masterclass",
			EventDate:   ptr("January 10, 2026"),
			EventTime:   ptr("6:00 PM - 8:00 PM"),
			TicketingID: "222",
		},
		{
			ID:          "up-2",
			Title:       "Resume Bootcamp",
			TicketingID: "333",
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	HandlePublicEvents(svc, clock.NewFixed(now)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp eventListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Past) != 1 || resp.Past[0].ID != "past-1" {
		t.Fatalf("expected one past event, got %+v", resp.Past)
	}
	if len(resp.Upcoming) != 2 {
		t.Fatalf("expected two upcoming events, got %+v", resp.Upcoming)
	}
}

func TestHandlePublicEvents_StoreFailure(t *testing.T) {
	t.Parallel()

	svc := &stubPublicService{err: &domain.StoreError{Op: "list public events", Err: errors.New("boom")}}

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	HandlePublicEvents(svc, clock.NewSystem()).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != codeInternalError {
		t.Fatalf("expected code %s, got %s", codeInternalError, resp.Code)
	}
}

func TestHandlePublicEvents_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	rec := httptest.NewRecorder()
	HandlePublicEvents(&stubPublicService{}, clock.NewSystem()).ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}
