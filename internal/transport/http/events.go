package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/clearpath-coaching/site-api/internal/clock"
	"github.com/clearpath-coaching/site-api/internal/domain"
	"github.com/clearpath-coaching/site-api/internal/schedule"
)

// PublicEventService is the minimal interface needed for the public events
// listing.
type PublicEventService interface {
	ListPublic(ctx context.Context) ([]domain.Event, error)
}

type eventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	EventDate   *string   `json:"event_date,omitempty"`
	EventTime   *string   `json:"event_time,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Capacity    *string   `json:"capacity,omitempty"`
	TicketingID string    `json:"ticketing_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type eventListResponse struct {
	Upcoming []eventResponse `json:"upcoming"`
	Past     []eventResponse `json:"past"`
}

// HandlePublicEvents returns the anonymous events listing, partitioned into
// upcoming and past at request time.
func HandlePublicEvents(svc PublicEventService, clk clock.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		events, err := svc.ListPublic(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		c := schedule.Classify(events, clk.Now())
		resp := eventListResponse{
			Upcoming: make([]eventResponse, 0, len(c.Upcoming)),
			Past:     make([]eventResponse, 0, len(c.Past)),
		}
		for _, event := range c.Upcoming {
			resp.Upcoming = append(resp.Upcoming, toEventResponse(event))
		}
		for _, event := range c.Past {
			resp.Past = append(resp.Past, toEventResponse(event))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func toEventResponse(event domain.Event) eventResponse {
	return eventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		EventDate:   event.EventDate,
		EventTime:   event.EventTime,
		Location:    event.Location,
		Capacity:    event.Capacity,
		TicketingID: event.TicketingID,
		CreatedAt:   event.CreatedAt,
	}
}
