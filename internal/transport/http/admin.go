package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/clearpath-coaching/site-api/internal/domain"
)

// AdminEventService is the minimal interface needed for admin event
// endpoints.
type AdminEventService interface {
	ListAll(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, in domain.EventInput) (domain.Event, error)
	Update(ctx context.Context, id string, in domain.EventInput) (domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type eventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	EventDate   string `json:"event_date,omitempty"`
	EventTime   string `json:"event_time,omitempty"`
	Location    string `json:"location,omitempty"`
	Capacity    string `json:"capacity,omitempty"`
	TicketingID string `json:"ticketing_id"`
}

func (r eventRequest) input() domain.EventInput {
	return domain.EventInput{
		Title:       r.Title,
		Description: r.Description,
		EventDate:   r.EventDate,
		EventTime:   r.EventTime,
		Location:    r.Location,
		Capacity:    r.Capacity,
		TicketingID: r.TicketingID,
	}
}

// HandleAdminEvents returns an HTTP handler for admin event listing/creation.
func HandleAdminEvents(svc AdminEventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			events, err := svc.ListAll(r.Context())
			if err != nil {
				writeServiceError(w, err)
				return
			}
			resp := make([]eventResponse, 0, len(events))
			for _, event := range events {
				resp = append(resp, toEventResponse(event))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
		case http.MethodPost:
			var req eventRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			event, err := svc.Create(r.Context(), req.input())
			if err != nil {
				writeServiceError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(toEventResponse(event))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleAdminEvent returns an HTTP handler for updating/deleting one event.
func HandleAdminEvent(svc AdminEventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseAdminEventPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch r.Method {
		case http.MethodPut:
			var req eventRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			event, err := svc.Update(r.Context(), id, req.input())
			if err != nil {
				writeServiceError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(toEventResponse(event))
		case http.MethodDelete:
			if err := svc.Delete(r.Context(), id); err != nil {
				writeServiceError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// writeServiceError maps domain errors onto the response taxonomy. Unknown
// errors deliberately collapse to a generic internal error so store details
// never leak to clients.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeErrorDetails(w, http.StatusBadRequest, codeValidationFailed, "validation failed", verr.Messages)
	case errors.Is(err, domain.ErrEventNotFound):
		writeError(w, http.StatusNotFound, codeEventNotFound, domain.ErrEventNotFound.Error())
	case errors.Is(err, domain.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, codeForbidden, domain.ErrNotAuthorized.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func parseAdminEventPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 {
		return "", false
	}
	if parts[0] != "admin" || parts[1] != "events" || parts[2] == "" {
		return "", false
	}
	return parts[2], true
}
