package app

import (
	"context"

	"github.com/clearpath-coaching/site-api/internal/domain"
)

// EventRepository is the persistence surface the service needs.
type EventRepository interface {
	ListPublic(ctx context.Context) ([]domain.Event, error)
	ListAll(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, in domain.EventInput) (domain.Event, error)
	Update(ctx context.Context, id string, in domain.EventInput) (domain.Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService orchestrates validation and persistence for events.
// Validation failures never reach the repository.
type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{repo: repo}
}

// ListPublic returns all events via the anonymous read path, newest first.
func (s *EventService) ListPublic(ctx context.Context) ([]domain.Event, error) {
	return s.repo.ListPublic(ctx)
}

// ListAll returns all events for the admin view, newest first.
func (s *EventService) ListAll(ctx context.Context) ([]domain.Event, error) {
	return s.repo.ListAll(ctx)
}

// Create validates in and inserts a new event, returning the stored record
// with its assigned ID and CreatedAt.
func (s *EventService) Create(ctx context.Context, in domain.EventInput) (domain.Event, error) {
	normalized, verr := domain.ValidateEventInput(in)
	if verr != nil {
		return domain.Event{}, verr
	}
	return s.repo.Create(ctx, normalized)
}

// Update validates in and replaces all mutable fields of the event
// identified by id.
func (s *EventService) Update(ctx context.Context, id string, in domain.EventInput) (domain.Event, error) {
	if id == "" {
		return domain.Event{}, domain.ErrEventNotFound
	}
	normalized, verr := domain.ValidateEventInput(in)
	if verr != nil {
		return domain.Event{}, verr
	}
	return s.repo.Update(ctx, id, normalized)
}

// Delete permanently removes the event identified by id.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrEventNotFound
	}
	return s.repo.Delete(ctx, id)
}
