package postgres

import (
	"context"

	"github.com/clearpath-coaching/site-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository is the only component that issues event persistence
// operations. Every driver error is normalized to the domain taxonomy before
// it leaves this package.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = `id, title, description, event_date, event_time, location, capacity, ticketing_id, created_at`

// ListPublic returns all events through the public read projection, newest
// first. The projection is safe for anonymous reads; admin rights are not
// required.
func (r *EventRepository) ListPublic(ctx context.Context) ([]domain.Event, error) {
	const query = `
SELECT ` + eventColumns + `
FROM public_events
ORDER BY created_at DESC`
	return r.list(ctx, "list public events", query)
}

// ListAll returns every event from the base table, newest first. Intended for
// the admin view where all fields are needed for editing.
func (r *EventRepository) ListAll(ctx context.Context) ([]domain.Event, error) {
	const query = `
SELECT ` + eventColumns + `
FROM events
ORDER BY created_at DESC`
	return r.list(ctx, "list events", query)
}

// Create inserts a new event and returns it with the store-assigned ID and
// CreatedAt. The input must already be validated and normalized.
func (r *EventRepository) Create(ctx context.Context, in domain.EventInput) (domain.Event, error) {
	event := domain.Event{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: domain.OptionalText(in.Description),
		EventDate:   domain.OptionalText(in.EventDate),
		EventTime:   domain.OptionalText(in.EventTime),
		Location:    domain.OptionalText(in.Location),
		Capacity:    domain.OptionalText(in.Capacity),
		TicketingID: in.TicketingID,
	}

	const stmt = `
INSERT INTO events (id, title, description, event_date, event_time, location, capacity, ticketing_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at`
	err := r.pool.QueryRow(ctx, stmt,
		event.ID,
		event.Title,
		event.Description,
		event.EventDate,
		event.EventTime,
		event.Location,
		event.Capacity,
		event.TicketingID,
	).Scan(&event.CreatedAt)
	if err != nil {
		if isInsufficientPrivilege(err) {
			return domain.Event{}, domain.ErrNotAuthorized
		}
		return domain.Event{}, &domain.StoreError{Op: "create event", Err: err}
	}
	return event, nil
}

// Update replaces all mutable fields of the event identified by id and
// returns the stored record. Returns domain.ErrEventNotFound when no row
// matches id.
func (r *EventRepository) Update(ctx context.Context, id string, in domain.EventInput) (domain.Event, error) {
	const stmt = `
UPDATE events
SET title = $2,
    description = $3,
    event_date = $4,
    event_time = $5,
    location = $6,
    capacity = $7,
    ticketing_id = $8
WHERE id = $1
RETURNING ` + eventColumns
	var event domain.Event
	err := r.pool.QueryRow(ctx, stmt,
		id,
		in.Title,
		domain.OptionalText(in.Description),
		domain.OptionalText(in.EventDate),
		domain.OptionalText(in.EventTime),
		domain.OptionalText(in.Location),
		domain.OptionalText(in.Capacity),
		in.TicketingID,
	).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.EventDate,
		&event.EventTime,
		&event.Location,
		&event.Capacity,
		&event.TicketingID,
		&event.CreatedAt,
	)
	if err != nil {
		return domain.Event{}, r.rowError("update event", err)
	}
	return event, nil
}

// Delete permanently removes the event identified by id. Deleting an id that
// does not exist returns domain.ErrEventNotFound; a delete never reports
// success for a row that was not there.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	const stmt = `DELETE FROM events WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrEventNotFound
		}
		if isInsufficientPrivilege(err) {
			return domain.ErrNotAuthorized
		}
		return &domain.StoreError{Op: "delete event", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) list(ctx context.Context, op, query string) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, &domain.StoreError{Op: op, Err: err}
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.EventDate,
			&event.EventTime,
			&event.Location,
			&event.Capacity,
			&event.TicketingID,
			&event.CreatedAt,
		); err != nil {
			return nil, &domain.StoreError{Op: op, Err: err}
		}
		events = append(events, event)
	}
	if rows.Err() != nil {
		return nil, &domain.StoreError{Op: op, Err: rows.Err()}
	}
	return events, nil
}

func (r *EventRepository) rowError(op string, err error) error {
	if isInvalidUUID(err) {
		// A malformed UUID can never match a row.
		return domain.ErrEventNotFound
	}
	if isInsufficientPrivilege(err) {
		return domain.ErrNotAuthorized
	}
	if isNoRows(err) {
		return domain.ErrEventNotFound
	}
	return &domain.StoreError{Op: op, Err: err}
}
