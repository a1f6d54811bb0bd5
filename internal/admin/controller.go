// Package admin owns the in-memory state behind the events admin panel: the
// visible list, per-row edit and delete flows, and the feedback surfaced for
// every action.
//
// The API server itself is stateless; this package is the session-scoped
// state container for frontends that embed the service as a library (one
// Controller per admin session, driving the same app.EventService the HTTP
// handlers use). It is not mounted in cmd/api.
package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/clearpath-coaching/site-api/internal/auth"
	"github.com/clearpath-coaching/site-api/internal/domain"
)

// RowState is the lifecycle state of one managed event row.
//
//	Viewing -> Editing -> Saving -> Viewing (or back to Editing on error)
//	Viewing -> ConfirmingDelete -> Deleting -> removed (or back to Viewing on error)
type RowState int

const (
	RowViewing RowState = iota
	RowEditing
	RowSaving
	RowConfirmingDelete
	RowDeleting
)

var (
	ErrRolePending  = errors.New("role not yet resolved")
	ErrNotPermitted = errors.New("not permitted to manage events")
	ErrUnknownRow   = errors.New("unknown event row")
	ErrWrongState   = errors.New("action not allowed in current state")
	ErrBusy         = errors.New("request already in flight")
	ErrClosed       = errors.New("controller closed")
)

// Store is the persistence surface the controller drives. Satisfied by
// app.EventService.
type Store interface {
	ListAll(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, in domain.EventInput) (domain.Event, error)
	Update(ctx context.Context, id string, in domain.EventInput) (domain.Event, error)
	Delete(ctx context.Context, id string) error
}

// Row is a snapshot of one managed event row for rendering.
type Row struct {
	Event  domain.Event
	State  RowState
	Draft  domain.EventInput
	Errors []string
}

type row struct {
	event    domain.Event
	state    RowState
	draft    domain.EventInput
	snapshot domain.EventInput
	errors   []string
}

// Controller orchestrates the admin panel. The event list is mutated only
// through Load, Save, SubmitCreate and ConfirmDelete; no other component
// touches it. All mutating entry points are capability-gated and
// non-reentrant per row while a request is in flight.
type Controller struct {
	store  Store
	notify Notifier

	mu           sync.Mutex
	capability   auth.Capability
	rows         []*row
	loaded       bool
	loadErr      error
	createDraft  domain.EventInput
	createErrors []string
	creating     bool
	closed       bool
}

func NewController(store Store, capability auth.Capability, notify Notifier) *Controller {
	if notify == nil {
		notify = NewLogNotifier(nil)
	}
	return &Controller{
		store:      store,
		notify:     notify,
		capability: capability,
	}
}

// SetCapability replaces the caller's resolved capability. Called whenever
// the underlying identity session changes.
func (c *Controller) SetCapability(capability auth.Capability) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.capability = capability
}

// permitted distinguishes "definitely not admin" from "not yet known" so an
// unresolved role never reads as an access denial.
func (c *Controller) permitted() error {
	switch c.capability {
	case auth.CapabilityAdmin:
		return nil
	case auth.CapabilityUnknown:
		return ErrRolePending
	default:
		return ErrNotPermitted
	}
}

// Load fetches the admin-visible list. On failure the list is empty and
// LoadErr reports the cause; a stale or fabricated list is never shown.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if err := c.permitted(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	events, err := c.store.ListAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if err != nil {
		c.rows = nil
		c.loaded = false
		c.loadErr = err
		c.notify.Error("load events", "could not fetch the event list")
		return err
	}
	rows := make([]*row, 0, len(events))
	for _, event := range events {
		rows = append(rows, &row{event: event, state: RowViewing})
	}
	c.rows = rows
	c.loaded = true
	c.loadErr = nil
	return nil
}

// Rows returns a render snapshot of the managed list, in list order.
func (c *Controller) Rows() []Row {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Row, 0, len(c.rows))
	for _, r := range c.rows {
		out = append(out, Row{
			Event:  r.event,
			State:  r.state,
			Draft:  r.draft,
			Errors: append([]string(nil), r.errors...),
		})
	}
	return out
}

// LoadErr reports why the last Load failed, or nil.
func (c *Controller) LoadErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

// Edit moves a row into Editing, snapshotting its current fields as the
// cancel baseline.
func (c *Controller) Edit(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if err := c.permitted(); err != nil {
		return err
	}
	r := c.row(id)
	if r == nil {
		return ErrUnknownRow
	}
	if r.state != RowViewing {
		return ErrWrongState
	}
	r.snapshot = r.event.Fields()
	r.draft = r.snapshot
	r.state = RowEditing
	return nil
}

// UpdateDraft replaces the row's unsaved edits.
func (c *Controller) UpdateDraft(id string, draft domain.EventInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	r := c.row(id)
	if r == nil {
		return ErrUnknownRow
	}
	if r.state != RowEditing {
		return ErrWrongState
	}
	r.draft = draft
	return nil
}

// Cancel discards unsaved edits, restoring exactly the snapshot taken when
// editing began, and returns the row to Viewing.
func (c *Controller) Cancel(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	r := c.row(id)
	if r == nil {
		return ErrUnknownRow
	}
	if r.state != RowEditing {
		return ErrWrongState
	}
	r.draft = r.snapshot
	r.state = RowViewing
	r.errors = nil
	return nil
}

// Save validates the row's draft and persists it. Validation failure keeps
// the row in Editing with every message surfaced and no store call. A store
// failure also keeps the row in Editing; the list is never partially mutated.
// Saving a row whose event vanished from the store removes the stale row.
func (c *Controller) Save(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if err := c.permitted(); err != nil {
		c.mu.Unlock()
		return err
	}
	r := c.row(id)
	if r == nil {
		c.mu.Unlock()
		return ErrUnknownRow
	}
	if r.state == RowSaving {
		c.mu.Unlock()
		return ErrBusy
	}
	if r.state != RowEditing {
		c.mu.Unlock()
		return ErrWrongState
	}
	draft := r.draft
	if _, verr := domain.ValidateEventInput(draft); verr != nil {
		r.errors = verr.Messages
		c.mu.Unlock()
		return verr
	}
	r.state = RowSaving
	c.mu.Unlock()

	updated, err := c.store.Update(ctx, id, draft)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	r = c.row(id)
	if r == nil {
		return ErrUnknownRow
	}
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.remove(id)
			c.notify.Error("update event", "the event no longer exists")
			return err
		}
		r.state = RowEditing
		c.notify.Error("update event", reason(err))
		return err
	}
	r.event = updated
	r.state = RowViewing
	r.errors = nil
	c.notify.Success("update event", "changes saved")
	return nil
}

// RequestDelete moves a row into the explicit confirmation state. No store
// call happens until ConfirmDelete.
func (c *Controller) RequestDelete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if err := c.permitted(); err != nil {
		return err
	}
	r := c.row(id)
	if r == nil {
		return ErrUnknownRow
	}
	if r.state != RowViewing {
		return ErrWrongState
	}
	r.state = RowConfirmingDelete
	return nil
}

// CancelDelete backs out of a pending confirmation.
func (c *Controller) CancelDelete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	r := c.row(id)
	if r == nil {
		return ErrUnknownRow
	}
	if r.state != RowConfirmingDelete {
		return ErrWrongState
	}
	r.state = RowViewing
	return nil
}

// ConfirmDelete permanently removes a confirmed row. On failure the list is
// left unchanged and the row returns to Viewing; a row that already vanished
// from the store is removed as stale.
func (c *Controller) ConfirmDelete(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if err := c.permitted(); err != nil {
		c.mu.Unlock()
		return err
	}
	r := c.row(id)
	if r == nil {
		c.mu.Unlock()
		return ErrUnknownRow
	}
	if r.state == RowDeleting {
		c.mu.Unlock()
		return ErrBusy
	}
	if r.state != RowConfirmingDelete {
		c.mu.Unlock()
		return ErrWrongState
	}
	r.state = RowDeleting
	c.mu.Unlock()

	err := c.store.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.remove(id)
			c.notify.Error("delete event", "the event no longer exists")
			return err
		}
		if r := c.row(id); r != nil {
			r.state = RowViewing
		}
		c.notify.Error("delete event", reason(err))
		return err
	}
	c.remove(id)
	c.notify.Success("delete event", "the event has been removed")
	return nil
}

// BeginCreate opens the new-event form with a blank draft.
func (c *Controller) BeginCreate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if err := c.permitted(); err != nil {
		return err
	}
	c.createDraft = domain.EventInput{}
	c.createErrors = nil
	return nil
}

// SetCreateDraft replaces the new-event form's unsaved fields.
func (c *Controller) SetCreateDraft(draft domain.EventInput) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.createDraft = draft
}

// CreateErrors returns the messages from the last failed create validation.
func (c *Controller) CreateErrors() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.createErrors...)
}

// SubmitCreate validates the create draft and inserts a new event. On store
// success the returned record is added at the top of the list (newest first)
// and the form resets; on any failure the draft and list are untouched.
func (c *Controller) SubmitCreate(ctx context.Context) (domain.Event, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.Event{}, ErrClosed
	}
	if err := c.permitted(); err != nil {
		c.mu.Unlock()
		return domain.Event{}, err
	}
	if c.creating {
		c.mu.Unlock()
		return domain.Event{}, ErrBusy
	}
	draft := c.createDraft
	if _, verr := domain.ValidateEventInput(draft); verr != nil {
		c.createErrors = verr.Messages
		c.mu.Unlock()
		return domain.Event{}, verr
	}
	c.creating = true
	c.mu.Unlock()

	created, err := c.store.Create(ctx, draft)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.creating = false
	if c.closed {
		return domain.Event{}, ErrClosed
	}
	if err != nil {
		c.notify.Error("create event", reason(err))
		return domain.Event{}, err
	}
	c.rows = append([]*row{{event: created, state: RowViewing}}, c.rows...)
	c.createDraft = domain.EventInput{}
	c.createErrors = nil
	c.notify.Success("create event", "the event is now listed")
	return created, nil
}

// Close marks the controller torn down. Any in-flight request result that
// arrives afterwards is dropped rather than applied.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *Controller) row(id string) *row {
	for _, r := range c.rows {
		if r.event.ID == id {
			return r
		}
	}
	return nil
}

func (c *Controller) remove(id string) {
	for i, r := range c.rows {
		if r.event.ID == id {
			c.rows = append(c.rows[:i], c.rows[i+1:]...)
			return
		}
	}
}

func reason(err error) string {
	if errors.Is(err, domain.ErrNotAuthorized) {
		return "the store rejected the change, verify your admin access"
	}
	var serr *domain.StoreError
	if errors.As(err, &serr) {
		return "the store could not be reached, try again"
	}
	return err.Error()
}
