package form

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Controller is the live state of one rendered form: the registry of
// widget-state handles keyed by field, cached and initial values,
// forced (externally injected) errors and the change-listener list.
//
// A controller is exclusively owned by the form that created it and is
// driven from a single goroutine, the UI event loop. It carries no
// internal locking; concurrent mutation is not supported.
type Controller struct {
	key       uuid.UUID
	schema    *schema.Schema
	table     validator.MessageTable
	states    map[string]*state
	cached    map[string]any
	initial   map[string]any
	forced    map[string]string
	listeners map[int]func()
	nextSub   int
}

// state is the widget-state handle backing one mounted field.
type state struct {
	value   any
	err     string
	touched bool
}

// Option configures a controller at construction time.
type Option func(*Controller)

// WithMessages sets the message table used to resolve error codes into
// display text. Defaults to the built-in English table.
func WithMessages(table validator.MessageTable) Option {
	return func(c *Controller) {
		c.table = table
	}
}

// WithKey sets the form-level key. A random key is generated when the
// option is absent.
func WithKey(key uuid.UUID) Option {
	return func(c *Controller) {
		c.key = key
	}
}

// Initial overrides a field's initial value for this controller
// instance, taking precedence over the value declared in the schema.
// Referencing a field from another schema panics.
func Initial[T any](f schema.Field[T], value T) Option {
	return func(c *Controller) {
		key := f.FieldKey()
		if _, ok := c.schema.Entry(key); !ok {
			panic(fmt.Sprintf("form: initial value for field %q not declared in schema %q", key, c.schema.Name()))
		}
		c.initial[key] = value
		c.cached[key] = value
	}
}

// New constructs a controller for the given schema. Cross-field
// references are verified here, so a schema authoring bug panics
// before any widget mounts.
func New(s *schema.Schema, opts ...Option) *Controller {
	s.CheckRefs()

	c := &Controller{
		key:       uuid.New(),
		schema:    s,
		table:     messages.English{},
		states:    make(map[string]*state),
		cached:    make(map[string]any),
		initial:   make(map[string]any),
		forced:    make(map[string]string),
		listeners: make(map[int]func()),
	}

	for _, key := range s.Keys() {
		entry, _ := s.Entry(key)
		if init, ok := entry.Initial(); ok {
			c.initial[key] = init
			c.cached[key] = init
		}
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the form-level key identifying this controller instance.
func (c *Controller) Key() uuid.UUID { return c.key }

// Schema returns the schema this controller was built against.
func (c *Controller) Schema() *schema.Schema { return c.schema }

// SetMessages swaps the message table. Error codes are resolved at
// display time, so all subsequently rendered errors pick up the new
// table without reconstructing any validator.
func (c *Controller) SetMessages(table validator.MessageTable) {
	c.table = table
}

// Subscribe registers a change listener and returns its unsubscribe
// function. Listeners fire synchronously after validate, reset,
// setError and value updates that request notification.
func (c *Controller) Subscribe(fn func()) func() {
	id := c.nextSub
	c.nextSub++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *Controller) notify() {
	for _, fn := range c.listeners {
		fn()
	}
}

// FieldValue implements validator.ValueSource: the live widget value
// when the field is mounted, the cached value otherwise.
func (c *Controller) FieldValue(key string) (any, bool) {
	if st, ok := c.states[key]; ok {
		return st.value, true
	}
	if v, ok := c.cached[key]; ok {
		return v, true
	}
	return nil, false
}

// mount is the idempotent get-or-create of a field's widget-state
// handle: the same key always resolves to the same handle for the
// controller's lifetime.
func (c *Controller) mount(key string) *state {
	if st, ok := c.states[key]; ok {
		return st
	}
	if _, ok := c.schema.Entry(key); !ok {
		panic(fmt.Sprintf("form: field %q not declared in schema %q", key, c.schema.Name()))
	}
	st := &state{}
	if v, ok := c.cached[key]; ok {
		st.value = v
	}
	c.states[key] = st
	return st
}

// FieldError returns the field's current error: a forced error if one
// is set, else the result of the last validation pass, else "".
func (c *Controller) FieldError(f schema.FieldRef) string {
	key := f.FieldKey()
	if msg, ok := c.forced[key]; ok {
		return msg
	}
	if st, ok := c.states[key]; ok {
		return st.err
	}
	return ""
}

// HasFieldError reports whether the field currently has any error.
func (c *Controller) HasFieldError(f schema.FieldRef) bool {
	return c.FieldError(f) != ""
}

// SetError injects a forced error for the field, independent of the
// validator chain, typically the result of an asynchronous server-side
// check. Last write wins; callers racing async checks must guard with
// their own generation token.
func (c *Controller) SetError(f schema.FieldRef, message string, opts ...CallOption) {
	o := applyCallOptions(opts)
	c.forced[f.FieldKey()] = message
	if !o.silent {
		c.notify()
	}
}

// ClearForcedErrors removes all forced errors without running any
// validator.
func (c *Controller) ClearForcedErrors(opts ...CallOption) {
	o := applyCallOptions(opts)
	clear(c.forced)
	if !o.silent {
		c.notify()
	}
}

// Validate runs every mounted field's validator chain against its
// current value and reports overall validity. Forced errors are
// cleared first unless KeepForcedErrors is passed, so a stale forced
// error neither masks a fresh failure nor hides a field that now
// passes. Listeners are notified afterwards unless Silent is passed.
func (c *Controller) Validate(opts ...CallOption) bool {
	o := applyCallOptions(opts)
	if !o.keepForced {
		clear(c.forced)
	}

	valid := true
	for key, st := range c.states {
		entry, ok := c.schema.Entry(key)
		if !ok {
			continue
		}
		st.err = entry.Run(st.value, c.table, c)
		if st.err != "" {
			valid = false
		}
	}

	if !o.silent {
		c.notify()
	}
	return valid
}

// ValidateField validates a single mounted field in isolation and
// notifies listeners. An unmounted field is trivially valid.
func (c *Controller) ValidateField(f schema.FieldRef, opts ...CallOption) bool {
	o := applyCallOptions(opts)
	key := f.FieldKey()

	valid := true
	if st, ok := c.states[key]; ok {
		entry, ok := c.schema.Entry(key)
		if ok {
			st.err = entry.Run(st.value, c.table, c)
			valid = st.err == ""
		}
	}

	if !o.silent {
		c.notify()
	}
	return valid
}

// Reset returns every mounted field to its initial state, clears all
// forced errors and cached edits, and notifies listeners.
func (c *Controller) Reset() {
	clear(c.forced)
	clear(c.cached)
	for key, init := range c.initial {
		c.cached[key] = init
	}
	for key, st := range c.states {
		st.value = c.initial[key]
		st.err = ""
		st.touched = false
	}
	c.notify()
}

// IsDirty reports whether every named field is mounted and has been
// interacted with.
func (c *Controller) IsDirty(fields ...schema.FieldRef) bool {
	for _, f := range fields {
		st, ok := c.states[f.FieldKey()]
		if !ok || !st.touched {
			return false
		}
	}
	return true
}

// IsAllDirty reports whether every currently mounted field has been
// interacted with. Vacuously true when nothing is mounted.
func (c *Controller) IsAllDirty() bool {
	for _, st := range c.states {
		if !st.touched {
			return false
		}
	}
	return true
}

// HasBeenInteracted reports whether any mounted field has been
// interacted with.
func (c *Controller) HasBeenInteracted() bool {
	for _, st := range c.states {
		if st.touched {
			return true
		}
	}
	return false
}

// HasChanged reports whether any mounted field's current value differs
// from its initial value, regardless of interaction history.
func (c *Controller) HasChanged() bool {
	for key, st := range c.states {
		if !reflect.DeepEqual(st.value, c.initial[key]) {
			return true
		}
	}
	return false
}

// Values returns a snapshot of all mounted fields' current values,
// keyed by field key.
func (c *Controller) Values() map[string]any {
	snapshot := make(map[string]any, len(c.states))
	for key, st := range c.states {
		snapshot[key] = st.value
	}
	return snapshot
}
