package form

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/schema"
)

// Typed access to controller state lives in package-level generic
// functions because Go methods cannot carry their own type parameters.
// Each performs the one runtime type assertion at the boundary between
// the untyped registry and the caller's typed world.

// Value returns the field's current value: the live widget value when
// the field is mounted, the cached or initial value otherwise. The
// second return is false when no value is known.
func Value[T any](c *Controller, f schema.Field[T]) (T, bool) {
	raw, ok := c.FieldValue(f.FieldKey())
	return assertValue[T](c, f.FieldKey(), raw, ok)
}

// InitialValue returns the value the field was constructed with,
// independent of later edits.
func InitialValue[T any](c *Controller, f schema.Field[T]) (T, bool) {
	raw, ok := c.initial[f.FieldKey()]
	return assertValue[T](c, f.FieldKey(), raw, ok)
}

// SetValue writes the field's cached value, propagates it to the live
// widget handle when mounted, and notifies listeners unless Silent is
// passed. It does not mark the field as interacted; that is the widget
// binding's signal, reported through Handle.Set.
func SetValue[T any](c *Controller, f schema.Field[T], value T, opts ...CallOption) {
	o := applyCallOptions(opts)
	key := f.FieldKey()
	c.cached[key] = value
	if st, ok := c.states[key]; ok {
		st.value = value
	}
	if !o.silent {
		c.notify()
	}
}

// ValidatorFor returns the field's resolved, localized validation
// function for use by a widget binding. The returned function reads
// the controller's current message table and field values on every
// call, so locale switches and cross-field edits are picked up without
// rebinding.
func ValidatorFor[T any](c *Controller, f schema.Field[T]) func(value T) string {
	key := f.FieldKey()
	entry, ok := c.schema.Entry(key)
	if !ok {
		panic(fmt.Sprintf("form: field %q not declared in schema %q", key, c.schema.Name()))
	}
	return func(value T) string {
		return entry.Run(value, c.table, c)
	}
}

func assertValue[T any](c *Controller, key string, raw any, ok bool) (T, bool) {
	var zero T
	if !ok || raw == nil {
		return zero, false
	}
	value, valid := raw.(T)
	if !valid {
		panic(fmt.Sprintf("form: field %q of schema %q holds %T, want %T", key, c.schema.Name(), raw, zero))
	}
	return value, true
}
