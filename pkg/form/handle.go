package form

import "github.com/dmitrymomot/formkit/pkg/schema"

// Handle is the typed widget-state handle a binding holds for one
// rendered field. Obtaining a handle mounts the field; the same field
// always resolves to the same underlying state for the controller's
// lifetime.
type Handle[T any] struct {
	c     *Controller
	field schema.Field[T]
	st    *state
}

// HandleFor mounts the field if needed and returns its handle.
// Idempotent: repeated calls for the same field return handles backed
// by the same state.
func HandleFor[T any](c *Controller, f schema.Field[T]) Handle[T] {
	return Handle[T]{
		c:     c,
		field: f,
		st:    c.mount(f.FieldKey()),
	}
}

// Value returns the live widget value.
func (h Handle[T]) Value() T {
	value, _ := assertValue[T](h.c, h.field.FieldKey(), h.st.value, h.st.value != nil)
	return value
}

// Set reports a user edit: it writes the value, marks the field as
// interacted with, keeps the cached value in sync and notifies
// listeners unless Silent is passed.
func (h Handle[T]) Set(value T, opts ...CallOption) {
	o := applyCallOptions(opts)
	h.st.value = value
	h.st.touched = true
	h.c.cached[h.field.FieldKey()] = value
	if !o.silent {
		h.c.notify()
	}
}

// Touch marks the field as interacted with without changing its value,
// for example on blur.
func (h Handle[T]) Touch() {
	h.st.touched = true
}

// Touched reports whether the user has interacted with the field.
func (h Handle[T]) Touched() bool { return h.st.touched }

// Error returns the field's current error, forced errors first.
func (h Handle[T]) Error() string {
	return h.c.FieldError(h.field)
}

// Validate runs this field's chain in isolation through the
// controller.
func (h Handle[T]) Validate() bool {
	return h.c.ValidateField(h.field)
}
