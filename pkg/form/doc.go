// Package form holds the runtime state of one rendered form: a
// controller mapping declared fields to live widget-state handles,
// cached and initial values, forced errors and change listeners.
//
// The controller decouples what the schema says about a field from
// what the currently rendered widget holds. Widget bindings obtain a
// typed Handle on first render (mounting the field), report user edits
// through it, and ask the controller for the field's resolved,
// localized validation function.
//
// # Usage
//
//	c := form.New(Signup)
//	email := form.HandleFor(c, Email)
//	email.Set("a@b.com")
//	if !c.Validate() {
//	    msg := c.FieldError(Email)
//	    // render msg
//	}
//
// Forced errors injected with SetError (for example a server-side
// uniqueness rejection) share the display path of validation errors
// but bypass the chain; they take precedence in FieldError and are
// cleared by ClearForcedErrors, Reset, or the next Validate call
// unless KeepForcedErrors is passed.
//
// # Concurrency
//
// A controller belongs to a single goroutine, the UI event loop, and
// carries no internal locking. Asynchronous work (server checks) must
// hop back onto that goroutine and report through SetError, which is
// last-write-wins.
package form
