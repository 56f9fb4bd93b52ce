package validator

import "time"

// FieldRef names a declared form field. It is implemented by the typed
// field handles in the schema package and is all a cross-field rule
// needs to know about its counterpart field.
type FieldRef interface {
	FieldKey() string
}

// ValueSource provides read access to the current value of another
// field at evaluation time. The form controller implements it.
type ValueSource interface {
	FieldValue(key string) (any, bool)
}

// Params carries the payload a failing rule hands to the message table.
// Only the fields relevant to the rule's error code are set.
type Params struct {
	Min        int
	Max        int
	MinValue   float64
	MaxValue   float64
	Bound      time.Time
	HasBound   bool
	Allowed    []string
	Pattern    string
	OtherField string
}

// Validator is a single immutable validation rule for values of type T.
//
// The check function is pure and synchronous. It returns "" when the
// value passes, the validator's own error code when it fails, or any
// other string to short-circuit message resolution with a pre-final,
// already-localized message.
type Validator[T any] struct {
	code    string
	message string
	params  Params
	check   func(value T, src ValueSource) string
}

// Code returns the stable error code this rule fails with.
func (v Validator[T]) Code() string { return v.code }

// Requires returns the key of the other field this rule reads at
// evaluation time, or "" for single-field rules.
func (v Validator[T]) Requires() string { return v.params.OtherField }

// WithMessage returns a copy of the rule that surfaces msg verbatim on
// failure, bypassing the message table entirely.
func (v Validator[T]) WithMessage(msg string) Validator[T] {
	v.message = msg
	return v
}

// Custom builds a rule with a caller-defined error code. The code is
// resolved through the message table's ParseErrorCode hook; unknown
// codes fall back to the raw code string.
func Custom[T any](code string, fn func(value T) string) Validator[T] {
	return Validator[T]{
		code: code,
		check: func(value T, _ ValueSource) string {
			return fn(value)
		},
	}
}
