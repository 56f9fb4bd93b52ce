package validator

import (
	"fmt"
	"time"
)

// Cross-field rules read another field's current value through the
// ValueSource at evaluation time, not at construction time, so they
// always see live controller state. Evaluating one without a source is
// a programming error and panics.

// MatchesField validates that a value equals the current value of
// another field, typically for password confirmation.
func MatchesField[T comparable](other FieldRef) Validator[T] {
	key := other.FieldKey()
	return Validator[T]{
		code:   CodeFieldDoesNotMatch,
		params: Params{OtherField: key},
		check: func(value T, src ValueSource) string {
			otherValue := crossFieldValue[T](src, key, CodeFieldDoesNotMatch)
			if value != otherValue {
				return CodeFieldDoesNotMatch
			}
			return ""
		},
	}
}

// AfterField validates that a date falls strictly after the current
// value of another date field, for example an end date after its start
// date. A zero value or a zero counterpart passes.
func AfterField(other FieldRef) Validator[time.Time] {
	key := other.FieldKey()
	return Validator[time.Time]{
		code:   CodeDateAfter,
		params: Params{OtherField: key},
		check: func(value time.Time, src ValueSource) string {
			otherValue := crossFieldValue[time.Time](src, key, CodeDateAfter)
			if value.IsZero() || otherValue.IsZero() {
				return ""
			}
			if !value.After(otherValue) {
				return CodeDateAfter
			}
			return ""
		},
	}
}

func crossFieldValue[T any](src ValueSource, key, code string) T {
	var zero T
	if src == nil {
		panic(fmt.Sprintf("validator: cross-field rule %q evaluated without a value source; field %q cannot be resolved", code, key))
	}
	raw, ok := src.FieldValue(key)
	if !ok || raw == nil {
		return zero
	}
	value, ok := raw.(T)
	if !ok {
		panic(fmt.Sprintf("validator: cross-field rule %q expects field %q to hold %T, got %T", code, key, zero, raw))
	}
	return value
}
