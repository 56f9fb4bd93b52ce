package validator

import "time"

// Date rules use strict inequality: a value exactly equal to the bound
// fails After and fails Before alike. A zero time passes, deferring
// presence to Required.

// After validates that a date falls strictly after bound.
func After(bound time.Time) Validator[time.Time] {
	return Validator[time.Time]{
		code:   CodeDateAfter,
		params: Params{Bound: bound, HasBound: true},
		check: func(value time.Time, _ ValueSource) string {
			if value.IsZero() {
				return ""
			}
			if !value.After(bound) {
				return CodeDateAfter
			}
			return ""
		},
	}
}

// Before validates that a date falls strictly before bound.
func Before(bound time.Time) Validator[time.Time] {
	return Validator[time.Time]{
		code:   CodeDateBefore,
		params: Params{Bound: bound, HasBound: true},
		check: func(value time.Time, _ ValueSource) string {
			if value.IsZero() {
				return ""
			}
			if !value.Before(bound) {
				return CodeDateBefore
			}
			return ""
		},
	}
}
