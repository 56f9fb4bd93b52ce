package validator

// MinItems validates that a non-nil slice holds at least min elements.
// A nil slice passes: presence is Required's concern.
func MinItems[E any](min int) Validator[[]E] {
	return Validator[[]E]{
		code:   CodeMinItems,
		params: Params{Min: min},
		check: func(value []E, _ ValueSource) string {
			if value == nil {
				return ""
			}
			if len(value) < min {
				return CodeMinItems
			}
			return ""
		},
	}
}

// MaxItems validates that a slice holds at most max elements.
func MaxItems[E any](max int) Validator[[]E] {
	return Validator[[]E]{
		code:   CodeMaxItems,
		params: Params{Max: max},
		check: func(value []E, _ ValueSource) string {
			if len(value) > max {
				return CodeMaxItems
			}
			return ""
		},
	}
}
