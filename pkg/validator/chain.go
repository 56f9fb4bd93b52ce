package validator

// Chain is the ordered list of rules attached to one field. Order is
// significant: rules run left to right as declared, and the first
// failing rule wins.
type Chain[T any] []Validator[T]

// Validate runs the chain against value and returns the resolved
// display string of the first failing rule, or "" when every rule
// passes. A nil or empty chain always passes.
//
// Rules after the first failure are never evaluated. When a rule's
// check returns a string different from its own error code, that
// string is treated as a pre-final message and returned verbatim,
// bypassing the message table; the same applies to a message supplied
// via WithMessage. Otherwise the code is resolved against table.
//
// src is required only when the chain contains cross-field rules; it
// may be nil otherwise.
func (c Chain[T]) Validate(value T, table MessageTable, src ValueSource) string {
	for _, v := range c {
		out := v.check(value, src)
		if out == "" {
			continue
		}
		if out != v.code {
			return out
		}
		if v.message != "" {
			return v.message
		}
		return resolveMessage(table, v.code, v.params, value)
	}
	return ""
}

// Requires returns the keys of all fields this chain reads at
// evaluation time, in declared order. Used to verify cross-field
// references against the schema before any validation runs.
func (c Chain[T]) Requires() []string {
	var keys []string
	for _, v := range c {
		if key := v.Requires(); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
