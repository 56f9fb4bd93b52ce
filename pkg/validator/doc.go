// Package validator provides typed, immutable validation rules for form
// fields, chain composition with first-failure-wins semantics, and
// error-code-to-message resolution against a pluggable message table.
//
// The package is the core of formkit: a field declares an ordered Chain
// of Validator values, a candidate value is run through the chain, and
// the first failing rule's error code is resolved into display text.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `date_rules.go`, `crossfield_rules.go`, ...). Every exported rule
// constructor returns an immutable Validator value; there is no hidden
// global state, so the package is stateless and allocation-light.
//
// Core building blocks:
//   - Validator[T]  – immutable rule: error code, optional override
//     message, parameter payload, pure check function
//   - Chain[T]      – ordered rule list with short-circuit evaluation
//   - MessageTable  – injected code-to-text mapping, resolved at
//     display time
//   - ValueSource   – live read access to other fields, used by
//     cross-field rules
//
// # Composition rules
//
// Rules run in declared order and stop at the first failure. Shape
// rules (Email, Phone, Pattern, MinLength, MaxLength) treat an empty
// string as pass so that Required composes with them in either order;
// bound rules use strict comparisons, so a value exactly at the bound
// passes Min and Max alike.
//
// # Usage
//
//	chain := validator.Chain[string]{
//	    validator.Required[string](),
//	    validator.Email(),
//	}
//	if msg := chain.Validate(input, table, nil); msg != "" {
//	    // render msg under the field
//	}
//
// # Error Handling
//
// Validation failures are data, never Go errors: Validate returns the
// display string or "". Misuse that cannot be recovered at runtime
// (a nil pattern, a cross-field rule evaluated without a value source,
// a type mismatch between rule and field) panics with a descriptive
// message at the point of misuse.
package validator
