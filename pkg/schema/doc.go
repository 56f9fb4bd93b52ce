// Package schema declares form fields: each field's value type, its
// validator chain and optional initial value, bound to a typed,
// comparable handle.
//
// A schema is an arena of type-erased entries addressed by opaque keys;
// the typed Field handles returned by Add are the only way in and out,
// and the one runtime type assertion lives in the entry's runner
// closure. Schemas are append-only and meant to be defined once,
// statically:
//
//	var (
//	    Signup   = schema.New("signup")
//	    Email    = schema.Add[string](Signup, "email",
//	        schema.WithValidators(validator.Required[string](), validator.Email()))
//	    Password = schema.Add[string](Signup, "password",
//	        schema.WithValidators(validator.Required[string](), validator.MinLength(8)))
//	)
//
// Schema authoring bugs (duplicate keys, dangling cross-field
// references, type mismatches) panic at the earliest point they can be
// detected rather than surfacing as user-visible validation behavior.
package schema
