package validator

// Stable error codes for the built-in rules. Codes identify why a rule
// failed independently of display language; the message table maps them
// to human-readable text.
const (
	CodeRequired          = "required"
	CodeInvalidEmail      = "invalid_email"
	CodeInvalidPhone      = "invalid_phone"
	CodeInvalidPattern    = "invalid_pattern"
	CodeMinLength         = "min_length"
	CodeMaxLength         = "max_length"
	CodeMinValue          = "min_value"
	CodeMaxValue          = "max_value"
	CodeMinItems          = "min_items"
	CodeMaxItems          = "max_items"
	CodeInvalidFileFormat = "invalid_file_format"
	CodeDateAfter         = "date_after"
	CodeDateBefore        = "date_before"
	CodeFieldDoesNotMatch = "field_does_not_match"
	CodeFieldIsNotAfter   = "field_is_not_after"
)
