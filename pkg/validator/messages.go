package validator

import "time"

// MessageTable maps error codes to display strings. It is injected by
// the host application and looked up at the point of display, so
// swapping the table (for example when the locale changes) affects all
// subsequently rendered errors without reconstructing any validator.
//
// ParseErrorCode is the extension hook for codes unknown to the engine:
// it receives the raw code and the offending value and returns a
// display string, or "" to fall back to the raw code itself.
type MessageTable interface {
	Required() string
	InvalidEmail() string
	InvalidPhone() string
	InvalidPattern() string
	MinLength(n int) string
	MaxLength(n int) string
	MinValue(v float64) string
	MaxValue(v float64) string
	MinItems(n int) string
	MaxItems(n int) string
	InvalidFileFormat(allowed []string) string
	DateAfter(t time.Time) string
	DateBefore(t time.Time) string
	FieldDoesNotMatch() string
	FieldIsNotAfter() string
	ParseErrorCode(code string, value any) string
}

// resolveMessage turns a winning error code and its payload into
// display text. The built-in codes form a closed set; everything else
// goes through the ParseErrorCode fallback and, as a last resort,
// surfaces the raw code rather than being silently swallowed.
func resolveMessage(table MessageTable, code string, p Params, value any) string {
	if table == nil {
		return code
	}

	switch code {
	case CodeRequired:
		return table.Required()
	case CodeInvalidEmail:
		return table.InvalidEmail()
	case CodeInvalidPhone:
		return table.InvalidPhone()
	case CodeInvalidPattern:
		return table.InvalidPattern()
	case CodeMinLength:
		return table.MinLength(p.Min)
	case CodeMaxLength:
		return table.MaxLength(p.Max)
	case CodeMinValue:
		return table.MinValue(p.MinValue)
	case CodeMaxValue:
		return table.MaxValue(p.MaxValue)
	case CodeMinItems:
		return table.MinItems(p.Min)
	case CodeMaxItems:
		return table.MaxItems(p.Max)
	case CodeInvalidFileFormat:
		return table.InvalidFileFormat(p.Allowed)
	case CodeDateAfter:
		// The cross-field variant carries no bound of its own.
		if p.HasBound {
			return table.DateAfter(p.Bound)
		}
		return table.FieldIsNotAfter()
	case CodeDateBefore:
		return table.DateBefore(p.Bound)
	case CodeFieldDoesNotMatch:
		return table.FieldDoesNotMatch()
	case CodeFieldIsNotAfter:
		return table.FieldIsNotAfter()
	default:
		if msg := table.ParseErrorCode(code, value); msg != "" {
			return msg
		}
		return code
	}
}
