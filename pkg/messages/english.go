package messages

import (
	"fmt"
	"strings"
	"time"
)

// English is the default message table with the built-in English
// templates. It is the zero-configuration fallback for every catalog
// and the table a controller uses when none is injected.
type English struct{}

func (English) Required() string       { return "This field is required" }
func (English) InvalidEmail() string   { return "Must be a valid email address" }
func (English) InvalidPhone() string   { return "Must be a valid phone number" }
func (English) InvalidPattern() string { return "Invalid format" }

func (English) MinLength(n int) string {
	return fmt.Sprintf("Must be at least %d characters long", n)
}

func (English) MaxLength(n int) string {
	return fmt.Sprintf("Must be at most %d characters long", n)
}

func (English) MinValue(v float64) string {
	return fmt.Sprintf("Must be at least %s", formatNumber(v))
}

func (English) MaxValue(v float64) string {
	return fmt.Sprintf("Must be at most %s", formatNumber(v))
}

func (English) MinItems(n int) string {
	return fmt.Sprintf("Select at least %d items", n)
}

func (English) MaxItems(n int) string {
	return fmt.Sprintf("Select at most %d items", n)
}

func (English) InvalidFileFormat(allowed []string) string {
	return fmt.Sprintf("Allowed file formats: %s", strings.Join(allowed, ", "))
}

func (English) DateAfter(t time.Time) string {
	return fmt.Sprintf("Date must be after %s", t.Format("2006-01-02"))
}

func (English) DateBefore(t time.Time) string {
	return fmt.Sprintf("Date must be before %s", t.Format("2006-01-02"))
}

func (English) FieldDoesNotMatch() string { return "Fields do not match" }
func (English) FieldIsNotAfter() string   { return "Must be later than the related date" }

// ParseErrorCode knows no custom codes; the engine surfaces the raw
// code as a last resort.
func (English) ParseErrorCode(code string, value any) string { return "" }

func formatNumber(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", v), "0"), ".")
}
