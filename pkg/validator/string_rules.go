package validator

import "regexp"

var (
	// Email regex for typical web use; no locale sensitivity.
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?)*\.[A-Za-z]{2,}$`)

	// Phone number regex - E.164 international format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
)

// Shape rules treat an empty string as pass: emptiness is Required's
// concern, which lets Required and Email compose in either order
// without one masking the other.

// Email validates that a non-empty string is a well-formed email address.
func Email() Validator[string] {
	return Validator[string]{
		code: CodeInvalidEmail,
		check: func(value string, _ ValueSource) string {
			if value == "" {
				return ""
			}
			if !emailRegex.MatchString(value) {
				return CodeInvalidEmail
			}
			return ""
		},
	}
}

// Phone validates that a non-empty string is a phone number in
// international format. Spaces and dashes are stripped before matching.
func Phone() Validator[string] {
	return Validator[string]{
		code: CodeInvalidPhone,
		check: func(value string, _ ValueSource) string {
			if value == "" {
				return ""
			}
			cleaned := stripPhoneSeparators(value)
			if !phoneRegex.MatchString(cleaned) {
				return CodeInvalidPhone
			}
			return ""
		},
	}
}

func stripPhoneSeparators(value string) string {
	out := make([]byte, 0, len(value))
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case ' ', '-', '(', ')':
		default:
			out = append(out, value[i])
		}
	}
	return string(out)
}

// Pattern validates that a non-empty string matches re.
func Pattern(re *regexp.Regexp) Validator[string] {
	if re == nil {
		panic("validator: Pattern called with nil regexp")
	}
	return Validator[string]{
		code:   CodeInvalidPattern,
		params: Params{Pattern: re.String()},
		check: func(value string, _ ValueSource) string {
			if value == "" {
				return ""
			}
			if !re.MatchString(value) {
				return CodeInvalidPattern
			}
			return ""
		},
	}
}

// MinLength validates that a non-empty string is at least min bytes
// long. A string of exactly min passes.
func MinLength(min int) Validator[string] {
	return Validator[string]{
		code:   CodeMinLength,
		params: Params{Min: min},
		check: func(value string, _ ValueSource) string {
			if value == "" {
				return ""
			}
			if len(value) < min {
				return CodeMinLength
			}
			return ""
		},
	}
}

// MaxLength validates that a string is at most max bytes long. A string
// of exactly max passes.
func MaxLength(max int) Validator[string] {
	return Validator[string]{
		code:   CodeMaxLength,
		params: Params{Max: max},
		check: func(value string, _ ValueSource) string {
			if value == "" {
				return ""
			}
			if len(value) > max {
				return CodeMaxLength
			}
			return ""
		},
	}
}
