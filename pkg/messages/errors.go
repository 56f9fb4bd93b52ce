package messages

import "errors"

var (
	// ErrFailedToParseYAML is returned when a catalog document is not valid YAML.
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog")

	// ErrFailedToParseJSON is returned when a catalog document is not valid JSON.
	ErrFailedToParseJSON = errors.New("failed to parse JSON catalog")

	// ErrInvalidLanguageTag is returned when a catalog key is not a valid BCP 47 tag.
	ErrInvalidLanguageTag = errors.New("invalid language tag")

	// ErrEmptyCatalog is returned when a catalog document declares no languages.
	ErrEmptyCatalog = errors.New("catalog declares no languages")
)
