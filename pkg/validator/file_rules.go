package validator

import (
	"mime"
	"path/filepath"
	"strings"
)

// File describes a candidate file picked by a form widget. MIME may be
// left empty, in which case the media type is derived from the file
// name's extension.
type File struct {
	Name string
	MIME string
	Size int64
}

// MediaType returns the file's media type without parameters, for
// example "image/png". Returns "" when the type cannot be determined.
func (f *File) MediaType() string {
	raw := f.MIME
	if raw == "" {
		raw = mime.TypeByExtension(filepath.Ext(f.Name))
	}
	if raw == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return ""
	}
	return mediaType
}

// FileType validates that a file's media type is one of the allowed
// types, for example "image/png" or "application/pdf". A nil file
// passes; presence is Required's concern.
func FileType(allowed ...string) Validator[*File] {
	normalized := make([]string, len(allowed))
	for i, a := range allowed {
		normalized[i] = strings.ToLower(strings.TrimSpace(a))
	}
	return Validator[*File]{
		code:   CodeInvalidFileFormat,
		params: Params{Allowed: normalized},
		check: func(value *File, _ ValueSource) string {
			if value == nil {
				return ""
			}
			mediaType := value.MediaType()
			for _, a := range normalized {
				if mediaType == a {
					return ""
				}
			}
			return CodeInvalidFileFormat
		},
	}
}
