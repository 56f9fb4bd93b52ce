package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestFileType(t *testing.T) {
	t.Parallel()

	chain := validator.Chain[*validator.File]{
		validator.FileType("image/png", "image/jpeg"),
	}

	t.Run("allowed media type passes", func(t *testing.T) {
		assert.Empty(t, chain.Validate(&validator.File{Name: "a.png", MIME: "image/png"}, table, nil))
	})

	t.Run("media type derived from extension", func(t *testing.T) {
		assert.Empty(t, chain.Validate(&validator.File{Name: "photo.jpeg"}, table, nil))
	})

	t.Run("mime parameters are stripped", func(t *testing.T) {
		assert.Empty(t, chain.Validate(&validator.File{Name: "a.png", MIME: "image/png; charset=binary"}, table, nil))
	})

	t.Run("disallowed media type fails", func(t *testing.T) {
		got := chain.Validate(&validator.File{Name: "cv.pdf", MIME: "application/pdf"}, table, nil)
		assert.Equal(t, table.InvalidFileFormat([]string{"image/png", "image/jpeg"}), got)
	})

	t.Run("unknown media type fails", func(t *testing.T) {
		assert.NotEmpty(t, chain.Validate(&validator.File{Name: "noext"}, table, nil))
	})

	t.Run("nil file passes", func(t *testing.T) {
		assert.Empty(t, chain.Validate(nil, table, nil))
	})
}
