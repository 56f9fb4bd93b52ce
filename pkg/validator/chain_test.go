package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestChainValidate(t *testing.T) {
	t.Parallel()

	table := messages.English{}

	t.Run("nil chain always passes", func(t *testing.T) {
		var chain validator.Chain[string]
		assert.Empty(t, chain.Validate("anything", table, nil))
	})

	t.Run("empty chain always passes", func(t *testing.T) {
		chain := validator.Chain[string]{}
		assert.Empty(t, chain.Validate("", table, nil))
	})

	t.Run("first failing rule wins", func(t *testing.T) {
		chain := validator.Chain[string]{
			validator.MinLength(10),
			validator.MaxLength(2),
		}
		// "abcde" fails both; MinLength is declared first.
		assert.Equal(t, table.MinLength(10), chain.Validate("abcde", table, nil))

		swapped := validator.Chain[string]{
			validator.MaxLength(2),
			validator.MinLength(10),
		}
		assert.Equal(t, table.MaxLength(2), swapped.Validate("abcde", table, nil))
	})

	t.Run("empty value defers to required regardless of order", func(t *testing.T) {
		chain := validator.Chain[string]{
			validator.Email(),
			validator.Required[string](),
		}
		assert.Equal(t, table.Required(), chain.Validate("", table, nil))
	})

	t.Run("short-circuits after first failure", func(t *testing.T) {
		calls := 0
		spy := validator.Custom("spy_code", func(string) string {
			calls++
			return ""
		})
		chain := validator.Chain[string]{
			validator.Required[string](),
			spy,
		}
		require.NotEmpty(t, chain.Validate("", table, nil))
		assert.Zero(t, calls, "rule after the first failure must not run")
	})

	t.Run("constructor message overrides the table", func(t *testing.T) {
		chain := validator.Chain[string]{
			validator.Required[string]().WithMessage("Please fill this in"),
		}
		assert.Equal(t, "Please fill this in", chain.Validate("", table, nil))
	})

	t.Run("check returning a foreign string surfaces verbatim", func(t *testing.T) {
		chain := validator.Chain[string]{
			validator.Custom("some_code", func(string) string {
				return "already final text"
			}),
		}
		assert.Equal(t, "already final text", chain.Validate("x", table, nil))
	})

	t.Run("unknown code falls back to the raw code", func(t *testing.T) {
		chain := validator.Chain[string]{
			validator.Custom("foo_bar", func(string) string {
				return "foo_bar"
			}),
		}
		assert.Equal(t, "foo_bar", chain.Validate("x", table, nil))
	})

	t.Run("unknown code resolved through ParseErrorCode", func(t *testing.T) {
		chain := validator.Chain[string]{
			validator.Custom("foo_bar", func(string) string {
				return "foo_bar"
			}),
		}
		custom := parseTable{English: messages.English{}, code: "foo_bar", text: "custom text"}
		assert.Equal(t, "custom text", chain.Validate("x", custom, nil))
	})

	t.Run("nil table falls back to the raw code", func(t *testing.T) {
		chain := validator.Chain[string]{validator.Required[string]()}
		assert.Equal(t, validator.CodeRequired, chain.Validate("", nil, nil))
	})

	t.Run("table is consulted at validation time", func(t *testing.T) {
		chain := validator.Chain[string]{validator.Required[string]()}
		first := parseTable{English: messages.English{}}
		assert.Equal(t, first.Required(), chain.Validate("", first, nil))

		swapped := requiredTable{text: "Campo obligatorio"}
		assert.Equal(t, "Campo obligatorio", chain.Validate("", swapped, nil))
	})

	t.Run("valid value passes the whole chain", func(t *testing.T) {
		chain := validator.Chain[string]{
			validator.Required[string](),
			validator.Email(),
			validator.MaxLength(64),
		}
		assert.Empty(t, chain.Validate("a@b.com", table, nil))
	})
}

func TestChainRequires(t *testing.T) {
	t.Parallel()

	t.Run("lists cross-field references in declared order", func(t *testing.T) {
		chain := validator.Chain[string]{
			validator.Required[string](),
			validator.MatchesField[string](fieldRef("password")),
		}
		assert.Equal(t, []string{"password"}, chain.Requires())
	})

	t.Run("empty for single-field chains", func(t *testing.T) {
		chain := validator.Chain[time.Time]{validator.After(time.Now())}
		assert.Empty(t, chain.Requires())
	})
}

// fieldRef is a minimal FieldRef for tests that need no schema.
type fieldRef string

func (f fieldRef) FieldKey() string { return string(f) }

// parseTable overrides ParseErrorCode for a single code.
type parseTable struct {
	messages.English
	code string
	text string
}

func (p parseTable) ParseErrorCode(code string, _ any) string {
	if code == p.code {
		return p.text
	}
	return ""
}

// requiredTable overrides the required message only.
type requiredTable struct {
	messages.English
	text string
}

func (r requiredTable) Required() string { return r.text }
