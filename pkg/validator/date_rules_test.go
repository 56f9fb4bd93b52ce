package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestAfter(t *testing.T) {
	t.Parallel()

	bound := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("strictly after passes", func(t *testing.T) {
		chain := validator.Chain[time.Time]{validator.After(bound)}
		assert.Empty(t, chain.Validate(bound.Add(time.Millisecond), table, nil))
	})

	t.Run("exactly at the bound fails", func(t *testing.T) {
		chain := validator.Chain[time.Time]{validator.After(bound)}
		assert.Equal(t, table.DateAfter(bound), chain.Validate(bound, table, nil))
	})

	t.Run("before the bound fails", func(t *testing.T) {
		chain := validator.Chain[time.Time]{validator.After(bound)}
		assert.NotEmpty(t, chain.Validate(bound.Add(-time.Hour), table, nil))
	})

	t.Run("zero time passes", func(t *testing.T) {
		chain := validator.Chain[time.Time]{validator.After(bound)}
		assert.Empty(t, chain.Validate(time.Time{}, table, nil))
	})
}

func TestBefore(t *testing.T) {
	t.Parallel()

	bound := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("strictly before passes", func(t *testing.T) {
		chain := validator.Chain[time.Time]{validator.Before(bound)}
		assert.Empty(t, chain.Validate(bound.Add(-time.Millisecond), table, nil))
	})

	t.Run("exactly at the bound fails", func(t *testing.T) {
		chain := validator.Chain[time.Time]{validator.Before(bound)}
		assert.Equal(t, table.DateBefore(bound), chain.Validate(bound, table, nil))
	})

	t.Run("zero time passes", func(t *testing.T) {
		chain := validator.Chain[time.Time]{validator.Before(bound)}
		assert.Empty(t, chain.Validate(time.Time{}, table, nil))
	})
}
