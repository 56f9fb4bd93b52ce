package form_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

var table = messages.English{}

// signupSchema declares the email+password schema used across tests.
func signupSchema() (*schema.Schema, schema.Field[string], schema.Field[string]) {
	s := schema.New("signup")
	email := schema.Add[string](s, "email",
		schema.WithValidators(validator.Required[string](), validator.Email()))
	password := schema.Add[string](s, "password",
		schema.WithValidators(validator.Required[string](), validator.MinLength(8)))
	return s, email, password
}

func TestControllerConstruction(t *testing.T) {
	t.Parallel()

	t.Run("generates a form key by default", func(t *testing.T) {
		s, _, _ := signupSchema()
		c := form.New(s)
		assert.NotEqual(t, uuid.Nil, c.Key())
		assert.Same(t, s, c.Schema())
	})

	t.Run("accepts an explicit form key", func(t *testing.T) {
		s, _, _ := signupSchema()
		key := uuid.New()
		c := form.New(s, form.WithKey(key))
		assert.Equal(t, key, c.Key())
	})

	t.Run("panics on a dangling cross-field reference", func(t *testing.T) {
		foreign := schema.Add[string](schema.New("other"), "password")
		s := schema.New("broken")
		schema.Add[string](s, "confirm",
			schema.WithValidators(validator.MatchesField[string](foreign)))

		assert.Panics(t, func() {
			form.New(s)
		})
	})

	t.Run("panics on an initial value for an undeclared field", func(t *testing.T) {
		s, _, _ := signupSchema()
		foreign := schema.Add[string](schema.New("other"), "nickname")
		assert.Panics(t, func() {
			form.New(s, form.Initial(foreign, "x"))
		})
	})
}

func TestValidateRoundTrip(t *testing.T) {
	t.Parallel()

	s, email, password := signupSchema()
	c := form.New(s)

	emailHandle := form.HandleFor(c, email)
	passwordHandle := form.HandleFor(c, password)

	emailHandle.Set("")
	passwordHandle.Set("short")

	require.False(t, c.Validate())
	assert.Equal(t, table.Required(), c.FieldError(email))
	assert.Equal(t, table.MinLength(8), c.FieldError(password))

	emailHandle.Set("a@b.com")
	passwordHandle.Set("longenough")

	require.True(t, c.Validate())
	assert.Empty(t, c.FieldError(email))
	assert.Empty(t, c.FieldError(password))
}

func TestForcedErrors(t *testing.T) {
	t.Parallel()

	t.Run("forced error takes precedence", func(t *testing.T) {
		s, email, _ := signupSchema()
		c := form.New(s)
		form.HandleFor(c, email).Set("a@b.com")

		c.SetError(email, "already taken")
		assert.Equal(t, "already taken", c.FieldError(email))
		assert.True(t, c.HasFieldError(email))

		c.ClearForcedErrors()
		assert.Empty(t, c.FieldError(email))
		assert.False(t, c.HasFieldError(email))
	})

	t.Run("last write wins", func(t *testing.T) {
		s, email, _ := signupSchema()
		c := form.New(s)

		c.SetError(email, "first")
		c.SetError(email, "second")
		assert.Equal(t, "second", c.FieldError(email))
	})

	t.Run("validate clears forced errors by default", func(t *testing.T) {
		s, email, _ := signupSchema()
		c := form.New(s)
		form.HandleFor(c, email).Set("a@b.com")

		c.SetError(email, "already taken")
		require.True(t, c.Validate())
		assert.Empty(t, c.FieldError(email))
	})

	t.Run("KeepForcedErrors leaves them in place", func(t *testing.T) {
		s, email, _ := signupSchema()
		c := form.New(s)
		form.HandleFor(c, email).Set("a@b.com")

		c.SetError(email, "already taken")
		require.True(t, c.Validate(form.KeepForcedErrors()))
		assert.Equal(t, "already taken", c.FieldError(email))
	})
}

func TestValidateField(t *testing.T) {
	t.Parallel()

	s, email, password := signupSchema()
	c := form.New(s)

	emailHandle := form.HandleFor(c, email)
	passwordHandle := form.HandleFor(c, password)
	emailHandle.Set("nope")
	passwordHandle.Set("short")

	assert.False(t, c.ValidateField(email))
	assert.Equal(t, table.InvalidEmail(), c.FieldError(email))
	// The other field was not validated in isolation.
	assert.Empty(t, c.FieldError(password))

	t.Run("unmounted field is trivially valid", func(t *testing.T) {
		s2, email2, _ := signupSchema()
		c2 := form.New(s2)
		assert.True(t, c2.ValidateField(email2))
	})
}

func TestCrossFieldReadsLiveState(t *testing.T) {
	t.Parallel()

	s := schema.New("credentials")
	password := schema.Add[string](s, "password",
		schema.WithValidators(validator.Required[string]()))
	confirm := schema.Add[string](s, "confirm",
		schema.WithValidators(validator.MatchesField[string](password)))

	c := form.New(s)
	passwordHandle := form.HandleFor(c, password)
	confirmHandle := form.HandleFor(c, confirm)

	passwordHandle.Set("secret123")
	confirmHandle.Set("secret124")

	require.False(t, c.Validate())
	assert.Equal(t, table.FieldDoesNotMatch(), c.FieldError(confirm))

	// Same validator instance, updated counterpart.
	passwordHandle.Set("secret124")
	require.True(t, c.Validate())
	assert.Empty(t, c.FieldError(confirm))
}

func TestDirtyTracking(t *testing.T) {
	t.Parallel()

	s, email, password := signupSchema()
	c := form.New(s)

	emailHandle := form.HandleFor(c, email)
	form.HandleFor(c, password)

	assert.False(t, c.HasBeenInteracted())
	assert.False(t, c.IsDirty(email))
	assert.False(t, c.IsAllDirty())

	emailHandle.Set("a@b.com")

	assert.True(t, c.HasBeenInteracted())
	assert.True(t, c.IsDirty(email))
	assert.False(t, c.IsDirty(password))
	assert.False(t, c.IsDirty(email, password))
	assert.False(t, c.IsAllDirty())

	form.HandleFor(c, password).Touch()
	assert.True(t, c.IsAllDirty())
	assert.True(t, c.IsDirty(email, password))
}

func TestHasChanged(t *testing.T) {
	t.Parallel()

	s := schema.New("profile")
	name := schema.Add[string](s, "name", schema.WithInitial("Ada"))

	c := form.New(s)
	handle := form.HandleFor(c, name)

	assert.False(t, c.HasChanged())

	handle.Set("Grace")
	assert.True(t, c.HasChanged())

	handle.Set("Ada")
	assert.False(t, c.HasChanged(), "value back at initial is not a change")
}

func TestReset(t *testing.T) {
	t.Parallel()

	s, email, _ := signupSchema()
	c := form.New(s, form.Initial(email, "a@b.com"))

	handle := form.HandleFor(c, email)
	handle.Set("edited@x.com")
	c.SetError(email, "forced")
	require.True(t, c.HasBeenInteracted())

	c.Reset()

	assert.Equal(t, "a@b.com", handle.Value())
	assert.Empty(t, c.FieldError(email))
	assert.False(t, c.HasBeenInteracted())
	assert.False(t, c.HasChanged())
}

func TestValuesSnapshot(t *testing.T) {
	t.Parallel()

	s, email, password := signupSchema()
	c := form.New(s)

	form.HandleFor(c, email).Set("a@b.com")
	form.HandleFor(c, password).Set("longenough")

	want := map[string]any{
		"email":    "a@b.com",
		"password": "longenough",
	}
	if diff := cmp.Diff(want, c.Values()); diff != "" {
		t.Errorf("values snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestNotifications(t *testing.T) {
	t.Parallel()

	t.Run("listeners fire on tracked operations", func(t *testing.T) {
		s, email, _ := signupSchema()
		c := form.New(s)
		handle := form.HandleFor(c, email)

		calls := 0
		unsubscribe := c.Subscribe(func() { calls++ })

		handle.Set("a@b.com")
		c.Validate()
		c.SetError(email, "x")
		c.ClearForcedErrors()
		c.Reset()
		assert.Equal(t, 5, calls)

		unsubscribe()
		c.Validate()
		assert.Equal(t, 5, calls)
	})

	t.Run("Silent suppresses notification", func(t *testing.T) {
		s, email, _ := signupSchema()
		c := form.New(s)
		handle := form.HandleFor(c, email)

		calls := 0
		c.Subscribe(func() { calls++ })

		handle.Set("a@b.com", form.Silent())
		c.Validate(form.Silent())
		c.SetError(email, "x", form.Silent())
		c.ClearForcedErrors(form.Silent())
		assert.Zero(t, calls)
	})
}

func TestSetMessagesSwitchesLocale(t *testing.T) {
	t.Parallel()

	catalog := messages.NewCatalog()
	require.NoError(t, catalog.LoadYAML([]byte(`
es:
  required: Este campo es obligatorio
`)))

	s, email, _ := signupSchema()
	c := form.New(s)
	handle := form.HandleFor(c, email)
	handle.Set("")

	require.False(t, c.Validate())
	assert.Equal(t, table.Required(), c.FieldError(email))

	// Swap the table; the next validation pass renders Spanish without
	// reconstructing any validator.
	c.SetMessages(catalog.Table("es"))
	require.False(t, c.Validate())
	assert.Equal(t, "Este campo es obligatorio", c.FieldError(email))
}
