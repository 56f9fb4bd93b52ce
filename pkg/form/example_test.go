package form_test

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func Example() {
	// Declare the schema once, statically.
	signup := schema.New("signup")
	email := schema.Add[string](signup, "email",
		schema.WithValidators(validator.Required[string](), validator.Email()))
	password := schema.Add[string](signup, "password",
		schema.WithValidators(validator.Required[string](), validator.MinLength(8)))
	confirm := schema.Add[string](signup, "confirm",
		schema.WithValidators(validator.MatchesField[string](password)))

	// One controller per rendered form instance.
	c := form.New(signup)

	// Widget bindings mount their fields and report user input.
	form.HandleFor(c, email).Set("a@b.com")
	form.HandleFor(c, password).Set("secret123")
	form.HandleFor(c, confirm).Set("secret124")

	fmt.Println(c.Validate())
	fmt.Println(c.FieldError(confirm))

	form.HandleFor(c, confirm).Set("secret123")
	fmt.Println(c.Validate())

	// Output:
	// false
	// Fields do not match
	// true
}
