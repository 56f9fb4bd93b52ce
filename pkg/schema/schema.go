package schema

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// FieldRef names a declared field without carrying its value type.
// Every Field implements it.
type FieldRef = validator.FieldRef

// Schema is the static declaration of a form: its fields, each field's
// validator chain and optional initial value. A schema is built once at
// definition time and is not mutated afterward; adding a duplicate
// field key panics, as it indicates a schema authoring bug.
type Schema struct {
	name    string
	entries map[string]*Entry
	order   []string
}

// New creates an empty schema with the given name. The name appears in
// diagnostics and in the String form of its fields.
func New(name string) *Schema {
	return &Schema{
		name:    name,
		entries: make(map[string]*Entry),
	}
}

// Name returns the schema's name.
func (s *Schema) Name() string { return s.name }

// Entry returns the declaration for the given field key.
func (s *Schema) Entry(key string) (*Entry, bool) {
	e, ok := s.entries[key]
	return e, ok
}

// Keys returns all declared field keys in declaration order.
func (s *Schema) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

// CheckRefs verifies that every cross-field rule in the schema
// references a declared field. It panics on a dangling reference; the
// form controller calls it at construction time so that a schema
// authoring bug surfaces before any validation runs.
func (s *Schema) CheckRefs() {
	for _, key := range s.order {
		for _, required := range s.entries[key].requires {
			if _, ok := s.entries[required]; !ok {
				panic(fmt.Sprintf("schema %q: field %q has a cross-field rule referencing undeclared field %q", s.name, key, required))
			}
		}
	}
}

// Entry is one field's declaration: its key, validator chain (held as a
// type-erased runner) and optional initial value.
type Entry struct {
	key        string
	initial    any
	hasInitial bool
	requires   []string
	run        func(value any, table validator.MessageTable, src validator.ValueSource) string
}

// Key returns the field key this entry declares.
func (e *Entry) Key() string { return e.key }

// Initial returns the declared initial value, if any.
func (e *Entry) Initial() (any, bool) { return e.initial, e.hasInitial }

// Run validates a candidate value against the entry's chain and
// returns the resolved display string, or "" when the value passes.
// Passing a value of the wrong type is a programming error and panics.
func (e *Entry) Run(value any, table validator.MessageTable, src validator.ValueSource) string {
	return e.run(value, table, src)
}

// Field is the typed, immutable handle naming one declared field. Two
// fields are equal iff they name the same key within the same schema.
type Field[T any] struct {
	schema *Schema
	key    string
}

// FieldKey returns the field's key within its schema.
func (f Field[T]) FieldKey() string { return f.key }

// Schema returns the schema this field belongs to.
func (f Field[T]) Schema() *Schema { return f.schema }

func (f Field[T]) String() string {
	return f.schema.name + "." + f.key
}

// FieldOption configures one field declaration.
type FieldOption[T any] func(*fieldConfig[T])

type fieldConfig[T any] struct {
	validators validator.Chain[T]
	initial    T
	hasInitial bool
}

// WithValidators attaches the field's validator chain, in evaluation
// order.
func WithValidators[T any](vs ...validator.Validator[T]) FieldOption[T] {
	return func(c *fieldConfig[T]) {
		c.validators = vs
	}
}

// WithInitial declares the field's initial value.
func WithInitial[T any](v T) FieldOption[T] {
	return func(c *fieldConfig[T]) {
		c.initial = v
		c.hasInitial = true
	}
}

// Add declares a field of type T on the schema and returns its typed
// handle. The runner closure built here performs the single runtime
// type assertion at the boundary between the type-erased registry and
// the typed validator chain; everything downstream of it is statically
// typed. Add panics on a duplicate key.
func Add[T any](s *Schema, key string, opts ...FieldOption[T]) Field[T] {
	if key == "" {
		panic(fmt.Sprintf("schema %q: field key must not be empty", s.name))
	}
	if _, exists := s.entries[key]; exists {
		panic(fmt.Sprintf("schema %q: duplicate field %q", s.name, key))
	}

	var cfg fieldConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	chain := cfg.validators
	entry := &Entry{
		key:      key,
		requires: chain.Requires(),
		run: func(value any, table validator.MessageTable, src validator.ValueSource) string {
			var typed T
			if value != nil {
				cast, ok := value.(T)
				if !ok {
					panic(fmt.Sprintf("schema %q: field %q holds %T, want %T", s.name, key, value, typed))
				}
				typed = cast
			}
			return chain.Validate(typed, table, src)
		},
	}
	if cfg.hasInitial {
		entry.initial = cfg.initial
		entry.hasInitial = true
	}

	s.entries[key] = entry
	s.order = append(s.order, key)

	return Field[T]{schema: s, key: key}
}
