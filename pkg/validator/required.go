package validator

import (
	"reflect"
	"time"
)

// Required validates that a value is present. Emptiness is
// type-directed: nil is always empty; empty strings, slices and maps
// are empty; a zero time.Time is empty; every other non-nil value is
// considered present, including numeric zero and false.
func Required[T any]() Validator[T] {
	return Validator[T]{
		code: CodeRequired,
		check: func(value T, _ ValueSource) string {
			if isEmpty(value) {
				return CodeRequired
			}
			return ""
		},
	}
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case time.Time:
		return v.IsZero()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
