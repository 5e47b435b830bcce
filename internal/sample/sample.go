// Package sample holds the functions exercised by the CI sample: a greeting
// and validated arithmetic on loosely typed operands.
package sample

import (
	"errors"
	"fmt"
	"reflect"
)

// DefaultName is substituted when Greet is called without a name.
const DefaultName = "World"

// ErrInvalidArgument is returned when an arithmetic operand is not a number.
var ErrInvalidArgument = errors.New("Both arguments must be numbers")

// Greet returns a greeting for name, or for DefaultName when name is omitted.
// An empty name is kept as given. Only the first name is used.
func Greet(name ...string) string {
	n := DefaultName
	if len(name) > 0 {
		n = name[0]
	}
	return fmt.Sprintf("Hello, %s!", n)
}

// Add returns a + b. Both operands must have a numeric kind.
func Add(a, b any) (float64, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return 0, err
	}
	return x + y, nil
}

// Multiply returns a * b. Both operands must have a numeric kind.
func Multiply(a, b any) (float64, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return 0, err
	}
	return x * y, nil
}

func operands(a, b any) (float64, float64, error) {
	x, ok := number(a)
	if !ok {
		return 0, 0, ErrInvalidArgument
	}
	y, ok := number(b)
	if !ok {
		return 0, 0, ErrInvalidArgument
	}
	return x, y, nil
}

// number converts v to float64 if its kind is an integer or float.
// Named types such as time.Duration count as numbers.
func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		// Invalid (nil), Bool, String and composite kinds.
		return 0, false
	}
}
