// Package selftest runs the sample's built-in assertions outside of go test,
// so a CI job can check a built binary with `sampleapp selftest`.
package selftest

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/mark3labs/sampleapp/internal/logger"
	"github.com/mark3labs/sampleapp/internal/sample"
	"github.com/mark3labs/sampleapp/internal/theme"
)

const (
	// StartMessage is written before the first check runs.
	StartMessage = "Running tests..."
	// PassMessage is written once every check has succeeded.
	PassMessage = "All tests passed!"
)

// Check is one named assertion. It returns a descriptive error on mismatch.
type Check struct {
	Name string
	Fn   func() error
}

// Checks returns the fixed list of assertions in the order they run.
func Checks() []Check {
	return []Check{
		{"greet default", func() error {
			return assertEqual(sample.Greet(), "Hello, World!", "greet()")
		}},
		{"greet with name", func() error {
			return assertEqual(sample.Greet("GitHub"), "Hello, GitHub!", `greet("GitHub")`)
		}},
		{"add positive", func() error {
			if err := assertSum(sample.Add, 2, 3, 5, "add(2, 3)"); err != nil {
				return err
			}
			return assertSum(sample.Add, 10, 20, 30, "add(10, 20)")
		}},
		{"add negative", func() error {
			if err := assertSum(sample.Add, -1, 1, 0, "add(-1, 1)"); err != nil {
				return err
			}
			return assertSum(sample.Add, -5, -3, -8, "add(-5, -3)")
		}},
		{"add zero", func() error {
			if err := assertSum(sample.Add, 0, 0, 0, "add(0, 0)"); err != nil {
				return err
			}
			return assertSum(sample.Add, 5, 0, 5, "add(5, 0)")
		}},
		{"add floats", func() error {
			got, err := sample.Add(2.5, 3.7)
			if err != nil {
				return fmt.Errorf("add(2.5, 3.7): unexpected error: %w", err)
			}
			return assertAlmostEqual(got, 6.2, 1, "add(2.5, 3.7)")
		}},
		{"add invalid input", func() error {
			if err := assertInvalid(sample.Add, "2", 3, `add("2", 3)`); err != nil {
				return err
			}
			return assertInvalid(sample.Add, 2, "3", `add(2, "3")`)
		}},
		{"multiply positive", func() error {
			if err := assertSum(sample.Multiply, 2, 3, 6, "multiply(2, 3)"); err != nil {
				return err
			}
			return assertSum(sample.Multiply, 4, 5, 20, "multiply(4, 5)")
		}},
		{"multiply negative", func() error {
			if err := assertSum(sample.Multiply, -2, 3, -6, "multiply(-2, 3)"); err != nil {
				return err
			}
			return assertSum(sample.Multiply, -2, -3, 6, "multiply(-2, -3)")
		}},
		{"multiply zero", func() error {
			if err := assertSum(sample.Multiply, 0, 5, 0, "multiply(0, 5)"); err != nil {
				return err
			}
			return assertSum(sample.Multiply, 5, 0, 0, "multiply(5, 0)")
		}},
		{"multiply invalid input", func() error {
			if err := assertInvalid(sample.Multiply, "2", 3, `multiply("2", 3)`); err != nil {
				return err
			}
			return assertInvalid(sample.Multiply, 2, "3", `multiply(2, "3")`)
		}},
	}
}

// Run writes StartMessage, executes checks in order and stops at the first
// failure. On success it writes PassMessage to w in the theme's success style.
func Run(w io.Writer, checks []Check) error {
	if _, err := fmt.Fprintln(w, StartMessage); err != nil {
		return err
	}
	for _, c := range checks {
		logger.Debug("selftest: running %s", c.Name)
		if err := c.Fn(); err != nil {
			logger.Error("selftest: %s failed: %v", c.Name, err)
			return fmt.Errorf("%s: %w", c.Name, err)
		}
	}
	logger.Info("selftest: %d checks passed", len(checks))
	_, err := fmt.Fprintln(theme.Writer(w), theme.Current().S().Success.Render(PassMessage))
	return err
}

type binaryOp func(a, b any) (float64, error)

func assertEqual(got, want any, label string) error {
	if got != want {
		return fmt.Errorf("%s: expected %v, got %v", label, want, got)
	}
	return nil
}

func assertSum(op binaryOp, a, b any, want float64, label string) error {
	got, err := op(a, b)
	if err != nil {
		return fmt.Errorf("%s: unexpected error: %w", label, err)
	}
	return assertEqual(got, want, label)
}

// assertAlmostEqual compares after rounding the difference to places decimals.
func assertAlmostEqual(got, want float64, places int, label string) error {
	scale := math.Pow10(places)
	if math.Round((got-want)*scale) != 0 {
		return fmt.Errorf("%s: expected %v within %d places, got %v", label, want, places, got)
	}
	return nil
}

func assertInvalid(op binaryOp, a, b any, label string) error {
	_, err := op(a, b)
	if err == nil {
		return fmt.Errorf("%s: expected %v, got no error", label, sample.ErrInvalidArgument)
	}
	if !errors.Is(err, sample.ErrInvalidArgument) {
		return fmt.Errorf("%s: expected %v, got %w", label, sample.ErrInvalidArgument, err)
	}
	if err.Error() != sample.ErrInvalidArgument.Error() {
		return fmt.Errorf("%s: expected message %q, got %q", label, sample.ErrInvalidArgument.Error(), err.Error())
	}
	return nil
}
