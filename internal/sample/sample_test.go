package sample

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreet(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no argument", args: nil, want: "Hello, World!"},
		{name: "empty name is kept", args: []string{""}, want: "Hello, !"},
		{name: "with name", args: []string{"GitHub"}, want: "Hello, GitHub!"},
		{name: "sample name", args: []string{"GitHub Actions"}, want: "Hello, GitHub Actions!"},
		{name: "extra names ignored", args: []string{"Go", "Rust"}, want: "Hello, Go!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Greet(tt.args...))
		})
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want float64
	}{
		{"positive", 2, 3, 5},
		{"positive larger", 10, 20, 30},
		{"negative cancels", -1, 1, 0},
		{"both negative", -5, -3, -8},
		{"zeros", 0, 0, 0},
		{"zero right", 5, 0, 5},
		{"mixed int kinds", int8(4), uint64(6), 10},
		{"named numeric type", time.Duration(7), 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdd_Floats(t *testing.T) {
	got, err := Add(2.5, 3.7)
	require.NoError(t, err)
	assert.InDelta(t, 6.2, got, 0.05)
}

func TestAdd_InvalidArgument(t *testing.T) {
	tests := []struct {
		name string
		a, b any
	}{
		{"numeric string left", "2", 3},
		{"numeric string right", 2, "3"},
		{"nil", nil, 1},
		{"bool", true, 1},
		{"slice", []int{1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Add(tt.a, tt.b)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.EqualError(t, err, "Both arguments must be numbers")
		})
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want float64
	}{
		{"positive", 2, 3, 6},
		{"positive larger", 4, 5, 20},
		{"one negative", -2, 3, -6},
		{"both negative", -2, -3, 6},
		{"zero left", 0, 5, 0},
		{"zero right", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Multiply(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMultiply_InvalidArgument(t *testing.T) {
	_, err := Multiply("2", 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Multiply(2, "3")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRepeatedCallsAreStable(t *testing.T) {
	first, err := Add(2, 3)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		got, err := Add(2, 3)
		require.NoError(t, err)
		assert.Equal(t, first, got)
		assert.Equal(t, Greet("GitHub"), Greet("GitHub"))
	}
}
