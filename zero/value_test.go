package zero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Value[int]())
	assert.Equal(t, "", Value[string]())
	assert.Nil(t, Value[*int]())
	assert.Nil(t, Value[[]byte]())
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		actual   bool
		expected bool
	}{
		{name: "zero int", actual: IsZero(0), expected: true},
		{name: "nonzero int", actual: IsZero(42), expected: false},
		{name: "empty string", actual: IsZero(""), expected: true},
		{name: "nonempty string", actual: IsZero("hello"), expected: false},
		{name: "nil pointer", actual: IsZero[*int](nil), expected: true},
		{name: "zero struct", actual: IsZero(struct{ A int }{}), expected: true},
		{name: "nonzero struct", actual: IsZero(struct{ A int }{A: 1}), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.actual)
		})
	}
}
