package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type caseInsensitiveWord string

func (w caseInsensitiveWord) Equals(other caseInsensitiveWord) bool {
	if len(w) != len(other) {
		return false
	}

	for i := range len(w) {
		a, b := w[i], other[i]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}

		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}

		if a != b {
			return false
		}
	}

	return true
}

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        caseInsensitiveWord
		b        caseInsensitiveWord
		expected bool
	}{
		{name: "identical", a: "hello", b: "hello", expected: true},
		{name: "case differs", a: "Hello", b: "hELLO", expected: true},
		{name: "different words", a: "hello", b: "world", expected: false},
		{name: "different lengths", a: "hello", b: "hell", expected: false},
		{name: "both empty", a: "", b: "", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equals(tt.a, tt.b))
		})
	}
}
