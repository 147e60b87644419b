package sortable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        Int
		b        Int
		less     bool
		equal    bool
	}{
		{name: "less", a: 1, b: 2, less: true, equal: false},
		{name: "greater", a: 2, b: 1, less: false, equal: false},
		{name: "equal", a: 7, b: 7, less: false, equal: true},
		{name: "negative", a: -3, b: 0, less: true, equal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.less, tt.a.LessThan(tt.b))
			assert.Equal(t, tt.equal, tt.a.Equals(tt.b))
		})
	}
}

func TestUint64(t *testing.T) {
	t.Parallel()

	assert.True(t, Uint64(1).LessThan(Uint64(2)))
	assert.False(t, Uint64(2).LessThan(Uint64(1)))
	assert.True(t, Uint64(5).Equals(Uint64(5)))

	// A large uint64 must not be treated as a negative number.
	assert.True(t, Uint64(1).LessThan(Uint64(1<<63)))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.True(t, String("apple").LessThan(String("banana")))
	assert.False(t, String("banana").LessThan(String("apple")))
	assert.True(t, String("apple").Equals(String("apple")))

	// Lexicographic byte order: "item10" sorts before "item2".
	assert.True(t, String("item10").LessThan(String("item2")))
}

func TestNaturalString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    NaturalString
		b    NaturalString
		less bool
	}{
		{name: "numeric run compares by magnitude", a: "item2", b: "item10", less: true},
		{name: "reverse of numeric run", a: "item10", b: "item2", less: false},
		{name: "plain lexicographic", a: "alpha", b: "beta", less: true},
		{name: "equal strings", a: "v1.2", b: "v1.2", less: false},
		{name: "natural-equal breaks tie by byte order", a: "a01", b: "a1", less: true},
		{name: "reverse of natural-equal tie", a: "a1", b: "a01", less: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.less, tt.a.LessThan(tt.b))
		})
	}
}

func TestNaturalString_EqualsAgreesWithOrder(t *testing.T) {
	t.Parallel()

	a := NaturalString("chapter2")
	b := NaturalString("chapter10")

	assert.False(t, a.Equals(b))
	assert.True(t, a.Equals(a))

	// Order-derived equality: neither sorts before the other.
	assert.Equal(t, !a.LessThan(b) && !b.LessThan(a), a.Equals(b))
}

func TestNaturalString_OrderIsStrict(t *testing.T) {
	t.Parallel()

	values := []NaturalString{"a1", "a01", "a2", "a10", "v1.2", "alpha", ""}

	for _, a := range values {
		// Irreflexive: nothing sorts before itself.
		assert.False(t, a.LessThan(a), "%q.LessThan(itself)", a)

		for _, b := range values {
			if a == b {
				continue
			}

			// Asymmetric: distinct values sort in exactly one direction,
			// and equality under the order is byte equality.
			assert.NotEqual(t, a.LessThan(b), b.LessThan(a), "%q vs %q", a, b)
			assert.False(t, a.Equals(b), "%q.Equals(%q)", a, b)
			assert.Equal(t, !a.LessThan(b) && !b.LessThan(a), a.Equals(b), "%q vs %q", a, b)
		}
	}
}
