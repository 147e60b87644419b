package keyed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/bucketmap/hashing"
)

func TestFrom_Ordering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    Ordered[int]
		b    Ordered[int]
		less bool
	}{
		{name: "less", a: From(1), b: From(2), less: true},
		{name: "greater", a: From(2), b: From(1), less: false},
		{name: "equal", a: From(5), b: From(5), less: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.less, tt.a.LessThan(tt.b))
		})
	}
}

func TestFrom_EqualityAgreesWithOrder(t *testing.T) {
	t.Parallel()

	a := From(7)
	b := From(7)
	c := From(8)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.Equal(t, !a.LessThan(b) && !b.LessThan(a), a.Equals(b))
	assert.Equal(t, !a.LessThan(c) && !c.LessThan(a), a.Equals(c))
}

func TestFrom_NaN(t *testing.T) {
	t.Parallel()

	nan := From(math.NaN())
	one := From(1.0)

	// cmp orders NaN before every other value, and equality must agree with
	// that order even though NaN != NaN under the == operator.
	assert.True(t, nan.LessThan(one))
	assert.False(t, one.LessThan(nan))
	assert.True(t, nan.Equals(nan))
	assert.False(t, nan.Equals(one))
}

func TestFrom_Hashing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  hashing.Hashable
	}{
		{name: "int", key: From(42)},
		{name: "int8", key: From(int8(-1))},
		{name: "int16", key: From(int16(300))},
		{name: "int32", key: From(int32(1 << 20))},
		{name: "int64", key: From(int64(1) << 40)},
		{name: "uint", key: From(uint(7))},
		{name: "uint8", key: From(uint8(255))},
		{name: "uint16", key: From(uint16(65535))},
		{name: "uint32", key: From(uint32(1) << 30)},
		{name: "uint64", key: From(uint64(1) << 63)},
		{name: "float32", key: From(float32(1.5))},
		{name: "float64", key: From(2.5)},
		{name: "string", key: From("hello")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			first, err := hashing.XXHash64(tt.key)
			require.NoError(t, err)

			second, err := hashing.XXHash64(tt.key)
			require.NoError(t, err)

			assert.Equal(t, first, second)
		})
	}
}

func TestFrom_UnsupportedType(t *testing.T) {
	t.Parallel()

	_, err := hashing.XXHash64(From(uintptr(1)))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFrom_Value(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, From(42).Value())
	assert.Equal(t, "hello", From("hello").Value())
}

func TestNamedKeys_Ordering(t *testing.T) {
	t.Parallel()

	assert.True(t, Int(1).LessThan(Int(2)))
	assert.True(t, Int(3).Equals(Int(3)))

	assert.True(t, Uint64(1).LessThan(Uint64(1<<63)))
	assert.True(t, Uint64(9).Equals(Uint64(9)))

	assert.True(t, String("a").LessThan(String("b")))
	assert.True(t, String("a").Equals(String("a")))

	assert.True(t, NaturalString("item2").LessThan(NaturalString("item10")))
	assert.False(t, NaturalString("item10").LessThan(NaturalString("item2")))
}

func TestNamedKeys_Hashing(t *testing.T) {
	t.Parallel()

	keys := []struct {
		name string
		a    hashing.Hashable
		b    hashing.Hashable
	}{
		{name: "int", a: Int(1), b: Int(2)},
		{name: "uint64", a: Uint64(1), b: Uint64(2)},
		{name: "string", a: String("a"), b: String("b")},
		{name: "natural string", a: NaturalString("a1"), b: NaturalString("a2")},
	}

	for _, tt := range keys {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hashA, err := hashing.XXHash64(tt.a)
			require.NoError(t, err)

			hashB, err := hashing.XXHash64(tt.b)
			require.NoError(t, err)

			assert.NotEqual(t, hashA, hashB)
		})
	}
}
