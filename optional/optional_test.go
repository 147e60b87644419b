package optional

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSome(t *testing.T) {
	t.Parallel()

	v := Some(42)

	assert.True(t, v.NonEmpty())
	assert.False(t, v.Empty())

	got, ok := v.Get()
	require.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestNone(t *testing.T) {
	t.Parallel()

	v := None[int]()

	assert.False(t, v.NonEmpty())
	assert.True(t, v.Empty())

	got, ok := v.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, got)
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Some(1).GetOrElse(9))
	assert.Equal(t, 9, None[int]().GetOrElse(9))
}

func TestGetOrElseFunc(t *testing.T) {
	t.Parallel()

	called := false
	fallback := func() int {
		called = true

		return 9
	}

	assert.Equal(t, 1, Some(1).GetOrElseFunc(fallback))
	assert.False(t, called)

	assert.Equal(t, 9, None[int]().GetOrElseFunc(fallback))
	assert.True(t, called)
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", Some("x").GetOrPanic())
	assert.Panics(t, func() {
		None[string]().GetOrPanic()
	})
}

func TestForEach(t *testing.T) {
	t.Parallel()

	var seen []int

	Some(3).ForEach(func(v int) {
		seen = append(seen, v)
	})
	None[int]().ForEach(func(v int) {
		seen = append(seen, v)
	})

	assert.Equal(t, []int{3}, seen)
}

func TestAll(t *testing.T) {
	t.Parallel()

	count := 0
	for range Some("a").All() {
		count++
	}

	for range None[string]().All() {
		count++
	}

	assert.Equal(t, 1, count)
}

func TestMap(t *testing.T) {
	t.Parallel()

	mapped := Map(Some(42), strconv.Itoa)
	got, ok := mapped.Get()
	require.True(t, ok)
	assert.Equal(t, "42", got)

	empty := Map(None[int](), strconv.Itoa)
	assert.True(t, empty.Empty())
}
