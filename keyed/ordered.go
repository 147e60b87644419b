package keyed

import (
	"cmp"
	"errors"
	"fmt"
	"hash"

	"github.com/amp-labs/bucketmap/hashing"
)

// ErrUnsupportedType is returned when attempting to hash an unsupported type.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// Ordered wraps any cmp.Ordered value and implements Key[Ordered[T]].
// It is the generic bridge for callers whose key types are plain primitives:
// ordering comes from the language's < operator and hashing delegates to the
// appropriate hashing.HashableX wrapper.
type Ordered[T cmp.Ordered] struct {
	value T
}

// From creates a Key from any ordered primitive value.
// It supports all built-in integer types, floats, and strings.
// For unsupported ordered types (such as uintptr), the UpdateHash method
// will return an error.
func From[T cmp.Ordered](value T) Ordered[T] {
	return Ordered[T]{value: value}
}

// Value returns the wrapped primitive value.
func (o Ordered[T]) Value() T {
	return o.value
}

// UpdateHash implements hashing.Hashable by delegating to the appropriate
// HashableX type based on the actual type of the value.
func (o Ordered[T]) UpdateHash(h hash.Hash) error { //nolint:varnamelen
	// Use type switch to delegate to the appropriate hashable type
	switch typedValue := any(o.value).(type) {
	case int:
		return hashing.HashableInt(typedValue).UpdateHash(h)
	case int8:
		return hashing.HashableInt64(typedValue).UpdateHash(h)
	case int16:
		return hashing.HashableInt64(typedValue).UpdateHash(h)
	case int32:
		return hashing.HashableInt32(typedValue).UpdateHash(h)
	case int64:
		return hashing.HashableInt64(typedValue).UpdateHash(h)
	case uint:
		return hashing.HashableUint(typedValue).UpdateHash(h)
	case uint8:
		return hashing.HashableUint64(typedValue).UpdateHash(h)
	case uint16:
		return hashing.HashableUint64(typedValue).UpdateHash(h)
	case uint32:
		return hashing.HashableUint32(typedValue).UpdateHash(h)
	case uint64:
		return hashing.HashableUint64(typedValue).UpdateHash(h)
	case float32:
		return hashing.HashableFloat64(typedValue).UpdateHash(h)
	case float64:
		return hashing.HashableFloat64(typedValue).UpdateHash(h)
	case string:
		return hashing.HashableString(typedValue).UpdateHash(h)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, typedValue)
	}
}

// LessThan implements sortable.Sortable by using cmp.Less, which follows the
// language's < operator (with NaN ordered before all other float values).
func (o Ordered[T]) LessThan(other Ordered[T]) bool {
	return cmp.Less(o.value, other.value)
}

// Equals implements compare.Comparable. Equality is derived from cmp.Compare
// rather than == so that it always agrees with LessThan, including for NaN.
func (o Ordered[T]) Equals(other Ordered[T]) bool {
	return cmp.Compare(o.value, other.value) == 0
}

// Compile-time checks that Ordered implements Key for representative types.
var (
	_ Key[Ordered[int]]    = Ordered[int]{}
	_ Key[Ordered[string]] = Ordered[string]{}
)
