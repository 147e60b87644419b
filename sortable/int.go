package sortable

// Int is a sortable wrapper type for the built-in int type.
// It implements the Sortable[Int] interface, allowing integers to be used
// as keys in sorted data structures.
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Uint64 is a sortable wrapper type for the built-in uint64 type.
// It implements the Sortable[Uint64] interface.
type Uint64 uint64

// Compile-time check that Uint64 implements Sortable[Uint64].
var _ Sortable[Uint64] = (*Uint64)(nil)

// Equals returns true if this Uint64 has the same value as the other Uint64.
func (u Uint64) Equals(other Uint64) bool {
	return uint64(u) == uint64(other)
}

// LessThan returns true if this Uint64 is numerically less than the other Uint64.
func (u Uint64) LessThan(other Uint64) bool {
	return uint64(u) < uint64(other)
}
