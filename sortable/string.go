package sortable

import "facette.io/natsort"

// String is a sortable wrapper type for the built-in string type.
// Ordering is plain lexicographic byte order.
type String string

// Compile-time check that String implements Sortable[String].
var _ Sortable[String] = (*String)(nil)

// Equals returns true if this String has the same value as the other String.
func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan returns true if this String sorts lexicographically before the other String.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NaturalString is a sortable wrapper type for strings ordered naturally:
// embedded digit runs compare numerically, so "item2" sorts before "item10".
// Use it instead of String when keys carry numeric suffixes that should sort
// by magnitude rather than byte order. Distinct strings whose digit runs
// denote the same number (e.g. "a1" and "a01") are tie-broken by byte order,
// keeping the order strict and equality identical to byte equality.
type NaturalString string

// Compile-time check that NaturalString implements Sortable[NaturalString].
var _ Sortable[NaturalString] = (*NaturalString)(nil)

// Equals returns true if the two strings are byte-identical. Because
// LessThan tie-breaks natural-equal distinct strings by byte order,
// equality under the order coincides with byte equality.
func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// LessThan returns true if this string sorts naturally before the other.
// The result is a strict order: a string never sorts before itself, and for
// distinct strings exactly one direction holds. natsort.Compare alone does
// not guarantee that (it reports true in both directions for natural-equal
// strings), so ties fall back to byte order.
func (s NaturalString) LessThan(other NaturalString) bool {
	if string(s) == string(other) {
		return false
	}

	forward := natsort.Compare(string(s), string(other))
	if forward == natsort.Compare(string(other), string(s)) {
		// Natural-equal but distinct, e.g. "a1" and "a01".
		return string(s) < string(other)
	}

	return forward
}
