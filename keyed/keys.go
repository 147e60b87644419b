package keyed

import (
	"hash"

	"github.com/amp-labs/bucketmap/hashing"
	"github.com/amp-labs/bucketmap/sortable"
)

// The named key types below are thin aliases over primitives that satisfy
// Key directly, without the indirection of the Ordered wrapper. Hashing
// delegates to the hashing package wrappers and ordering to the sortable
// package wrappers, so the two contracts stay in one place each.

// Int is an int key: numeric order, 64-bit-widened hash.
type Int int

var _ Key[Int] = Int(0)

func (i Int) UpdateHash(h hash.Hash) error {
	return hashing.HashableInt(i).UpdateHash(h)
}

func (i Int) LessThan(other Int) bool {
	return sortable.Int(i).LessThan(sortable.Int(other))
}

func (i Int) Equals(other Int) bool {
	return sortable.Int(i).Equals(sortable.Int(other))
}

// Uint64 is a uint64 key: numeric order, little-endian hash.
type Uint64 uint64

var _ Key[Uint64] = Uint64(0)

func (u Uint64) UpdateHash(h hash.Hash) error {
	return hashing.HashableUint64(u).UpdateHash(h)
}

func (u Uint64) LessThan(other Uint64) bool {
	return sortable.Uint64(u).LessThan(sortable.Uint64(other))
}

func (u Uint64) Equals(other Uint64) bool {
	return sortable.Uint64(u).Equals(sortable.Uint64(other))
}

// String is a string key ordered lexicographically.
type String string

var _ Key[String] = String("")

func (s String) UpdateHash(h hash.Hash) error {
	return hashing.HashableString(s).UpdateHash(h)
}

func (s String) LessThan(other String) bool {
	return sortable.String(s).LessThan(sortable.String(other))
}

func (s String) Equals(other String) bool {
	return sortable.String(s).Equals(sortable.String(other))
}

// NaturalString is a string key ordered naturally, so "item2" sorts before
// "item10". Distinct strings whose digit runs denote the same number (e.g.
// "a1" and "a01") are tie-broken by byte order, so equality under the order
// is byte equality and agrees with the byte-based hash: such strings are
// distinct keys that happen to sort adjacently.
type NaturalString string

var _ Key[NaturalString] = NaturalString("")

func (s NaturalString) UpdateHash(h hash.Hash) error {
	return hashing.HashableString(s).UpdateHash(h)
}

func (s NaturalString) LessThan(other NaturalString) bool {
	return sortable.NaturalString(s).LessThan(sortable.NaturalString(other))
}

func (s NaturalString) Equals(other NaturalString) bool {
	return sortable.NaturalString(s).Equals(sortable.NaturalString(other))
}
