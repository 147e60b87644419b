package hashing

import (
	"encoding/binary"
	"hash"
	"math"
)

// The HashableX types below wrap Go's primitive types so they satisfy the
// Hashable interface. Fixed-width values are written little-endian so that a
// given value always produces the same digest regardless of platform.

type HashableInt int

func (i HashableInt) UpdateHash(h hash.Hash) error {
	return HashableInt64(i).UpdateHash(h)
}

func (i HashableInt) Equals(other HashableInt) bool {
	return i == other
}

type HashableInt32 int32

func (i HashableInt32) UpdateHash(h hash.Hash) error {
	var buf [4]byte

	binary.LittleEndian.PutUint32(buf[:], uint32(i))

	_, err := h.Write(buf[:])

	return err
}

func (i HashableInt32) Equals(other HashableInt32) bool {
	return i == other
}

type HashableInt64 int64

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(i))

	_, err := h.Write(buf[:])

	return err
}

func (i HashableInt64) Equals(other HashableInt64) bool {
	return i == other
}

type HashableUint uint

func (u HashableUint) UpdateHash(h hash.Hash) error {
	return HashableUint64(u).UpdateHash(h)
}

func (u HashableUint) Equals(other HashableUint) bool {
	return u == other
}

type HashableUint32 uint32

func (u HashableUint32) UpdateHash(h hash.Hash) error {
	var buf [4]byte

	binary.LittleEndian.PutUint32(buf[:], uint32(u))

	_, err := h.Write(buf[:])

	return err
}

func (u HashableUint32) Equals(other HashableUint32) bool {
	return u == other
}

type HashableUint64 uint64

func (u HashableUint64) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(u))

	_, err := h.Write(buf[:])

	return err
}

func (u HashableUint64) Equals(other HashableUint64) bool {
	return u == other
}

type HashableFloat64 float64

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	return HashableUint64(math.Float64bits(float64(f))).UpdateHash(h)
}

func (f HashableFloat64) Equals(other HashableFloat64) bool {
	return f == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

func (b HashableBytes) Equals(other HashableBytes) bool {
	if len(b) != len(other) {
		return false
	}

	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}

	return true
}

type HashableBool bool

func (b HashableBool) UpdateHash(h hash.Hash) error {
	var buf [1]byte

	if b {
		buf[0] = 1
	}

	_, err := h.Write(buf[:])

	return err
}

func (b HashableBool) Equals(other HashableBool) bool {
	return b == other
}
