// Package hashing defines the Hashable contract used by keyed containers and
// provides 64-bit digest functions over it. Containers that route keys to
// bucket slots with a bitmask need an integer digest, so the functions here
// produce uint64 values rather than printable strings.
package hashing

import (
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// Hash64 is a function that takes a Hashable object and returns a 64-bit
// digest of its contents. As an example, the XXHash64 function is a Hash64.
// This lets us talk about hashing functions in a generic way.
type Hash64 func(hashable Hashable) (uint64, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared or routed to
// hash-table buckets.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// XXHash64 returns the xxHash64 digest of the given Hashable.
// If the Hashable fails to update the hash, an error is returned.
func XXHash64(hashable Hashable) (uint64, error) {
	h := xxhash.New64()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// XXH3 returns the XXH3 digest of the given Hashable.
// XXH3 is faster than xxHash64 on short inputs; both produce
// well-distributed 64-bit values suitable for bucket routing.
func XXH3(hashable Hashable) (uint64, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))
	if err != nil {
		return err
	}

	return nil
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}
