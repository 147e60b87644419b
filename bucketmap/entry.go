package bucketmap

import "github.com/amp-labs/bucketmap/keyed"

// KeyValuePair is a generic key-value pair struct used to represent entries
// in the map. Buckets store these pairs in strictly ascending key order, and
// FindFirst returns one to hand back both halves of a matching entry.
//
// The Key must implement the keyed.Key interface (hashable and totally
// ordered), while the Value can be any type.
type KeyValuePair[K keyed.Key[K], V any] struct {
	Key   K
	Value V
}
