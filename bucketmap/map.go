// Package bucketmap provides a hash map whose collision buckets are kept in
// sorted key order, so intra-bucket lookup uses binary search instead of a
// linear scan. Keys are routed to buckets with a bitmask over a 64-bit hash,
// the bucket count is always a power of two, and the table doubles in size
// when the load factor crosses a configurable threshold.
//
// The trade is a small amount of insertion cost (maintaining sort order) for
// a faster worst-case lookup inside a bucket: O(log m) where m is the bucket
// length, instead of O(m).
package bucketmap

import (
	"iter"

	"github.com/amp-labs/bucketmap/hashing"
	"github.com/amp-labs/bucketmap/keyed"
	"github.com/amp-labs/bucketmap/optional"
)

// Map is a generic sorted-bucket hash map for storing key-value pairs where
// keys must be both hashable and totally ordered. Keys must implement the
// keyed.Key interface: the hash routes a key to a bucket, and the order
// locates it within the bucket. Within a bucket, two keys are considered the
// same when neither sorts before the other, so the key type's Equals and
// LessThan must agree.
//
// There is no removal operation: an entry is only ever replaced by a Set
// with the same key. Callers needing deletion must layer it on top.
//
// Thread-safety: implementations are not thread-safe unless explicitly
// documented. Concurrent access must be synchronized by the caller; see
// NewLocked for a ready-made wrapper.
//
//nolint:interfacebloat // Map intentionally mirrors the full container surface
type Map[K keyed.Key[K], V any] interface {
	// Set inserts or updates a key-value pair in the map.
	// If the key already exists, its value is replaced and the map's size is
	// unchanged. A successful insert may grow the bucket array as a side
	// effect; all entries remain retrievable afterwards.
	// The only possible error is a failure of the hash function, which is a
	// programming error in the key type and is propagated unmasked.
	Set(key K, value V) error

	// Get retrieves the value for the given key.
	// Returns errors.ErrKeyNotFound if no entry with the key exists.
	// Get has no side effects; the map is unchanged even on failure.
	Get(key K) (V, error)

	// GetOrElse retrieves the value for the given key, or returns
	// defaultValue if the key doesn't exist.
	GetOrElse(key K, defaultValue V) (V, error)

	// Lookup retrieves the value for the given key as an optional.Value:
	// Some(value) when present, None when absent. Use this instead of Get
	// when an absent key is an expected case rather than an error.
	Lookup(key K) (optional.Value[V], error)

	// Contains checks if the given key exists in the map.
	// Returns true if the key exists, false otherwise. No side effects.
	Contains(key K) (bool, error)

	// Len returns the number of key-value pairs currently stored in the map.
	// This is an O(1) operation.
	Len() int

	// Seq returns an iterator for ranging over all key-value pairs.
	// Entries are yielded bucket by bucket, in ascending key order within
	// each bucket; no ordering across buckets is guaranteed, and the overall
	// order changes when the map grows. Compatible with Go 1.23+
	// range-over-func syntax: for key, value := range m.Seq() { ... }
	Seq() iter.Seq2[K, V]

	// Keys returns all keys in the map, in the same order Seq yields them.
	Keys() []K

	// ForEach applies the given function to each key-value pair in the map.
	// Used for side effects only; does not return a value.
	ForEach(f func(key K, value V))

	// ForAll tests whether a predicate holds for all key-value pairs.
	// Returns true if the predicate returns true for all entries.
	// Iteration stops early if the predicate returns false for any entry.
	ForAll(predicate func(key K, value V) bool) bool

	// Exists tests whether at least one key-value pair satisfies the
	// predicate. Iteration stops early as soon as a match is found.
	Exists(predicate func(key K, value V) bool) bool

	// FindFirst searches for the first key-value pair that satisfies the
	// given predicate. Returns Some(KeyValuePair) if a matching entry is
	// found, None otherwise. "First" follows the Seq order, which is not
	// stable across grows.
	FindFirst(predicate func(key K, value V) bool) optional.Value[KeyValuePair[K, V]]

	// Filter creates a new map containing only the key-value pairs for which
	// the predicate returns true. The new map uses the same hash function
	// and growth threshold as this one.
	Filter(predicate func(key K, value V) bool) Map[K, V]

	// Clone creates a shallow copy of the map. The keys and values are not
	// deep-copied; they are referenced as-is in the new map.
	Clone() Map[K, V]

	// Stats returns a snapshot of the map's structural counters: entry and
	// bucket counts, resize count, and bucket-length distribution.
	Stats() Stats

	// HashFunction returns the hash function used by this map.
	// This allows callers to create compatible maps that route keys the same
	// way, or to inspect the hashing strategy when debugging distribution.
	HashFunction() hashing.Hash64

	// CheckInvariants verifies the map's structural guarantees: power-of-two
	// bucket count, correct mask, strictly ascending keys within each bucket,
	// every key residing in the bucket its hash selects, and a size equal to
	// the sum of bucket lengths. All violations found are reported together.
	// Intended for tests and debugging; cost is O(n log n) over all entries.
	CheckInvariants() error
}
