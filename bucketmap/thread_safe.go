package bucketmap

import (
	"iter"
	"sync"

	"github.com/amp-labs/bucketmap/hashing"
	"github.com/amp-labs/bucketmap/keyed"
	"github.com/amp-labs/bucketmap/optional"
)

// NewLocked wraps an existing Map with thread-safe access using sync.RWMutex.
// It provides concurrent read/write access to the underlying map while
// preserving the Map interface.
//
// Read operations (Get, GetOrElse, Lookup, Contains, Len, Seq, Keys, ForEach,
// ForAll, Exists, FindFirst, Filter, Clone, Stats, CheckInvariants) share a
// read lock. Set acquires the exclusive lock: an insert may grow the map,
// which replaces the entire bucket array, so it can never run concurrently
// with a reader.
//
// Example:
//
//	unlocked, _ := bucketmap.New[keyed.Int, string]()
//	m := bucketmap.NewLocked(unlocked)
//	_ = m.Set(1, "one") // safe from any goroutine
func NewLocked[K keyed.Key[K], V any](m Map[K, V]) Map[K, V] {
	if m == nil {
		return nil
	}

	if locked, ok := m.(*lockedMap[K, V]); ok {
		// Already locked, return as-is
		return locked
	}

	return &lockedMap[K, V]{
		internal: m,
	}
}

// lockedMap is a decorator that wraps any Map implementation with
// lock-protected access. It uses sync.RWMutex to coordinate concurrent
// access, allowing multiple simultaneous readers or a single exclusive
// writer.
type lockedMap[K keyed.Key[K], V any] struct {
	mutex    sync.RWMutex
	internal Map[K, V]
}

// Set inserts or updates a key-value pair under the exclusive lock.
func (t *lockedMap[K, V]) Set(key K, value V) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Set(key, value)
}

// Get retrieves the value for the given key under a shared read lock.
func (t *lockedMap[K, V]) Get(key K) (V, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Get(key)
}

// GetOrElse retrieves the value for the given key, or the default, under a
// shared read lock.
func (t *lockedMap[K, V]) GetOrElse(key K, defaultValue V) (V, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.GetOrElse(key, defaultValue)
}

// Lookup retrieves the value as an optional.Value under a shared read lock.
func (t *lockedMap[K, V]) Lookup(key K) (optional.Value[V], error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Lookup(key)
}

// Contains checks if a key exists under a shared read lock.
func (t *lockedMap[K, V]) Contains(key K) (bool, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Contains(key)
}

// Len returns the number of entries under a shared read lock.
func (t *lockedMap[K, V]) Len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Len()
}

// Seq returns an iterator with snapshot semantics: the entries are copied
// under the read lock, then iterated with no lock held. This keeps the lock
// short-lived and gives the caller a consistent view of the map as of the
// Seq call, at the cost of O(n) memory for the snapshot.
func (t *lockedMap[K, V]) Seq() iter.Seq2[K, V] {
	t.mutex.RLock()

	snapshot := make([]KeyValuePair[K, V], 0, t.internal.Len())
	for key, value := range t.internal.Seq() {
		snapshot = append(snapshot, KeyValuePair[K, V]{Key: key, Value: value})
	}

	t.mutex.RUnlock()

	return func(yield func(K, V) bool) {
		for _, entry := range snapshot {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// Keys returns all keys under a shared read lock.
func (t *lockedMap[K, V]) Keys() []K {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Keys()
}

// ForEach applies f to a snapshot of the map's entries.
// The callback runs without the lock held, so it may safely call back into
// the map.
func (t *lockedMap[K, V]) ForEach(f func(key K, value V)) {
	for key, value := range t.Seq() {
		f(key, value)
	}
}

// ForAll tests the predicate against a snapshot of the map's entries.
func (t *lockedMap[K, V]) ForAll(predicate func(key K, value V) bool) bool {
	for key, value := range t.Seq() {
		if !predicate(key, value) {
			return false
		}
	}

	return true
}

// Exists tests the predicate against a snapshot of the map's entries.
func (t *lockedMap[K, V]) Exists(predicate func(key K, value V) bool) bool {
	for key, value := range t.Seq() {
		if predicate(key, value) {
			return true
		}
	}

	return false
}

// FindFirst searches a snapshot of the map's entries.
func (t *lockedMap[K, V]) FindFirst(
	predicate func(key K, value V) bool,
) optional.Value[KeyValuePair[K, V]] {
	for key, value := range t.Seq() {
		if predicate(key, value) {
			return optional.Some(KeyValuePair[K, V]{Key: key, Value: value})
		}
	}

	return optional.None[KeyValuePair[K, V]]()
}

// Filter builds the filtered map under a shared read lock and returns it
// wrapped in its own lock.
func (t *lockedMap[K, V]) Filter(predicate func(key K, value V) bool) Map[K, V] {
	t.mutex.RLock()
	filtered := t.internal.Filter(predicate)
	t.mutex.RUnlock()

	return NewLocked(filtered)
}

// Clone copies the map under a shared read lock and returns the copy wrapped
// in its own lock.
func (t *lockedMap[K, V]) Clone() Map[K, V] {
	t.mutex.RLock()
	cloned := t.internal.Clone()
	t.mutex.RUnlock()

	return NewLocked(cloned)
}

// Stats returns the underlying map's counters under a shared read lock.
func (t *lockedMap[K, V]) Stats() Stats {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Stats()
}

// HashFunction returns the underlying map's hash function.
func (t *lockedMap[K, V]) HashFunction() hashing.Hash64 {
	return t.internal.HashFunction()
}

// CheckInvariants verifies the underlying map under a shared read lock.
func (t *lockedMap[K, V]) CheckInvariants() error {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.CheckInvariants()
}
