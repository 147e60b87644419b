package bucketmap

import (
	"fmt"
	"iter"
	"log/slog"
	"math/bits"

	"go.uber.org/atomic"

	"github.com/amp-labs/bucketmap/assert"
	errors2 "github.com/amp-labs/bucketmap/errors"
	"github.com/amp-labs/bucketmap/hashing"
	"github.com/amp-labs/bucketmap/keyed"
	"github.com/amp-labs/bucketmap/optional"
	"github.com/amp-labs/bucketmap/zero"
)

// New creates a sorted-bucket hash map configured by the given options.
// With no options the map starts with 8 buckets, grows past 4 entries per
// bucket, and routes keys with hashing.XXHash64.
//
// The returned map is not thread-safe. Concurrent access must be synchronized
// by the caller; see NewLocked.
//
// Example:
//
//	m, err := bucketmap.New[keyed.String, int](
//	    bucketmap.WithCapacity(64),
//	)
//	if err != nil { ... }
//	_ = m.Set("answer", 42)
func New[K keyed.Key[K], V any](opts ...Option) (Map[K, V], error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	m, err := newSortedBucketMap[K, V](options)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func newSortedBucketMap[K keyed.Key[K], V any](options Options) (*sortedBucketMap[K, V], error) {
	if options.capacity < 1 {
		return nil, fmt.Errorf("%w: %d (must be at least 1)", errors2.ErrInvalidCapacity, options.capacity)
	}

	if options.loadFactor < 1 {
		return nil, fmt.Errorf("%w: %d (must be at least 1)", errors2.ErrInvalidLoadFactor, options.loadFactor)
	}

	if options.hash == nil {
		options.hash = hashing.XXHash64
	}

	bucketCount := nextPowerOfTwo(options.capacity)

	return &sortedBucketMap[K, V]{
		hash:       options.hash,
		buckets:    make([][]KeyValuePair[K, V], bucketCount),
		mask:       uint64(bucketCount - 1),
		loadFactor: options.loadFactor,
		logger:     options.logger,
	}, nil
}

// sortedBucketMap is the concrete implementation of the Map interface.
// Each bucket is a slice of key-value pairs kept in strictly ascending key
// order, so lookups within a bucket binary-search instead of scanning.
//
// Structural invariants, restored after every public operation:
//   - len(buckets) is a power of two and mask == len(buckets)-1
//   - every stored key lives in buckets[hash(key)&mask]
//   - within a bucket, keys are strictly ascending (no duplicates)
//   - size is the sum of all bucket lengths
type sortedBucketMap[K keyed.Key[K], V any] struct {
	hash       hashing.Hash64
	buckets    [][]KeyValuePair[K, V]
	mask       uint64
	size       int
	loadFactor int
	logger     *slog.Logger

	// resizes counts bucket-array grows. It is atomic so a telemetry
	// collector can scrape it without synchronizing with the writer.
	resizes atomic.Int64
}

// nextPowerOfTwo rounds v up to the nearest power of two, minimum 1.
func nextPowerOfTwo(v int) int {
	if v <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(v-1))
}

// bucketIndex routes a key to its bucket. The bucket count is a power of
// two, so masking the hash replaces the modulus.
func (m *sortedBucketMap[K, V]) bucketIndex(key K) (int, error) {
	digest, err := m.hash(key)
	if err != nil {
		return 0, err
	}

	return int(digest & m.mask), nil
}

// searchBucket binary-searches a bucket for key, comparing keys only.
// It returns the position of the key if present, or the position where the
// key would be inserted to keep the bucket sorted. A key is "found" when
// neither it nor the candidate sorts before the other; no sentinel values
// are constructed and stored values are never compared.
func searchBucket[K keyed.Key[K], V any](bucket []KeyValuePair[K, V], key K) (int, bool) {
	low, high := 0, len(bucket)
	for low < high {
		mid := int(uint(low+high) >> 1)
		if bucket[mid].Key.LessThan(key) {
			low = mid + 1
		} else {
			high = mid
		}
	}

	if low < len(bucket) && !key.LessThan(bucket[low].Key) {
		return low, true
	}

	return low, false
}

// Set inserts or updates a key-value pair.
// An overwrite leaves the size and load factor untouched and never triggers
// a grow. A fresh insert shifts the bucket tail right by one and may grow
// the bucket array when the load-factor threshold is crossed.
func (m *sortedBucketMap[K, V]) Set(key K, value V) error {
	idx, err := m.bucketIndex(key)
	if err != nil {
		return err
	}

	bucket := m.buckets[idx]

	pos, found := searchBucket(bucket, key)
	if found {
		bucket[pos].Value = value

		return nil
	}

	bucket = append(bucket, KeyValuePair[K, V]{})
	copy(bucket[pos+1:], bucket[pos:])
	bucket[pos] = KeyValuePair[K, V]{Key: key, Value: value}

	m.buckets[idx] = bucket
	m.size++

	if m.size > len(m.buckets)*m.loadFactor {
		return m.grow()
	}

	return nil
}

// grow doubles the bucket count and redistributes every entry through the
// normal insertion path, which preserves the per-bucket sort for free.
// Capacity and mask move before re-insertion begins: with the doubled
// threshold already in place, no single re-insert can trigger another grow.
func (m *sortedBucketMap[K, V]) grow() error {
	old := m.buckets
	bucketCount := len(old) * 2

	assert.True(bucketCount&(bucketCount-1) == 0, "bucket count %d is not a power of two", bucketCount)

	m.buckets = make([][]KeyValuePair[K, V], bucketCount)
	m.mask = uint64(bucketCount - 1)
	m.size = 0

	for _, bucket := range old {
		for _, entry := range bucket {
			if err := m.Set(entry.Key, entry.Value); err != nil {
				return err
			}
		}
	}

	m.resizes.Inc()

	if m.logger != nil {
		m.logger.Debug("bucketmap grew",
			slog.Int("buckets", bucketCount),
			slog.Int("entries", m.size),
		)
	}

	return nil
}

// Get retrieves the value for the given key.
// Returns errors.ErrKeyNotFound if no entry with the key exists.
func (m *sortedBucketMap[K, V]) Get(key K) (V, error) {
	idx, err := m.bucketIndex(key)
	if err != nil {
		return zero.Value[V](), err
	}

	bucket := m.buckets[idx]

	pos, found := searchBucket(bucket, key)
	if !found {
		return zero.Value[V](), errors2.ErrKeyNotFound
	}

	return bucket[pos].Value, nil
}

// GetOrElse retrieves the value for the given key, or returns defaultValue
// if the key doesn't exist.
func (m *sortedBucketMap[K, V]) GetOrElse(key K, defaultValue V) (V, error) {
	value, err := m.Lookup(key)
	if err != nil {
		return zero.Value[V](), err
	}

	return value.GetOrElse(defaultValue), nil
}

// Lookup retrieves the value for the given key as an optional.Value.
func (m *sortedBucketMap[K, V]) Lookup(key K) (optional.Value[V], error) {
	idx, err := m.bucketIndex(key)
	if err != nil {
		return optional.None[V](), err
	}

	bucket := m.buckets[idx]

	pos, found := searchBucket(bucket, key)
	if !found {
		return optional.None[V](), nil
	}

	return optional.Some(bucket[pos].Value), nil
}

// Contains checks whether a key exists in the map.
func (m *sortedBucketMap[K, V]) Contains(key K) (bool, error) {
	idx, err := m.bucketIndex(key)
	if err != nil {
		return false, err
	}

	_, found := searchBucket(m.buckets[idx], key)

	return found, nil
}

// Len returns the number of entries currently stored.
func (m *sortedBucketMap[K, V]) Len() int {
	return m.size
}

// Seq returns an iterator over all entries, bucket by bucket, ascending by
// key within each bucket. The map must not be mutated during iteration.
func (m *sortedBucketMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for _, entry := range bucket {
				if !yield(entry.Key, entry.Value) {
					return
				}
			}
		}
	}
}

// Keys returns all keys in Seq order.
func (m *sortedBucketMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for key := range m.Seq() {
		keys = append(keys, key)
	}

	return keys
}

// ForEach applies the given function to each key-value pair.
func (m *sortedBucketMap[K, V]) ForEach(f func(key K, value V)) {
	for key, value := range m.Seq() {
		f(key, value)
	}
}

// ForAll tests whether a predicate holds for all entries.
func (m *sortedBucketMap[K, V]) ForAll(predicate func(key K, value V) bool) bool {
	for key, value := range m.Seq() {
		if !predicate(key, value) {
			return false
		}
	}

	return true
}

// Exists tests whether at least one entry satisfies the predicate.
func (m *sortedBucketMap[K, V]) Exists(predicate func(key K, value V) bool) bool {
	for key, value := range m.Seq() {
		if predicate(key, value) {
			return true
		}
	}

	return false
}

// FindFirst returns the first entry (in Seq order) satisfying the predicate.
func (m *sortedBucketMap[K, V]) FindFirst(
	predicate func(key K, value V) bool,
) optional.Value[KeyValuePair[K, V]] {
	for key, value := range m.Seq() {
		if predicate(key, value) {
			return optional.Some(KeyValuePair[K, V]{Key: key, Value: value})
		}
	}

	return optional.None[KeyValuePair[K, V]]()
}

// emptyLike creates a fresh map with this map's hash function, growth
// threshold, and logger, sized for roughly n entries.
func (m *sortedBucketMap[K, V]) emptyLike(n int) *sortedBucketMap[K, V] {
	capacity := defaultCapacity
	if n > 0 {
		capacity = nextPowerOfTwo(n / m.loadFactor)
	}

	result, err := newSortedBucketMap[K, V](Options{
		capacity:   capacity,
		loadFactor: m.loadFactor,
		hash:       m.hash,
		logger:     m.logger,
	})
	// Options derived from a live map are already validated.
	assert.True(err == nil, "emptyLike: %v", err)

	return result
}

// Filter creates a new map containing only entries for which the predicate
// returns true.
func (m *sortedBucketMap[K, V]) Filter(predicate func(key K, value V) bool) Map[K, V] {
	result := m.emptyLike(0)

	for key, value := range m.Seq() {
		if predicate(key, value) {
			_ = result.Set(key, value) // keys already hashed once; Set cannot fail here
		}
	}

	return result
}

// Clone creates a shallow copy of the map. If the receiver is nil, returns
// nil. The clone is independent: mutations to one map do not affect the
// other, though values are referenced as-is.
func (m *sortedBucketMap[K, V]) Clone() Map[K, V] {
	if m == nil {
		return nil
	}

	result := m.emptyLike(m.size)

	for key, value := range m.Seq() {
		_ = result.Set(key, value) // keys already hashed once; Set cannot fail here
	}

	return result
}

// HashFunction returns the hash function used by this map.
func (m *sortedBucketMap[K, V]) HashFunction() hashing.Hash64 {
	return m.hash
}
