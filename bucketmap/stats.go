package bucketmap

import (
	"fmt"

	errors2 "github.com/amp-labs/bucketmap/errors"
)

// Stats is a snapshot of a map's structural counters. It is a plain value:
// reading it does not lock or mutate the map, and the fields describe the
// map at the moment Stats was called.
type Stats struct {
	// Entries is the number of key-value pairs stored.
	Entries int

	// Buckets is the current bucket count (always a power of two).
	Buckets int

	// Resizes is the number of times the bucket array has doubled since
	// construction.
	Resizes int64

	// MaxBucketLen is the length of the longest bucket.
	MaxBucketLen int

	// LoadFactor is the observed ratio of entries to buckets.
	LoadFactor float64
}

// Stats returns a snapshot of the map's structural counters.
func (m *sortedBucketMap[K, V]) Stats() Stats {
	maxLen := 0
	for _, bucket := range m.buckets {
		if len(bucket) > maxLen {
			maxLen = len(bucket)
		}
	}

	return Stats{
		Entries:      m.size,
		Buckets:      len(m.buckets),
		Resizes:      m.resizes.Load(),
		MaxBucketLen: maxLen,
		LoadFactor:   float64(m.size) / float64(len(m.buckets)),
	}
}

// CheckInvariants verifies the map's structural guarantees and reports every
// violation found, joined into a single error. A nil return means the
// structure is sound.
func (m *sortedBucketMap[K, V]) CheckInvariants() error {
	var violations errors2.Collection

	bucketCount := len(m.buckets)
	if bucketCount < 1 || bucketCount&(bucketCount-1) != 0 {
		violations.Add(fmt.Errorf("%w: bucket count %d is not a power of two",
			errors2.ErrInvariantViolated, bucketCount))
	}

	if m.mask != uint64(bucketCount-1) {
		violations.Add(fmt.Errorf("%w: mask %#x does not match bucket count %d",
			errors2.ErrInvariantViolated, m.mask, bucketCount))
	}

	total := 0

	for idx, bucket := range m.buckets {
		total += len(bucket)

		for pos, entry := range bucket {
			if pos > 0 && !bucket[pos-1].Key.LessThan(entry.Key) {
				violations.Add(fmt.Errorf("%w: bucket %d not strictly ascending at position %d",
					errors2.ErrInvariantViolated, idx, pos))
			}

			home, err := m.bucketIndex(entry.Key)
			if err != nil {
				violations.Add(err)

				continue
			}

			if home != idx {
				violations.Add(fmt.Errorf("%w: key in bucket %d hashes to bucket %d",
					errors2.ErrInvariantViolated, idx, home))
			}
		}
	}

	if total != m.size {
		violations.Add(fmt.Errorf("%w: size %d but bucket lengths sum to %d",
			errors2.ErrInvariantViolated, m.size, total))
	}

	return violations.GetError()
}
