// Package keyed defines the key contract for sorted, hash-routed containers.
//
// A key must be two things at once: hashable, so the container can route it
// to a bucket, and totally ordered, so the bucket can keep its entries
// sorted and locate keys with binary search. The [Key] interface combines
// the two contracts, and the package provides ready-made key types for
// common primitives along with the [From] adapter for any ordered type.
package keyed

import (
	"github.com/amp-labs/bucketmap/hashing"
	"github.com/amp-labs/bucketmap/sortable"
)

// Key is an interface that combines the Hashable and Sortable interfaces.
// This is useful for objects that need to be stored in a sorted-bucket map,
// where bucket routing is determined by the hash value and position within
// a bucket is determined by the total order.
//
// The order must agree with equality: Equals(a, b) exactly when neither
// a.LessThan(b) nor b.LessThan(a). Containers recognize keys through the
// order alone, so types violating this agreement produce undefined lookups.
type Key[T any] interface {
	hashing.Hashable
	sortable.Sortable[T]
}
