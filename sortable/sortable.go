// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/bucketmap/compare"
)

// Sortable describes types that carry a total order in addition to equality.
// The order must be consistent with equality: a.Equals(b) holds exactly when
// neither a.LessThan(b) nor b.LessThan(a). Sorted containers rely on this
// agreement to recognize keys through the order alone.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}
