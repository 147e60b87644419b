// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in sorted data structures.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides
// ready-to-use implementations for common primitive types: [Int], [Uint64],
// [String], and [NaturalString]. These types are designed to work with sorted
// collections such as the sorted-bucket map in
// [github.com/amp-labs/bucketmap/bucketmap].
//
// The Sortable interface extends [github.com/amp-labs/bucketmap/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// Equals and LessThan must agree: Equals(a, b) exactly when neither value
// sorts before the other. Sorted containers recognize keys through the order,
// so a disagreement between the two makes lookups undefined.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently
// thread-safe for read operations. Collections using these types may not be
// thread-safe and require external synchronization for concurrent access.
package sortable
