// Package errors defines the error taxonomy shared by the bucketmap
// packages, along with a small utility for accumulating multiple errors.
package errors

import "errors"

var (
	// ErrKeyNotFound is returned by lookup operations when no entry with the
	// requested key exists. It is recoverable by the caller and is never
	// returned by write or containment checks.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidCapacity is returned at construction time when the requested
	// initial capacity is not positive. A zero-bucket table would make the
	// index mask invalid, so capacity is rejected rather than clamped silently.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrInvalidLoadFactor is returned at construction time when the growth
	// threshold is configured below one entry per bucket.
	ErrInvalidLoadFactor = errors.New("invalid load factor")

	// ErrInvariantViolated is returned by invariant checks when the internal
	// structure of a container no longer matches its documented guarantees.
	ErrInvariantViolated = errors.New("invariant violated")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as
// a single combined error. Invariant checks use it to report every violation
// they find rather than stopping at the first one.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
