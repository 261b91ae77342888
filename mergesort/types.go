// Package mergesort type definitions: the ordering relation, comparator
// helpers, and sentinel errors shared by all entry points.
package mergesort

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the sorting entry points.
var (
	// ErrNilPointer indicates that SortPtr received a nil pointer together
	// with a nonzero length.
	ErrNilPointer = errors.New("mergesort: nil pointer with nonzero length")

	// ErrNilLess indicates that a nil ordering relation was supplied for a
	// sequence that actually requires comparisons (length > 1).
	ErrNilLess = errors.New("mergesort: ordering relation is nil")
)

// Less reports whether a is ordered before b.
//
// It must implement a strict weak ordering:
//   - irreflexive:  Less(a, a) is false
//   - asymmetric:   Less(a, b) implies !Less(b, a)
//   - transitive:   Less(a, b) && Less(b, c) implies Less(a, c)
//   - the induced equivalence ("neither less than the other") is transitive
//
// Sorting under a relation that breaks this contract produces an
// unspecified (but memory-safe) element order.
type Less[T any] func(a, b T) bool

// Ascending returns the natural ascending order for an ordered type.
func Ascending[T constraints.Ordered]() Less[T] {
	return func(a, b T) bool { return a < b }
}

// Descending returns the natural descending order for an ordered type.
func Descending[T constraints.Ordered]() Less[T] {
	return func(a, b T) bool { return b < a }
}

// Reverse returns a relation ordering elements opposite to less.
// Reverse(nil) is nil.
func Reverse[T any](less Less[T]) Less[T] {
	if less == nil {
		return nil
	}

	return func(a, b T) bool { return less(b, a) }
}
