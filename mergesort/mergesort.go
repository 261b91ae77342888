package mergesort

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Merge sort — stable, comparator-driven, over slices.
//
// Algorithm Outline:
//  1. Recursive driver over inclusive bounds [low, high] into the slice:
//     if low < high, compute mid = low + (high-low)/2 (this form cannot
//     overflow, unlike (low+high)/2), recurse on [low, mid] and
//     [mid+1, high], then merge.  low >= high is the base case: a span of
//     zero or one elements is already sorted.
//  2. Merge of two adjacent sorted spans [low, mid] and [mid+1, high]:
//     copy each span into its own scratch buffer (n1 = mid-low+1,
//     n2 = high-mid), then repeatedly emit the smaller front element back
//     into the slice starting at low.  On ties the left buffer wins, which
//     is exactly what makes the merge stable.  Once one buffer drains, the
//     remainder of the other is copied through unchanged.
//
// Complexity:
//
//	Time   = O(n log n) comparisons, every input shape
//	Memory = O(n) scratch per call + O(log n) recursion depth
//
// The scratch buffers live for a single merge invocation and are never
// aliased with the caller's slice.  Allocation failure for scratch space
// surfaces as a runtime panic (Go's make does not report it); the library
// does not recover.
//
// Errors:
//   - ErrNilLess    — SortFunc/SortPtr with a nil relation and length > 1.
//   - ErrNilPointer — SortPtr with a nil pointer and nonzero length.

// Sort sorts s in place into natural ascending order.
// A nil, empty or single-element slice is a no-op.
func Sort[T constraints.Ordered](s []T) {
	if len(s) < 2 {
		return
	}
	sortSpan(s, 0, len(s)-1, Ascending[T]())
}

// SortFunc sorts s in place, ascending under less.
//
// The relation must be a strict weak ordering (see Less).  A nil, empty or
// single-element slice is a no-op and never errors; a nil relation for a
// longer slice returns ErrNilLess.
func SortFunc[T any](s []T, less Less[T]) error {
	if len(s) < 2 {
		return nil
	}
	if less == nil {
		return ErrNilLess
	}
	sortSpan(s, 0, len(s)-1, less)

	return nil
}

// SortPtr sorts the n elements starting at p, ascending under less.
//
// It is the pointer/length twin of SortFunc for C-style buffers (cgo,
// syscall results).  n == 0 is a no-op even for a nil pointer; a nil
// pointer with n > 0 returns ErrNilPointer before any dereference; n == 1
// is a no-op.  The caller guarantees that p addresses at least n elements.
func SortPtr[T any](p *T, n int, less Less[T]) error {
	if n == 0 {
		return nil
	}
	if p == nil {
		return ErrNilPointer
	}

	return SortFunc(unsafe.Slice(p, n), less)
}

// sortSpan recursively sorts s[low..high] (inclusive bounds) under less.
func sortSpan[T any](s []T, low, high int, less Less[T]) {
	if low >= high {
		return
	}
	mid := low + (high-low)/2 // overflow-safe midpoint
	sortSpan(s, low, mid, less)
	sortSpan(s, mid+1, high, less)
	merge(s, low, mid, high, less)
}

// merge combines the adjacent sorted spans s[low..mid] and s[mid+1..high]
// into one sorted span, using two scratch buffers.  Ties go to the left
// buffer, preserving the original relative order of equal elements.
func merge[T any](s []T, low, mid, high int, less Less[T]) {
	left := make([]T, mid-low+1)
	right := make([]T, high-mid)
	copy(left, s[low:mid+1])
	copy(right, s[mid+1:high+1])

	i, j, k := 0, 0, low
	for i < len(left) && j < len(right) {
		if !less(right[j], left[i]) {
			s[k] = left[i]
			i++
		} else {
			s[k] = right[j]
			j++
		}
		k++
	}
	// One buffer is drained; copy the remainder of the other through.
	for i < len(left) {
		s[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		s[k] = right[j]
		j++
		k++
	}
}
