package mergesort

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// IsSorted reports whether s is in natural ascending order.
// A nil, empty or single-element slice is trivially sorted.
func IsSorted[T constraints.Ordered](s []T) bool {
	return IsSortedFunc(s, Ascending[T]())
}

// IsSortedFunc reports whether s is ascending under less: true iff no
// adjacent pair (i, i+1) has less(s[i+1], s[i]).  The check is read-only.
//
// A nil relation for a slice longer than one element is a contract
// violation; IsSortedFunc reports false rather than crash.
func IsSortedFunc[T any](s []T, less Less[T]) bool {
	if len(s) < 2 {
		return true
	}
	if less == nil {
		return false
	}
	for i := 0; i+1 < len(s); i++ {
		if less(s[i+1], s[i]) {
			return false
		}
	}

	return true
}

// IsSortedPtr reports whether the n elements starting at p are ascending
// under less.  A nil pointer or n <= 1 is trivially sorted; the pointer is
// never dereferenced in that case.
func IsSortedPtr[T any](p *T, n int, less Less[T]) bool {
	if p == nil || n < 2 {
		return true
	}

	return IsSortedFunc(unsafe.Slice(p, n), less)
}
