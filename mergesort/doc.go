// Package mergesort implements a generic, comparator-driven, stable merge
// sort over slices, together with an IsSorted verification predicate.
//
// 🚀 What is merge sort?
//
//	A divide-and-conquer sorting algorithm: split the sequence in half,
//	sort each half recursively, then merge the two sorted halves through
//	temporary buffers.  It is the classic choice when you need:
//	  • Guaranteed O(n log n) time on every input shape
//	  • Stability (equal elements keep their original relative order)
//	  • A comparison count that never degrades on adversarial inputs
//
// ✨ Key features:
//   - Sort for ordered types (natural ascending order)
//   - SortFunc for any element type under a caller-supplied relation
//   - SortPtr for C-style pointer/length buffers
//   - IsSorted / IsSortedFunc / IsSortedPtr read-only verification
//   - Ascending / Descending / Reverse comparator helpers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/msort/mergesort"
//
//	nums := []int{45, 12, 78, 22, 90, 5, 60}
//	mergesort.Sort(nums)
//	// nums is now [5 12 22 45 60 78 90]
//
//	people := []Person{...}
//	err := mergesort.SortFunc(people, func(a, b Person) bool {
//	  return a.Age < b.Age
//	})
//
// The ordering relation must be a strict weak ordering: irreflexive,
// asymmetric, transitive, with transitive incomparability.  A relation
// violating that contract yields an unspecified element order, but the
// algorithm stays memory-safe and terminates regardless.
//
// Performance:
//
//   - Time:   O(n log n) comparisons, worst case and best case alike
//   - Memory: O(n) transient scratch space per call, O(log n) recursion
//
// Concurrency: the package holds no shared state.  Concurrent calls on
// distinct slices are independently safe; concurrent mutation of the same
// slice is the caller's to serialize.
//
// See examples in example_test.go and the runnable demo under cmd/msort.
package mergesort
