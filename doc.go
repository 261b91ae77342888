// Package msort is a small, generic sorting toolkit built around a single,
// carefully specified algorithm: stable merge sort over slices.
//
// 🚀 What is msort?
//
//	A modern, dependency-light library that brings together:
//		• Generic entry points: natural order for ordered types, custom
//		  ordering relations for everything else
//		• A pointer/length entry point for C-style buffers
//		• A companion IsSorted predicate family for verification
//		• Comparator helpers: Ascending, Descending, Reverse
//
// ✨ Why choose msort?
//
//   - Stable by contract – equal elements keep their original relative order
//   - Predictable costs – O(n log n) comparisons, O(n) scratch space,
//     O(log n) recursion depth, on every input shape
//   - Pure Go core – no cgo, no global state
//   - Honest errors – sentinel errors for invalid arguments, nothing caught
//     or swallowed inside the library
//
// Everything lives under one subpackage:
//
//	mergesort/ — the sort itself (Sort, SortFunc, SortPtr) plus the
//	             IsSorted predicates and comparator helpers
//
// A runnable interactive demo ships as cmd/msort, and examples/ holds
// standalone walkthrough programs.
//
//	go get github.com/katalvlaran/msort/mergesort
package msort
