package mergesort_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/msort/mergesort"
)

// benchmarkMergeSort is a helper that sorts a fresh copy of src on every
// iteration.  It resets the timer after building the input and fails on
// unexpected errors.
func benchmarkMergeSort(b *testing.B, src []int) {
	dst := make([]int, len(src))

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		copy(dst, src)
		if err := mergesort.SortFunc(dst, mergesort.Ascending[int]()); err != nil {
			b.Fatalf("SortFunc failed: %v", err)
		}
	}
}

// randomInts builds a reproducible pseudo-random input of length n.
func randomInts(n int) []int {
	rng := rand.New(rand.NewSource(1))
	s := make([]int, n)
	for i := range s {
		s[i] = rng.Intn(10_000)
	}

	return s
}

// BenchmarkMergeSort_RandomSmall benchmarks 1 000 random elements.
func BenchmarkMergeSort_RandomSmall(b *testing.B) {
	benchmarkMergeSort(b, randomInts(1_000))
}

// BenchmarkMergeSort_RandomMedium benchmarks 10 000 random elements.
func BenchmarkMergeSort_RandomMedium(b *testing.B) {
	benchmarkMergeSort(b, randomInts(10_000))
}

// BenchmarkMergeSort_RandomLarge benchmarks 100 000 random elements.
func BenchmarkMergeSort_RandomLarge(b *testing.B) {
	benchmarkMergeSort(b, randomInts(100_000))
}

// BenchmarkMergeSort_AlreadySorted benchmarks the best-shaped input; merge
// sort still pays its full O(n log n) comparisons.
func BenchmarkMergeSort_AlreadySorted(b *testing.B) {
	src := make([]int, 10_000)
	for i := range src {
		src[i] = i
	}
	benchmarkMergeSort(b, src)
}

// BenchmarkMergeSort_ReverseSorted benchmarks the fully inverted input.
func BenchmarkMergeSort_ReverseSorted(b *testing.B) {
	src := make([]int, 10_000)
	for i := range src {
		src[i] = len(src) - i
	}
	benchmarkMergeSort(b, src)
}

// BenchmarkIsSorted_Large benchmarks the verification predicate alone.
func BenchmarkIsSorted_Large(b *testing.B) {
	src := make([]int, 100_000)
	for i := range src {
		src[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !mergesort.IsSorted(src) {
			b.Fatal("sorted input reported unsorted")
		}
	}
}
