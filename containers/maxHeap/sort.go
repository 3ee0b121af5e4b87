package maxHeap

import (
	"golang.org/x/exp/constraints"
)

// Heapsort sorts s in place into ascending order and returns it. It heapifies
// the whole slice, then repeatedly swaps the root to the tail of a shrinking
// active region and sifts the new root down. O(n log n) time, O(1) auxiliary
// space. Not stable.
func Heapsort[T constraints.Ordered](s []T) []T {
	h := FromSlice(s)
	for n := len(s) - 1; n > 0; n-- {
		s[0], s[n] = s[n], s[0]
		h.down(0, n)
	}
	return s
}

// TopK returns the k largest elements of s in descending order. s is left
// untouched. k above len(s) is clamped; k <= 0 yields an empty result.
func TopK[T constraints.Ordered](s []T, k int) []T {
	if k > len(s) {
		k = len(s)
	}
	if k <= 0 {
		return []T{}
	}

	h := FromSlice(append([]T(nil), s...))
	top := make([]T, 0, k)
	for i := 0; i < k; i++ {
		v, _ := h.ExtractMax()
		top = append(top, v)
	}
	return top
}
