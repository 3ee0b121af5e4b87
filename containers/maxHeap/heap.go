package maxHeap

import (
	"golang.org/x/exp/constraints"
)

// MaxHeap keeps its elements in a slice ordered so that every parent is >=
// both of its children. Index 0 is the root and holds the maximum. The slice
// is always contiguous: node i has its parent at (i-1)/2 and its children at
// 2i+1 and 2i+2, children existing only while their index < Len().
//
// Not safe for concurrent use. Float element types holding NaN have
// undefined ordering.
type MaxHeap[T constraints.Ordered] struct {
	data []T
}

// New creates an empty heap.
func New[T constraints.Ordered]() *MaxHeap[T] {
	return &MaxHeap[T]{}
}

// FromSlice builds a heap over s in place, taking ownership of it.
// Heapifies bottom to top in O(n), which beats inserting one at a time.
func FromSlice[T constraints.Ordered](s []T) *MaxHeap[T] {
	h := &MaxHeap[T]{data: s}
	for i := len(s)/2 - 1; i >= 0; i-- {
		h.down(i, len(s))
	}
	return h
}

// Len returns the number of elements held.
func (h *MaxHeap[T]) Len() int {
	return len(h.data)
}

// IsEmpty reports whether the heap holds no elements.
func (h *MaxHeap[T]) IsEmpty() bool {
	return len(h.data) == 0
}

// Insert adds v and restores the heap property. O(log n).
func (h *MaxHeap[T]) Insert(v T) {
	h.data = append(h.data, v)
	h.up(len(h.data) - 1)
}

// Peek returns the maximum without removing it.
// The second result is false when the heap is empty.
func (h *MaxHeap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// ExtractMax removes and returns the maximum, restoring the heap property.
// The second result is false when the heap is empty. O(log n).
func (h *MaxHeap[T]) ExtractMax() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}

	n := len(h.data) - 1
	max := h.data[0]
	h.data[0] = h.data[n]
	h.data = h.data[:n]
	if n > 0 {
		h.down(0, n)
	}
	return max, true
}

// At returns the element at index i, false if i is out of range.
func (h *MaxHeap[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(h.data) {
		var zero T
		return zero, false
	}
	return h.data[i], true
}

// Parent returns the parent of the element at index i.
// The root has no parent.
func (h *MaxHeap[T]) Parent(i int) (T, bool) {
	if i <= 0 || i >= len(h.data) {
		var zero T
		return zero, false
	}
	return h.data[(i-1)/2], true
}

// Left returns the left child of the element at index i.
func (h *MaxHeap[T]) Left(i int) (T, bool) {
	return h.At(2*i + 1)
}

// Right returns the right child of the element at index i.
func (h *MaxHeap[T]) Right(i int) (T, bool) {
	return h.At(2*i + 2)
}

// up moves the element at index i toward the root while it exceeds its
// parent. No swaps happen if the heap property already holds at i.
func (h *MaxHeap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.data[i] <= h.data[parent] {
			break
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// down moves the element at index i toward the leaves while a child exceeds
// it, considering only the first n elements. No swaps happen if the heap
// property already holds at i.
func (h *MaxHeap[T]) down(i, n int) {
	for {
		var (
			largest = i
			left    = 2*i + 1
			right   = 2*i + 2
		)

		// find largest value
		if left < n && h.data[left] > h.data[largest] {
			largest = left
		}
		if right < n && h.data[right] > h.data[largest] {
			largest = right
		}

		// no swap needed, heap property holds here
		if largest == i {
			return
		}
		h.data[i], h.data[largest] = h.data[largest], h.data[i]
		i = largest
	}
}
