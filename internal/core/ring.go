package core

// Ring is a fixed-capacity FIFO backed by a circular buffer.
// Push appends at the back, PopFront removes from the front; both are O(1).
// Indexing is relative to the front, so At(0) is always the oldest element.
// Not safe for concurrent use.
type Ring[T any] struct {
	items []T
	head  int // Index of the front element
	size  int
}

// NewRing creates an empty ring holding at most capacity elements.
// A non-positive capacity yields a ring that rejects every push.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring[T]{items: make([]T, capacity)}
}

// Len returns the number of stored elements.
func (r *Ring[T]) Len() int {
	return r.size
}

// Cap returns the maximum number of elements.
func (r *Ring[T]) Cap() int {
	return len(r.items)
}

// Empty reports whether the ring holds no elements.
func (r *Ring[T]) Empty() bool {
	return r.size == 0
}

// Full reports whether a push would be rejected.
func (r *Ring[T]) Full() bool {
	return r.size == len(r.items)
}

// Push appends v at the back. Returns false, leaving the ring untouched, when full.
func (r *Ring[T]) Push(v T) bool {
	if r.Full() {
		return false
	}
	r.items[r.index(r.size)] = v
	r.size++
	return true
}

// PopFront removes and returns the oldest element.
func (r *Ring[T]) PopFront() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	v := r.items[r.head]
	r.items[r.head] = zero
	r.head = (r.head + 1) % len(r.items)
	r.size--
	return v, true
}

// Front returns the oldest element without removing it.
func (r *Ring[T]) Front() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}
	return r.items[r.head], true
}

// Back returns the newest element without removing it.
func (r *Ring[T]) Back() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}
	return r.items[r.index(r.size-1)], true
}

// At returns the i-th element counting from the front.
// Panics if i is out of range, like slice indexing.
func (r *Ring[T]) At(i int) T {
	return *r.Ptr(i)
}

// Ptr returns a pointer to the i-th element for in-place updates.
// The pointer is invalidated by the next Push or PopFront that reuses the slot.
func (r *Ring[T]) Ptr(i int) *T {
	if i < 0 || i >= r.size {
		panic("core: ring index out of range")
	}
	return &r.items[r.index(i)]
}

// AppendTo appends the elements in front-to-back order to dst and returns it.
func (r *Ring[T]) AppendTo(dst []T) []T {
	for i := 0; i < r.size; i++ {
		dst = append(dst, r.items[r.index(i)])
	}
	return dst
}

// Clear removes all elements, keeping the allocated storage.
func (r *Ring[T]) Clear() {
	var zero T
	for i := range r.items {
		r.items[i] = zero
	}
	r.head = 0
	r.size = 0
}

func (r *Ring[T]) index(i int) int {
	return (r.head + i) % len(r.items)
}
