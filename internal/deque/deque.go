// Package deque provides a generic double-ended queue backed by a growable
// ring buffer. Push and pop at either end are amortized O(1).
package deque

// Deque is not safe for concurrent use. The zero value is an empty deque
// ready to use.
type Deque[T any] struct {
	buf  []T
	head int // index of the front element
	n    int
}

// New returns an empty deque with room for capacity elements.
func New[T any](capacity int) *Deque[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Deque[T]{buf: make([]T, capacity)}
}

func (d *Deque[T]) Len() int { return d.n }

func (d *Deque[T]) Empty() bool { return d.n == 0 }

// PushBack appends v at the back.
func (d *Deque[T]) PushBack(v T) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.n)%len(d.buf)] = v
	d.n++
}

// PushFront inserts v at the front.
func (d *Deque[T]) PushFront(v T) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.n++
}

// PopFront removes and returns the oldest element. ok is false when empty.
func (d *Deque[T]) PopFront() (v T, ok bool) {
	if d.n == 0 {
		return v, false
	}
	var zero T
	v = d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.n--
	return v, true
}

// PopBack removes and returns the newest element. ok is false when empty.
func (d *Deque[T]) PopBack() (v T, ok bool) {
	if d.n == 0 {
		return v, false
	}
	var zero T
	i := (d.head + d.n - 1) % len(d.buf)
	v = d.buf[i]
	d.buf[i] = zero
	d.n--
	return v, true
}

// Front returns the oldest element without removing it.
func (d *Deque[T]) Front() (v T, ok bool) {
	if d.n == 0 {
		return v, false
	}
	return d.buf[d.head], true
}

// Back returns the newest element without removing it.
func (d *Deque[T]) Back() (v T, ok bool) {
	if d.n == 0 {
		return v, false
	}
	return d.buf[(d.head+d.n-1)%len(d.buf)], true
}

// At returns the i-th element counted from the front. It panics when i is
// out of range, like a slice index.
func (d *Deque[T]) At(i int) T {
	if i < 0 || i >= d.n {
		panic("deque: index out of range")
	}
	return d.buf[(d.head+i)%len(d.buf)]
}

// Clear removes all elements and keeps the allocated buffer.
func (d *Deque[T]) Clear() {
	var zero T
	for i := 0; i < d.n; i++ {
		d.buf[(d.head+i)%len(d.buf)] = zero
	}
	d.head, d.n = 0, 0
}

func (d *Deque[T]) grow() {
	size := len(d.buf) * 2
	if size == 0 {
		size = 8
	}
	buf := make([]T, size)
	for i := 0; i < d.n; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf, d.head = buf, 0
}
