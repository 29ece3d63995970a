package core

// Ring is a fixed-capacity circular buffer that overwrites the oldest slot when full
// head indexes the most recently written slot; live slots are the length entries ending at head
type Ring[T any] struct {
	buf    []T
	head   int
	length int
}

// NewRing allocates a ring with the given capacity, negative treated as zero
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring[T]{
		buf:  make([]T, capacity),
		head: capacity - 1,
	}
}

func (r *Ring[T]) Cap() int { return len(r.buf) }

func (r *Ring[T]) Len() int { return r.length }

// Head returns the slot index of the newest element
func (r *Ring[T]) Head() int {
	if r.head < 0 {
		return 0
	}
	return r.head
}

// Push writes v after head, overwriting the oldest element at capacity
// Returns false when the ring has zero capacity
func (r *Ring[T]) Push(v T) bool {
	n := len(r.buf)
	if n == 0 {
		return false
	}
	r.head = (r.head + 1) % n
	r.buf[r.head] = v
	if r.length < n {
		r.length++
	}
	return true
}

// Fill sets every slot to v with v as the only live element at slot 0
func (r *Ring[T]) Fill(v T) {
	if len(r.buf) == 0 {
		return
	}
	for i := range r.buf {
		r.buf[i] = v
	}
	r.head = 0
	r.length = 1
}

// Newest returns the i-th newest element, 0 is the most recent
func (r *Ring[T]) Newest(i int) (T, bool) {
	var zero T
	if i < 0 || i >= r.length {
		return zero, false
	}
	n := len(r.buf)
	return r.buf[(r.head-i+n)%n], true
}

// oldestSlot returns the slot index of the oldest live element
func (r *Ring[T]) oldestSlot() int {
	n := len(r.buf)
	return (r.head - r.length + 1 + n) % n
}

// Each visits live elements oldest first, allowing in-place mutation
func (r *Ring[T]) Each(fn func(*T)) {
	if r.length == 0 {
		return
	}
	n := len(r.buf)
	start := r.oldestSlot()
	for i := 0; i < r.length; i++ {
		fn(&r.buf[(start+i)%n])
	}
}

// Retain drops elements for which keep returns false
// Survivors are compacted oldest first into slots 0..len-1 and head is clamped onto the newest survivor
func (r *Ring[T]) Retain(keep func(*T) bool) {
	if r.length == 0 {
		return
	}
	n := len(r.buf)
	start := r.oldestSlot()

	// Linearize before filtering so order survives wrap-around
	tmp := make([]T, 0, r.length)
	for i := 0; i < r.length; i++ {
		tmp = append(tmp, r.buf[(start+i)%n])
	}

	kept := 0
	var zero T
	for i := range tmp {
		if keep(&tmp[i]) {
			r.buf[kept] = tmp[i]
			kept++
		}
	}
	for i := kept; i < n; i++ {
		r.buf[i] = zero
	}

	r.length = kept
	if kept == 0 {
		r.head = n - 1
	} else {
		r.head = kept - 1
	}
}

// AppendTo appends live elements oldest first to dst
func (r *Ring[T]) AppendTo(dst []T) []T {
	if r.length == 0 {
		return dst
	}
	n := len(r.buf)
	start := r.oldestSlot()
	for i := 0; i < r.length; i++ {
		dst = append(dst, r.buf[(start+i)%n])
	}
	return dst
}

// CopyRaw copies the backing slots into dst and returns head and length
// Consumers walk back from head for length slots, as the trail renderer does
func (r *Ring[T]) CopyRaw(dst []T) (head, length int) {
	copy(dst, r.buf)
	return r.Head(), r.length
}

// Clear drops all elements without touching capacity
func (r *Ring[T]) Clear() {
	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	r.head = len(r.buf) - 1
	r.length = 0
}
