package queue

const minRingCap = 8

// ring is a growable power-of-two circular buffer used as the backing
// store of Bounded. It is NOT thread-safe; Bounded serializes access.
//
// Storage grows independently of the queue's capacity bound: the bound is
// mutable at runtime and defaults to unbounded, so the ring only allocates
// for what is actually buffered.
type ring[T any] struct {
	buf  []T
	head int // next position to pop from
	size int
}

// push appends v at the tail, growing the buffer when full.
func (r *ring[T]) push(v T) {
	if r.size == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.size)&(len(r.buf)-1)] = v
	r.size++
}

// pop removes and returns the head element. The vacated slot is zeroed so
// the ring does not retain a reference to a value already handed off.
func (r *ring[T]) pop() T {
	var zero T
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) & (len(r.buf) - 1)
	r.size--
	return v
}

func (r *ring[T]) len() int { return r.size }

// grow doubles the buffer and re-packs elements starting at index 0.
func (r *ring[T]) grow() {
	newCap := ceilToPowerOfTwo(len(r.buf) * 2)
	if newCap < minRingCap {
		newCap = minRingCap
	}

	newBuf := make([]T, newCap)
	for i := 0; i < r.size; i++ {
		newBuf[i] = r.buf[(r.head+i)&(len(r.buf)-1)]
	}
	r.buf = newBuf
	r.head = 0
}

// ceilToPowerOfTwo returns n if it is a power-of-two, otherwise the
// next-highest power-of-two.
func ceilToPowerOfTwo(n int) int {
	if n <= 2 {
		return 2
	}

	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++

	return n
}
