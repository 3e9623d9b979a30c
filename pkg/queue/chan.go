package queue

var _ Queue[int] = (*Chan[int])(nil)

// Chan is a FIFO queue backed by a buffered channel. Its capacity is fixed
// at construction and it offers only the non-blocking surface; use Bounded
// when the bound must change at runtime or when callers need to block.
type Chan[T any] struct {
	ch chan T
}

// NewChan creates a channel-backed queue holding at most capacity items.
// A capacity below 1 is clamped to 1.
func NewChan[T any](capacity int) *Chan[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Chan[T]{ch: make(chan T, capacity)}
}

// TryPut adds an item without blocking. Returns false if the queue is full.
func (q *Chan[T]) TryPut(item T) bool {
	select {
	case q.ch <- item:
		return true
	default:
		return false
	}
}

// TryGet removes and returns an item without blocking.
// Returns (zero, false) if the queue is empty.
func (q *Chan[T]) TryGet() (T, bool) {
	select {
	case item := <-q.ch:
		return item, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the number of buffered items.
func (q *Chan[T]) Len() int { return len(q.ch) }

// Cap returns the queue capacity.
func (q *Chan[T]) Cap() int { return cap(q.ch) }
