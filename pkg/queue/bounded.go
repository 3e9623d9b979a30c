package queue

import (
	"context"
	"math"
	"sync"
	"time"
)

var _ Queue[int] = (*Bounded[int])(nil)

// MaxCapacity is the capacity of an unbounded queue. A queue with this
// capacity never blocks producers in practice; it is limited only by
// available memory.
const MaxCapacity = math.MaxInt

// Bounded is a thread-safe FIFO queue for inter-goroutine hand-off with a
// soft, mutable capacity bound. It is a classic monitor: one mutex guards
// the buffer and the bound, and two condition variables coordinate
// state-dependent blocking ("not empty" for consumers, "not full" for
// producers).
//
// Put and Get block until progress is possible; TryPut and TryGet never
// block; PutContext/GetContext and PutTimeout/GetTimeout bound the wait.
// Any number of producer and consumer goroutines may share one queue with
// no external locking.
//
// Values are handed off, not copied: once removed, the queue retains no
// reference to an item, so element types holding large or pooled state do
// not linger in dead buffer slots.
type Bounded[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond
	buf      ring[T]
	capacity int
}

// NewUnbounded creates a queue whose capacity is MaxCapacity.
// Producers never block; only consumers wait.
func NewUnbounded[T any]() *Bounded[T] {
	return NewBounded[T](MaxCapacity)
}

// NewBounded creates a queue holding at most capacity items.
// A capacity below 1 is clamped to 1 rather than rejected, so the zero and
// negative cases yield a rendezvous-sized queue instead of an error.
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity < 1 {
		capacity = 1
	}

	q := &Bounded[T]{capacity: capacity}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q
}

// Len returns the number of items currently buffered.
func (q *Bounded[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.len()
}

// Cap returns the current capacity bound.
func (q *Bounded[T]) Cap() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.capacity
}

// Empty reports whether the queue holds no items.
func (q *Bounded[T]) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.len() == 0
}

// SetCap replaces the capacity bound. A bound below 1 is clamped to 1.
//
// Lowering the bound below the current length never evicts: the excess
// drains as consumers remove items, and producers block (or TryPut fails)
// until the length falls below the new bound. Raising the bound wakes
// blocked producers so they re-evaluate against the new value.
func (q *Bounded[T]) SetCap(capacity int) {
	if capacity < 1 {
		capacity = 1
	}

	q.mu.Lock()
	raised := capacity > q.capacity
	q.capacity = capacity
	q.mu.Unlock()
	if raised {
		q.notFull.Broadcast()
	}
}

// Put adds an item, blocking while the queue is full. It returns once the
// item is stored. There is no error outcome: a queue that never drains
// blocks forever, so pair Put with PutContext or a counterpart consumer
// when liveness matters.
func (q *Bounded[T]) Put(item T) {
	q.mu.Lock()
	for q.buf.len() >= q.capacity {
		q.notFull.Wait()
	}
	q.insert(item)
}

// TryPut adds an item without blocking. It returns false, leaving the item
// with the caller, if the queue is full.
func (q *Bounded[T]) TryPut(item T) bool {
	q.mu.Lock()
	if q.buf.len() >= q.capacity {
		q.mu.Unlock()
		return false
	}
	q.insert(item)
	return true
}

// PutContext adds an item, blocking while the queue is full, until ctx is
// done. It returns ctx.Err() without storing the item if the wait is
// cancelled first.
func (q *Bounded[T]) PutContext(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stop := context.AfterFunc(ctx, func() { q.interrupt(q.notFull) })
	defer stop()

	q.mu.Lock()
	for q.buf.len() >= q.capacity {
		if err := ctx.Err(); err != nil {
			q.mu.Unlock()
			// Forward a potentially consumed wake to another producer.
			q.notFull.Signal()
			return err
		}
		q.notFull.Wait()
	}
	q.insert(item)
	return nil
}

// PutTimeout adds an item, blocking while the queue is full for at most d.
// It returns false, leaving the item with the caller, if the wait expires.
func (q *Bounded[T]) PutTimeout(item T, d time.Duration) bool {
	deadline := time.Now().Add(d)
	timer := time.AfterFunc(d, func() { q.interrupt(q.notFull) })
	defer timer.Stop()

	q.mu.Lock()
	for q.buf.len() >= q.capacity {
		if !time.Now().Before(deadline) {
			q.mu.Unlock()
			q.notFull.Signal()
			return false
		}
		q.notFull.Wait()
	}
	q.insert(item)
	return true
}

// Get removes and returns the oldest item, blocking while the queue is
// empty. As with Put, cancellation is the caller's concern: use GetContext
// when a producer may never show up.
func (q *Bounded[T]) Get() T {
	q.mu.Lock()
	for q.buf.len() == 0 {
		q.notEmpty.Wait()
	}
	return q.remove()
}

// TryGet removes and returns the oldest item without blocking.
// Returns (zero, false) if the queue is empty.
func (q *Bounded[T]) TryGet() (T, bool) {
	q.mu.Lock()
	if q.buf.len() == 0 {
		q.mu.Unlock()
		var zero T
		return zero, false
	}
	return q.remove(), true
}

// GetContext removes and returns the oldest item, blocking while the queue
// is empty, until ctx is done. It returns (zero, ctx.Err()) if the wait is
// cancelled first.
func (q *Bounded[T]) GetContext(ctx context.Context) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	stop := context.AfterFunc(ctx, func() { q.interrupt(q.notEmpty) })
	defer stop()

	q.mu.Lock()
	for q.buf.len() == 0 {
		if err := ctx.Err(); err != nil {
			q.mu.Unlock()
			// Forward a potentially consumed wake to another consumer.
			q.notEmpty.Signal()
			return zero, err
		}
		q.notEmpty.Wait()
	}
	return q.remove(), nil
}

// GetTimeout removes and returns the oldest item, blocking while the queue
// is empty for at most d. It returns (zero, false) if the wait expires.
func (q *Bounded[T]) GetTimeout(d time.Duration) (T, bool) {
	var zero T

	deadline := time.Now().Add(d)
	timer := time.AfterFunc(d, func() { q.interrupt(q.notEmpty) })
	defer timer.Stop()

	q.mu.Lock()
	for q.buf.len() == 0 {
		if !time.Now().Before(deadline) {
			q.mu.Unlock()
			q.notEmpty.Signal()
			return zero, false
		}
		q.notEmpty.Wait()
	}
	return q.remove(), true
}

// interrupt wakes every waiter on c so that timed and cancellable waits
// re-check their deadline. The empty critical section delays the broadcast
// until a goroutine caught between its predicate check and Wait has parked;
// without it the wake could be lost and the waiter would sleep past its
// deadline.
func (q *Bounded[T]) interrupt(c *sync.Cond) {
	q.mu.Lock()
	q.mu.Unlock()
	c.Broadcast()
}

// insert appends item and signals one consumer on the empty→non-empty edge.
// One signal is enough: every waiter re-checks its predicate after waking.
// Called with q.mu held; releases it. The signal is issued after unlocking
// so the woken goroutine does not immediately contend for the mutex.
func (q *Bounded[T]) insert(item T) {
	wasEmpty := q.buf.len() == 0
	q.buf.push(item)
	q.mu.Unlock()
	if wasEmpty {
		q.notEmpty.Signal()
	}
}

// remove pops the head and signals one producer whenever the post-removal
// length is below the bound. Signaling on every sub-capacity removal, not
// only on the full→not-full edge, keeps producers live when the bound was
// lowered under them while the queue held more than the new bound.
// Called with q.mu held; releases it.
func (q *Bounded[T]) remove() T {
	item := q.buf.pop()
	wake := q.buf.len() < q.capacity
	q.mu.Unlock()
	if wake {
		q.notFull.Signal()
	}
	return item
}
