package queue

// Queue is a generic interface for FIFO queues.
// It covers the non-blocking surface shared by all implementations;
// blocking hand-off is specific to Bounded.
type Queue[T any] interface {
	// TryPut adds an item to the queue without blocking.
	// Returns true if successful, false if the queue is full.
	// On failure the caller keeps ownership of the item.
	TryPut(item T) bool

	// TryGet removes and returns an item from the queue without blocking.
	// Returns (item, true) if successful, (zero, false) if the queue is empty.
	TryGet() (T, bool)

	// Len returns the number of items currently in the queue.
	Len() int

	// Cap returns the current capacity of the queue.
	Cap() int
}
