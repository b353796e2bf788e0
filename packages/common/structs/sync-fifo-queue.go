package structs

import "sync"

// Concurrency-safe first-in-first-out queue
type SyncFifoQueue[T any] struct {
	mut   sync.Mutex
	elems []T
}

func NewSyncFifoQueue[T any]() *SyncFifoQueue[T] {
	return new(SyncFifoQueue[T])
}

// Appends v to the end of queue
func (q *SyncFifoQueue[T]) Push(v T) {
	q.mut.Lock()
	q.elems = append(q.elems, v)
	q.mut.Unlock()
}

// If queue isn't empty - deletes and returns first element of queue and true.
// If queue is empty - returns zero-value of T and false.
func (q *SyncFifoQueue[T]) Pop() (T, bool) {
	q.mut.Lock()
	defer q.mut.Unlock()

	var v T

	if len(q.elems) == 0 {
		return v, false
	}

	v = q.elems[0]
	// drop the reference, so popped element can be collected
	var zero T
	q.elems[0] = zero
	q.elems = q.elems[1:]

	return v, true
}

// Returns amount of elements in queue
func (q *SyncFifoQueue[T]) Size() int {
	q.mut.Lock()
	defer q.mut.Unlock()

	return len(q.elems)
}

// Removes all elements from the queue and returns them in FIFO order.
func (q *SyncFifoQueue[T]) Drain() []T {
	q.mut.Lock()
	defer q.mut.Unlock()

	drained := q.elems
	q.elems = nil

	return drained
}
