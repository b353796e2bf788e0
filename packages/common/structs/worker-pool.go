package structs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

type Task interface {
	Process()
}

// Wraps function, so it can be used as a Task
type TaskFunc func()

func (f TaskFunc) Process() {
	f()
}

var (
	ErrPoolCanceled       = errors.New("worker pool is canceled")
	ErrPoolAlreadyStarted = errors.New("worker pool already started")
)

type WorkerPool struct {
	canceled atomic.Bool
	started  atomic.Bool
	queue    *SyncFifoQueue[Task]
	waiter   Waiter
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	done     chan struct{}
}

// Creates new worker pool with specified waiter and parent context.
func NewWorkerPool(ctx context.Context, waiter Waiter) *WorkerPool {
	ctx, cancel := context.WithCancel(ctx)

	return &WorkerPool{
		queue:  NewSyncFifoQueue[Task](),
		waiter: waiter,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Starts worker pool with specified amount of workers (at least 1 worker will be started).
// Blocks till the pool is canceled and all remaining tasks are processed.
func (wp *WorkerPool) Start(workers int) error {
	if wp.canceled.Load() {
		return ErrPoolCanceled
	}
	if !wp.started.CompareAndSwap(false, true) {
		return ErrPoolAlreadyStarted
	}

	workers = max(workers, 1)

	for range workers {
		wp.wg.Add(1)
		go wp.work()
	}

	wp.wg.Wait()

	close(wp.done)

	return nil
}

func (wp *WorkerPool) work() {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.ctx.Done():
			// Process all remain tasks before stopping.
			for {
				task, ok := wp.queue.Pop()
				if !ok {
					return
				}
				task.Process()
			}
		default:
			wp.processOne()
		}
	}
}

// Proccesses one task from worker pool queue.
// If there are no task, then it will wait till task appears (or pool is canceled) and return.
func (wp *WorkerPool) processOne() {
	task, ok := wp.queue.Pop()
	if !ok {
		wp.waiter.Wait(wp.ctx)
		return
	}

	task.Process()

	// other workers may sleep while there are still tasks in the queue
	if wp.queue.Size() != 0 {
		wp.waiter.Wake()
	}
}

// Cancels worker pool.
// Worker pool will finish all its tasks before stopping.
// If pool was started, then blocks till all workers are stopped,
// otherwise remaining tasks are processed in the caller's goroutine.
// Once canceled, worker pool can't be started again.
func (wp *WorkerPool) Cancel() error {
	if !wp.canceled.CompareAndSwap(false, true) {
		return errors.New("worker pool already canceled")
	}

	wp.cancel()

	if wp.started.Load() {
		<-wp.done
		return nil
	}

	for _, task := range wp.queue.Drain() {
		task.Process()
	}

	return nil
}

func (wp *WorkerPool) IsCanceled() bool {
	return wp.canceled.Load()
}

// Pushes a new task into a worker pool.
// Returns error on trying to push into a canceled worker pool
func (wp *WorkerPool) Push(t Task) error {
	if wp.canceled.Load() {
		return ErrPoolCanceled
	}

	wp.queue.Push(t)
	wp.waiter.Wake() // notify waiters that there are a new task in queue

	return nil
}

// Amount of tasks waiting for processing
func (wp *WorkerPool) Pending() int {
	return wp.queue.Size()
}
