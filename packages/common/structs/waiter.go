package structs

import "context"

// Wait strategy.
type Waiter interface {
	// Blocks till either Wake() is called, either ctx is done.
	Wait(ctx context.Context)
	Wake()
}

// Channel based waiter.
// Wake() which happened while nobody was waiting isn't lost:
// the next Wait() call will return immediately.
type ChanWaiter struct {
	signal chan struct{}
}

func NewChanWaiter() *ChanWaiter {
	return &ChanWaiter{
		signal: make(chan struct{}, 1),
	}
}

func (w *ChanWaiter) Wait(ctx context.Context) {
	select {
	case <-w.signal:
	case <-ctx.Done():
	}
}

func (w *ChanWaiter) Wake() {
	select {
	case w.signal <- struct{}{}:
	default:
	}
}
