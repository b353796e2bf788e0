package structs

import (
	"context"
	Error "hobbes/packages/common/errors"
	"time"
)

// Runs 'req' and waits for it's result at most 'timeout'.
// Returns Error.StatusTimeout on timeout and ctx.Err() if ctx was canceled.
// If timeout is zero or negative, waits till 'req' is done.
//
// 'req' receives context that is done on timeout, but it's up to 'req'
// to respect it: on timeout 'req' keeps running in background and it's result is dropped.
func WithTimeout[T any](ctx context.Context, timeout time.Duration, req func(ctx context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		return req(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		value T
		err   error
	}

	// buffered, so goroutine won't leak if nobody will receive
	done := make(chan result, 1)

	go func() {
		v, err := req(ctx)
		done <- result{v, err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		if ctx.Err() == context.DeadlineExceeded {
			return zero, Error.StatusTimeout
		}
		return zero, ctx.Err()
	}
}
