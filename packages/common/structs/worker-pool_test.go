package structs

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	t.Run("processes all pushed tasks", func(t *testing.T) {
		pool := NewWorkerPool(context.Background(), NewChanWaiter())

		go pool.Start(4)

		var processed atomic.Int64
		var wg sync.WaitGroup

		for range 100 {
			wg.Add(1)
			require.NoError(t, pool.Push(TaskFunc(func() {
				processed.Add(1)
				wg.Done()
			})))
		}

		wg.Wait()

		assert.Equal(t, int64(100), processed.Load())
		require.NoError(t, pool.Cancel())
	})

	t.Run("drains queue on cancel", func(t *testing.T) {
		pool := NewWorkerPool(context.Background(), NewChanWaiter())

		var processed atomic.Int64

		for range 10 {
			require.NoError(t, pool.Push(TaskFunc(func() {
				processed.Add(1)
			})))
		}

		done := make(chan error)
		go func() { done <- pool.Start(1) }()

		// give workers some time to start
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, pool.Cancel())
		require.NoError(t, <-done)

		assert.Equal(t, int64(10), processed.Load())
		assert.Equal(t, 0, pool.Pending())
	})

	t.Run("canceled pool rejects tasks", func(t *testing.T) {
		pool := NewWorkerPool(context.Background(), NewChanWaiter())

		require.NoError(t, pool.Cancel())

		assert.ErrorIs(t, pool.Push(TaskFunc(func() {})), ErrPoolCanceled)
		assert.ErrorIs(t, pool.Start(1), ErrPoolCanceled)
		assert.Error(t, pool.Cancel())
		assert.True(t, pool.IsCanceled())
	})
}
