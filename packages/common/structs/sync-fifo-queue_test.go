package structs

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncFifoQueue(t *testing.T) {
	t.Run("pops in push order", func(t *testing.T) {
		q := NewSyncFifoQueue[int]()

		for i := range 3 {
			q.Push(i)
		}

		assert.Equal(t, 3, q.Size())

		for i := range 3 {
			v, ok := q.Pop()
			require.True(t, ok)
			assert.Equal(t, i, v)
		}

		_, ok := q.Pop()
		assert.False(t, ok)
		assert.Equal(t, 0, q.Size())
	})

	t.Run("drain empties the queue", func(t *testing.T) {
		q := NewSyncFifoQueue[string]()
		q.Push("a")
		q.Push("b")

		assert.Equal(t, []string{"a", "b"}, q.Drain())
		assert.Equal(t, 0, q.Size())
		assert.Empty(t, q.Drain())
	})

	t.Run("concurrent push", func(t *testing.T) {
		q := NewSyncFifoQueue[Task]()

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				q.Push(TaskFunc(func() {}))
			}()
		}
		wg.Wait()

		assert.Len(t, q.Drain(), 50)
	})
}
