package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemTracker(t *testing.T) {
	t.Run("one running instance per item", func(t *testing.T) {
		tracker := newItemTracker()

		assert.True(t, tracker.tryAcquire("item-1", "entry-a"))
		assert.False(t, tracker.tryAcquire("item-1", "entry-b"))

		// A different item is unaffected.
		assert.True(t, tracker.tryAcquire("item-2", "entry-c"))
		assert.Equal(t, 2, tracker.activeCount())
	})

	t.Run("reacquire by the holder is idempotent", func(t *testing.T) {
		tracker := newItemTracker()

		assert.True(t, tracker.tryAcquire("item-1", "entry-a"))
		assert.True(t, tracker.tryAcquire("item-1", "entry-a"))

		holder, ok := tracker.holder("item-1")
		assert.True(t, ok)
		assert.Equal(t, "entry-a", holder)
	})

	t.Run("release frees the slot", func(t *testing.T) {
		tracker := newItemTracker()

		assert.True(t, tracker.tryAcquire("item-1", "entry-a"))
		tracker.release("item-1")

		_, ok := tracker.holder("item-1")
		assert.False(t, ok)
		assert.True(t, tracker.tryAcquire("item-1", "entry-b"))
	})

	t.Run("concurrent acquisition admits exactly one entry", func(t *testing.T) {
		tracker := newItemTracker()

		var wg sync.WaitGroup
		var mu sync.Mutex
		winners := 0
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				if tracker.tryAcquire("item-1", string(rune('a'+n))) {
					mu.Lock()
					winners++
					mu.Unlock()
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, winners)
		assert.Equal(t, 1, tracker.activeCount())
	})
}
