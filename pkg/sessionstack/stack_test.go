package sessionstack_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authstate/pkg/sessionstack"
)

func TestStack_PushEviction(t *testing.T) {
	t.Parallel()

	t.Run("evicts least recently pushed at capacity", func(t *testing.T) {
		t.Parallel()
		stack := sessionstack.New[string, int](2)

		stack.Push("alice", 1)
		stack.Push("bob", 2)
		stack.Push("carol", 3)

		_, ok := stack.Get("alice")
		assert.False(t, ok, "alice should have been evicted")

		v, ok := stack.Get("bob")
		require.True(t, ok)
		assert.Equal(t, 2, v)

		assert.Equal(t, 2, stack.Len())
	})

	t.Run("re-push moves key to most recent", func(t *testing.T) {
		t.Parallel()
		stack := sessionstack.New[string, string](2)

		stack.Push("alice", "s1")
		stack.Push("bob", "s2")
		stack.Push("alice", "s3")

		key, ok := stack.PeekKey()
		require.True(t, ok)
		assert.Equal(t, "alice", key)

		v, ok := stack.Get("alice")
		require.True(t, ok)
		assert.Equal(t, "s3", v)

		v, ok = stack.Get("bob")
		require.True(t, ok)
		assert.Equal(t, "s2", v)

		assert.Equal(t, 2, stack.Len())
	})

	t.Run("re-push protects key from eviction", func(t *testing.T) {
		t.Parallel()
		stack := sessionstack.New[string, int](2)

		stack.Push("alice", 1)
		stack.Push("bob", 2)
		stack.Push("alice", 3) // alice is now most recent
		stack.Push("carol", 4) // bob is the oldest, evicted

		_, ok := stack.Get("bob")
		assert.False(t, ok)
		_, ok = stack.Get("alice")
		assert.True(t, ok)
	})

	t.Run("eviction callback fires for capacity pressure", func(t *testing.T) {
		t.Parallel()
		stack := sessionstack.New[string, int](1)

		var evictedKey string
		stack.SetEvictCallback(func(key string, value int) {
			evictedKey = key
		})

		stack.Push("alice", 1)
		stack.Push("bob", 2)

		assert.Equal(t, "alice", evictedKey)
	})

	t.Run("panics on non-positive capacity", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			sessionstack.New[string, int](0)
		})
	})
}

func TestStack_PopPeek(t *testing.T) {
	t.Parallel()

	t.Run("pop returns most recent", func(t *testing.T) {
		t.Parallel()
		stack := sessionstack.New[string, int](3)
		stack.Push("alice", 1)
		stack.Push("bob", 2)

		key, value, ok := stack.Pop()
		require.True(t, ok)
		assert.Equal(t, "bob", key)
		assert.Equal(t, 2, value)

		key, ok = stack.PeekKey()
		require.True(t, ok)
		assert.Equal(t, "alice", key)
	})

	t.Run("pop by key", func(t *testing.T) {
		t.Parallel()
		stack := sessionstack.New[string, int](3)
		stack.Push("alice", 1)
		stack.Push("bob", 2)

		value, ok := stack.PopKey("alice")
		require.True(t, ok)
		assert.Equal(t, 1, value)

		_, ok = stack.Get("alice")
		assert.False(t, ok)
		assert.Equal(t, 1, stack.Len())
	})

	t.Run("peek does not remove", func(t *testing.T) {
		t.Parallel()
		stack := sessionstack.New[string, int](3)
		stack.Push("alice", 1)

		value, ok := stack.Peek()
		require.True(t, ok)
		assert.Equal(t, 1, value)
		assert.Equal(t, 1, stack.Len())
	})

	t.Run("empty stack", func(t *testing.T) {
		t.Parallel()
		stack := sessionstack.New[string, int](3)

		_, _, ok := stack.Pop()
		assert.False(t, ok)
		_, ok = stack.Peek()
		assert.False(t, ok)
		_, ok = stack.PeekKey()
		assert.False(t, ok)
		_, ok = stack.PopKey("missing")
		assert.False(t, ok)
	})
}

func TestStack_Clear(t *testing.T) {
	t.Parallel()

	stack := sessionstack.New[string, int](4)
	cleared := make(map[string]int)
	stack.SetEvictCallback(func(key string, value int) {
		cleared[key] = value
	})

	stack.Push("alice", 1)
	stack.Push("bob", 2)
	stack.Clear()

	assert.Equal(t, 0, stack.Len())
	assert.Equal(t, map[string]int{"alice": 1, "bob": 2}, cleared)
}

func TestStack_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	stack := sessionstack.New[string, int](8)
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("user-%d", n%4)
			stack.Push(key, n)
			stack.Get(key)
			stack.PeekKey()
			if n%5 == 0 {
				stack.PopKey(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, stack.Len(), 8)
}
