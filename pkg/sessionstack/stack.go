package sessionstack

import (
	"container/list"
	"sync"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Stack is a thread-safe, bounded, keyed LIFO store. The most recently pushed
// key is the "active" entry; when the stack is at capacity, pushing a new key
// evicts the least recently pushed one. Recency is defined purely by push
// order: Get never touches an entry, while re-pushing an existing key moves it
// to the front.
type Stack[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List // front = most recently pushed
	mu       sync.Mutex
	onEvict  func(key K, value V)
}

// New creates a stack with the given capacity.
// The capacity must be positive, otherwise it panics.
func New[K comparable, V any](capacity int) *Stack[K, V] {
	if capacity <= 0 {
		panic("sessionstack: capacity must be positive")
	}
	return &Stack[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

// SetEvictCallback sets a callback invoked for entries removed by capacity
// pressure or Clear. Pop and PopKey do not trigger it.
func (s *Stack[K, V]) SetEvictCallback(fn func(key K, value V)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = fn
}

// Push inserts or overwrites the value under key, making it the most recent
// entry. If the key is new and the stack is at capacity, the least recently
// pushed entry is evicted first.
func (s *Stack[K, V]) Push(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[key]; ok {
		s.order.MoveToFront(elem)
		elem.Value.(*entry[K, V]).value = value
		return
	}

	if s.order.Len() >= s.capacity {
		s.evictOldest()
	}

	s.items[key] = s.order.PushFront(&entry[K, V]{key: key, value: value})
}

// Pop removes and returns the most recent entry.
func (s *Stack[K, V]) Pop() (K, V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem := s.order.Front()
	if elem == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	e := elem.Value.(*entry[K, V])
	s.order.Remove(elem)
	delete(s.items, e.key)
	return e.key, e.value, true
}

// PopKey removes and returns the entry stored under key.
func (s *Stack[K, V]) PopKey(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[key]
	if !ok {
		var zero V
		return zero, false
	}

	e := elem.Value.(*entry[K, V])
	s.order.Remove(elem)
	delete(s.items, key)
	return e.value, true
}

// Peek returns the most recent entry's value without removing it.
func (s *Stack[K, V]) Peek() (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem := s.order.Front()
	if elem == nil {
		var zero V
		return zero, false
	}
	return elem.Value.(*entry[K, V]).value, true
}

// PeekKey returns the most recent entry's key without removing it.
func (s *Stack[K, V]) PeekKey() (K, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem := s.order.Front()
	if elem == nil {
		var zero K
		return zero, false
	}
	return elem.Value.(*entry[K, V]).key, true
}

// Get returns the value stored under key without affecting recency.
func (s *Stack[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[key]; ok {
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Len returns the number of entries.
func (s *Stack[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// Clear removes all entries. If an evict callback is set, it's called for
// each entry.
func (s *Stack[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.onEvict != nil {
		for _, elem := range s.items {
			e := elem.Value.(*entry[K, V])
			s.onEvict(e.key, e.value)
		}
	}

	s.items = make(map[K]*list.Element)
	s.order.Init()
}

// Must be called with lock held.
func (s *Stack[K, V]) evictOldest() {
	elem := s.order.Back()
	if elem == nil {
		return
	}
	e := elem.Value.(*entry[K, V])
	s.order.Remove(elem)
	delete(s.items, e.key)

	if s.onEvict != nil {
		s.onEvict(e.key, e.value)
	}
}
