// Package sessionstack provides a bounded, order-sensitive, keyed LIFO store
// for per-identity state.
//
// The stack maps a stable identity key to its current value. The most recently
// pushed key is the active entry; pushing beyond capacity evicts exactly the
// least recently pushed key. Recency is defined by push order alone: reads do
// not refresh an entry, re-pushing an existing key does.
//
// All operations are atomic with respect to each other: the structure is a
// map plus an intrusive ordering list behind a single mutex, and internal
// iteration is never exposed to callers.
//
//	stack := sessionstack.New[string, int](2)
//	stack.Push("alice", 1)
//	stack.Push("bob", 2)
//	stack.Push("alice", 3) // re-push, alice becomes most recent
//	key, _ := stack.PeekKey() // "alice"
package sessionstack
