// Package machine provides a deterministic, event-driven state machine engine
// built around a pure resolver and deferred side-effecting actions.
//
// The package revolves around two minimal interfaces, State and Event, that
// model closed, per-domain variant sets, while the library handles:
//  1. Serialized event processing (one resolve→commit→notify cycle at a time)
//  2. Concurrent action execution with event feedback into the same queue
//  3. Tokenized listener subscription with race-free cancellation
//  4. Pluggable state ownership through the StateStore interface
//
// # Architecture
//
// A Resolver is a total, pure function from (current state, event) to a
// Resolution: the next state plus an ordered list of actions. Combinations
// outside a resolver's transition table resolve to Unchanged: an event not
// applicable to the current state is ignored, never an error.
//
// The Engine drains an unbounded internal queue on a single worker goroutine,
// so no two resolutions or commits ever race. Actions run concurrently once
// dispatched and communicate back exclusively by sending follow-up events
// through the Dispatcher; an action's events are processed only after its
// Send call returns.
//
// Committed state lives in a StateStore. The bundled MemoryStore holds a
// single state; richer implementations may key state by identity and decide
// between in-memory and persisted storage on commit.
//
// # Usage
//
//	resolver := machine.ResolverFunc(func(current machine.State, event machine.Event) machine.Resolution {
//	    // ... return machine.NewResolution(next, actions...) or machine.Unchanged(current)
//	})
//
//	engine := machine.MustNew(resolver, machine.NewMemoryStore(initial), env)
//	defer engine.Close()
//
//	token := machine.NewListenerToken()
//	engine.Subscribe(token, func(s machine.State) bool {
//	    // observe committed states; return false to stop
//	    return true
//	}, nil)
//
//	engine.Send(someEvent)
//
// # Concurrency
//
// Send never blocks the caller. Events from one caller are processed in send
// order; events emitted by concurrently running actions have no ordering
// guarantee relative to each other. Unsubscribe records a pending cancellation
// immediately, so a notification cycle in flight never reaches the token even
// when the unsubscribe and the event were issued concurrently.
package machine
