package machine

import (
	"context"
	"reflect"
)

// State represents one variant of a closed, per-domain state set.
// State values are immutable: a transition always produces a new value.
type State interface {
	Name() string
}

// Event represents one variant of a closed, per-domain event set.
// Events are the only trigger for state transitions.
type Event interface {
	Name() string
}

// Resolution is the atomic outcome of resolving one (state, event) pair:
// the next state plus the ordered list of actions to dispatch.
type Resolution struct {
	NewState State
	Actions  []Action
}

// NewResolution creates a resolution transitioning to state with the given actions.
func NewResolution(state State, actions ...Action) Resolution {
	return Resolution{NewState: state, Actions: actions}
}

// Unchanged creates a no-op resolution keeping the current state with no actions.
// Resolvers return it for every (state, event) combination outside their
// transition table.
func Unchanged(current State) Resolution {
	return Resolution{NewState: current}
}

// Resolver computes the next state and actions for an event. Implementations
// must be total over the declared state/event space (unknown combinations
// return Unchanged), side-effect free, and deterministic: identical inputs
// always yield value-equal resolutions.
type Resolver interface {
	Resolve(current State, event Event) Resolution
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(current State, event Event) Resolution

func (f ResolverFunc) Resolve(current State, event Event) Resolution {
	return f(current, event)
}

// Environment carries the shared collaborators an action needs: configuration,
// identity-provider client, store handles. It is injected at engine
// construction and opaque to the engine itself.
type Environment any

// Dispatcher feeds events back into the engine's serialized queue. It is the
// only channel through which actions communicate with the state machine.
type Dispatcher interface {
	Send(event Event)
}

// Action is a deferred unit of side-effecting work produced by a resolution.
// Execute must not let failures escape: every failure path is converted into a
// dispatched event so the resolver can react. Events sent through the
// dispatcher are processed only after the Send call returns.
type Action interface {
	ID() string
	Execute(ctx context.Context, dispatcher Dispatcher, env Environment)
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc struct {
	Label string
	Fn    func(ctx context.Context, dispatcher Dispatcher, env Environment)
}

func (a ActionFunc) ID() string { return a.Label }

func (a ActionFunc) Execute(ctx context.Context, dispatcher Dispatcher, env Environment) {
	a.Fn(ctx, dispatcher, env)
}

// StateStore owns the committed state for each identity. The engine is its
// sole mutator; implementations decide where a committed state lives
// (in-memory stack, persisted credential store) and enforce their own
// promotion and eviction rules.
type StateStore interface {
	// Resolve returns the current state for the identity key, falling back to
	// a store-defined default when absent. When ignoreIdentity is true the
	// in-memory active state is used regardless of key.
	Resolve(identityKey string, ignoreIdentity bool) State

	// Commit durably records next as the current state for the identity key.
	Commit(identityKey string, ignoreIdentity bool, next State) error
}

// StateEqual reports whether two states are value-equal. The engine commits
// and notifies only when the resolved state differs from the prior one.
func StateEqual(a, b State) bool {
	return reflect.DeepEqual(a, b)
}
