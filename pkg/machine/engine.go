package machine

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// Listener observes committed state changes. The return value reports whether
// the listener wants to keep receiving notifications; returning false prunes
// it without an explicit Unsubscribe.
type Listener func(state State) bool

type envelope struct {
	event          Event
	identityKey    string
	ignoreIdentity bool
}

// Engine is the single logical owner of the current state for each identity.
// Many goroutines may call Send concurrently; the engine serializes all
// resolver invocations and state commits onto one worker goroutine, so no two
// resolutions ever race. Actions dispatched from a resolution run concurrently
// with each other and with subsequent events, and communicate back only
// through emitted events that re-enter the same serialized queue.
type Engine struct {
	resolver Resolver
	store    StateStore
	env      Environment
	log      *slog.Logger

	mu     sync.Mutex
	queue  []envelope
	closed bool
	wake   chan struct{}

	lmu           sync.Mutex
	listeners     map[ListenerToken]Listener
	pendingCancel map[ListenerToken]struct{}

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures an engine during construction.
type Option func(*Engine)

// WithLogger sets the logger used for dropped action panics and commit
// failures. The engine is silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an engine and starts its worker goroutine. The resolver computes
// transitions, the store owns committed state, and env is handed verbatim to
// every dispatched action.
func New(resolver Resolver, store StateStore, env Environment, opts ...Option) (*Engine, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}
	if store == nil {
		return nil, ErrNilStore
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		resolver:      resolver,
		store:         store,
		env:           env,
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		wake:          make(chan struct{}, 1),
		listeners:     make(map[ListenerToken]Listener),
		pendingCancel: make(map[ListenerToken]struct{}),
		ctx:           ctx,
		cancel:        cancel,
		done:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(e)
	}

	go e.run()
	return e, nil
}

// MustNew creates an engine, panicking on invalid arguments. It follows the
// fail-fast construction pattern used across the toolkit.
func MustNew(resolver Resolver, store StateStore, env Environment, opts ...Option) *Engine {
	e, err := New(resolver, store, env, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Send enqueues an event addressed to the currently active identity. It never
// blocks the caller; events from the same caller are processed in send order.
// Sends after Close are dropped.
func (e *Engine) Send(event Event) {
	e.enqueue(envelope{event: event, ignoreIdentity: true})
}

// SendTo enqueues an event addressed to an explicit identity key. When
// ignoreIdentity is true the in-memory active state is used regardless of key;
// this is how configuration-time events are delivered before any identity
// exists.
func (e *Engine) SendTo(event Event, identityKey string, ignoreIdentity bool) {
	e.enqueue(envelope{event: event, identityKey: identityKey, ignoreIdentity: ignoreIdentity})
}

func (e *Engine) enqueue(env envelope) {
	if env.event == nil {
		return
	}
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.queue = append(e.queue, env)
	e.mu.Unlock()

	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// CurrentState returns a snapshot of the committed state for the identity key.
func (e *Engine) CurrentState(identityKey string) State {
	return e.store.Resolve(identityKey, false)
}

// ActiveState returns a snapshot of the committed state for the active identity.
func (e *Engine) ActiveState() State {
	return e.store.Resolve("", true)
}

// Subscribe registers a state-change listener under the given token. The
// listener is invoked once immediately with the current active state, then on
// every subsequent committed change until unsubscribed or until it returns
// false. onSubscribed, when non-nil, is called after registration completes.
func (e *Engine) Subscribe(token ListenerToken, listener Listener, onSubscribed func()) {
	if listener == nil {
		return
	}

	e.lmu.Lock()
	delete(e.pendingCancel, token)
	e.listeners[token] = listener
	e.lmu.Unlock()

	if onSubscribed != nil {
		onSubscribed()
	}

	if !listener(e.ActiveState()) {
		e.lmu.Lock()
		delete(e.listeners, token)
		e.lmu.Unlock()
	}
}

// Unsubscribe removes the listener registered under token. The cancellation is
// recorded immediately, so a notification cycle already in flight will not
// reach the token even though the actual removal happens on the worker.
func (e *Engine) Unsubscribe(token ListenerToken) {
	e.lmu.Lock()
	if _, ok := e.listeners[token]; ok {
		e.pendingCancel[token] = struct{}{}
	}
	e.lmu.Unlock()
}

// Close stops the worker goroutine and cancels the context handed to running
// actions. Events still queued are dropped; Send becomes a no-op.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()

	e.cancel()
	<-e.done
	return nil
}

func (e *Engine) run() {
	defer close(e.done)
	for {
		select {
		case <-e.ctx.Done():
			return
		case <-e.wake:
			e.drain()
		}
	}
}

func (e *Engine) drain() {
	for {
		e.mu.Lock()
		if len(e.queue) == 0 {
			e.mu.Unlock()
			return
		}
		env := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()

		e.process(env)
	}
}

// process runs one event to completion: resolve, commit, notify, then hand off
// actions. This is the serialization point for all state mutation.
func (e *Engine) process(env envelope) {
	current := e.store.Resolve(env.identityKey, env.ignoreIdentity)
	resolution := e.resolver.Resolve(current, env.event)

	next := resolution.NewState
	if next != nil && !StateEqual(next, current) {
		if err := e.store.Commit(env.identityKey, env.ignoreIdentity, next); err != nil {
			e.log.Error("state commit failed",
				slog.String("event", env.event.Name()),
				slog.String("state", next.Name()),
				slog.Any("error", err))
		} else {
			e.notify(next)
		}
	}

	for _, action := range resolution.Actions {
		if action == nil {
			continue
		}
		go e.execute(action)
	}
}

func (e *Engine) execute(action Action) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("action panicked",
				slog.String("action", action.ID()),
				slog.Any("panic", r))
		}
	}()
	action.Execute(e.ctx, e, e.env)
}

// notify delivers the committed state to every listener not pending
// cancellation, prunes listeners that decline further notifications, and then
// completes any pending cancellations recorded during the cycle.
func (e *Engine) notify(state State) {
	e.lmu.Lock()
	tokens := make([]ListenerToken, 0, len(e.listeners))
	for token := range e.listeners {
		tokens = append(tokens, token)
	}
	e.lmu.Unlock()

	for _, token := range tokens {
		e.lmu.Lock()
		listener, ok := e.listeners[token]
		if _, cancelled := e.pendingCancel[token]; cancelled {
			ok = false
		}
		e.lmu.Unlock()
		if !ok {
			continue
		}
		if !listener(state) {
			e.lmu.Lock()
			delete(e.listeners, token)
			e.lmu.Unlock()
		}
	}

	e.lmu.Lock()
	for token := range e.pendingCancel {
		delete(e.listeners, token)
		delete(e.pendingCancel, token)
	}
	e.lmu.Unlock()
}
