package authsession

import (
	"context"
	"errors"

	"github.com/dmitrymomot/authstate/pkg/credentialstore"
	"github.com/dmitrymomot/authstate/pkg/machine"
	"github.com/dmitrymomot/authstate/pkg/sessionstack"
)

// DefaultStackCapacity bounds the number of in-flight identities kept in
// memory when no explicit capacity is configured.
const DefaultStackCapacity = 10

// SessionStore owns the committed state for every identity: an active-session
// stack for in-flight states and the persisted credential store for
// established sessions. It implements machine.StateStore; the engine is its
// sole mutator.
//
// Invariant: a persisted record and a stack entry for the same identity never
// coexist. Promotion clears the whole stack and writes exactly one record;
// a signed-out commit removes both.
type SessionStore struct {
	stack   *sessionstack.Stack[string, machine.State]
	creds   *credentialstore.Store
	initial machine.State
}

// SessionStoreOption configures a SessionStore during construction.
type SessionStoreOption func(*sessionStoreConfig)

type sessionStoreConfig struct {
	capacity int
	initial  machine.State
}

// WithStackCapacity bounds the active-session stack.
func WithStackCapacity(capacity int) SessionStoreOption {
	return func(c *sessionStoreConfig) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

// WithInitialState replaces the default Configured fallback state. Use it to
// start from NotConfigured when configuration is delivered at runtime rather
// than at construction.
func WithInitialState(state machine.State) SessionStoreOption {
	return func(c *sessionStoreConfig) {
		if state != nil {
			c.initial = state
		}
	}
}

// NewSessionStore creates a session store over the persisted credential store.
func NewSessionStore(creds *credentialstore.Store, opts ...SessionStoreOption) (*SessionStore, error) {
	if creds == nil {
		return nil, ErrNilCredentialStore
	}

	cfg := sessionStoreConfig{
		capacity: DefaultStackCapacity,
		initial:  Configured{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &SessionStore{
		stack:   sessionstack.New[string, machine.State](cfg.capacity),
		creds:   creds,
		initial: cfg.initial,
	}, nil
}

// Resolve returns the current state for the identity key: the stack entry if
// one exists, otherwise a session reconstructed from the persisted store,
// otherwise the fallback state. With ignoreIdentity the most recent stack
// entry is used regardless of key.
func (s *SessionStore) Resolve(identityKey string, ignoreIdentity bool) machine.State {
	if ignoreIdentity {
		if state, ok := s.stack.Peek(); ok {
			return state
		}
	} else if state, ok := s.stack.Get(identityKey); ok {
		return state
	}

	// The promoted session lives under the device-level primary key; a keyed
	// lookup must match the record's own identity to count.
	var record PersistedCredential
	err := s.creds.RetrieveCredential(context.Background(), "", &record)
	if err == nil && (ignoreIdentity || record.SignedInData.UserID == identityKey) {
		return SignedIn{Data: record.SignedInData}
	}
	// Not-found means no session yet; a genuine storage failure also degrades
	// to the fallback state and surfaces on the next commit.

	return s.initial
}

// Commit records next as the current state for the identity. The state's
// shape decides where it lives:
//
//   - an established SignedIn state is promoted: the whole stack is cleared
//     (establishing a session is a fresh device-level login context, other
//     in-flight identity attempts are discarded) and exactly one record is
//     persisted;
//   - a SignedOut state removes the stack entry and the persisted record;
//   - every other state is pushed onto the active-session stack.
func (s *SessionStore) Commit(identityKey string, ignoreIdentity bool, next machine.State) error {
	key := s.effectiveKey(identityKey, ignoreIdentity, next)

	switch state := next.(type) {
	case SignedIn:
		if state.IsEstablished() {
			return s.promote(state)
		}
		s.stack.Push(key, next)
		return nil
	case SignedOut:
		s.stack.PopKey(key)
		if err := s.creds.DeleteCredential(context.Background(), ""); err != nil {
			return errors.Join(ErrPersistFailed, err)
		}
		return nil
	default:
		s.stack.Push(key, next)
		return nil
	}
}

// promote writes the established session to the device-level primary record
// and discards all in-memory state. Any other in-flight identity attempt is
// dropped rather than silently resumed later.
func (s *SessionStore) promote(state SignedIn) error {
	s.stack.Clear()
	record := PersistedCredential{SignedInData: state.Data}
	if err := s.creds.SaveCredential(context.Background(), "", record); err != nil {
		return errors.Join(ErrPersistFailed, err)
	}
	return nil
}

// effectiveKey picks the stack key a commit applies to: the explicit identity
// key when given, otherwise the active entry's key, otherwise the identity
// carried by the state itself.
func (s *SessionStore) effectiveKey(identityKey string, ignoreIdentity bool, next machine.State) string {
	if !ignoreIdentity && identityKey != "" {
		return identityKey
	}
	if key, ok := s.stack.PeekKey(); ok {
		return key
	}
	switch state := next.(type) {
	case SignedIn:
		return state.Data.UserID
	case RefreshingSession:
		return state.Data.UserID
	case SigningOut:
		return state.Data.UserID
	default:
		return identityKey
	}
}

// ActiveIdentity returns the identity key of the most recent stack entry.
func (s *SessionStore) ActiveIdentity() (string, bool) {
	return s.stack.PeekKey()
}

// StackLen reports how many identities currently hold in-memory state.
func (s *SessionStore) StackLen() int {
	return s.stack.Len()
}
