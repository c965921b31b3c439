package machine

import "sync"

// MemoryStore is a StateStore holding a single current state, for machines
// that do not track per-identity state. Resolve ignores the identity key and
// Commit replaces the state unconditionally.
type MemoryStore struct {
	mu    sync.RWMutex
	state State
}

// NewMemoryStore creates a single-state store seeded with initial.
func NewMemoryStore(initial State) *MemoryStore {
	return &MemoryStore{state: initial}
}

func (s *MemoryStore) Resolve(identityKey string, ignoreIdentity bool) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *MemoryStore) Commit(identityKey string, ignoreIdentity bool, next State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = next
	return nil
}
