package credentialstore

import (
	"context"
	"maps"
	"sync"
)

// KeyValueStorage is the platform-storage boundary: a durable string-keyed
// byte store. Implementations must return ErrKeyNotFound from Get for absent
// keys so callers can distinguish "no credential yet" from genuine I/O
// failure. Delete of an absent key is a no-op.
type KeyValueStorage interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// MemoryStorage implements KeyValueStorage with an in-process map. It backs
// tests and short-lived tooling; it does not survive process restarts.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func (m *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Snapshot returns a copy of all stored values, for inspection in tests.
func (m *MemoryStorage) Snapshot() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string][]byte, len(m.values))
	maps.Copy(out, m.values)
	return out
}
