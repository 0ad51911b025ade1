// Package sessionstore provides session-scoped key/value persistence, the
// storefront's analog of browser session storage. Values survive a reload
// within a session but carry no expiry of their own.
package sessionstore

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Store persists JSON-serializable values under string keys.
type Store interface {
	// Save serializes value under key, replacing any previous value.
	Save(key string, value any) error

	// Load deserializes the value under key into dst.
	// Returns false when the key has no value.
	Load(key string, dst any) (bool, error)

	// Delete removes the value under key. Deleting a missing key is a no-op.
	Delete(key string) error
}

// MemoryStore is an in-memory Store. Values are kept in serialized form so a
// Load always round-trips through JSON, exactly like a persistent store would.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string][]byte{}}
}

// Save implements Store.
func (s *MemoryStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serialize %q: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = data
	return nil
}

// Load implements Store.
func (s *MemoryStore) Load(key string, dst any) (bool, error) {
	s.mu.RLock()
	data, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("deserialize %q: %w", key, err)
	}
	return true, nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

var _ Store = (*MemoryStore)(nil)
