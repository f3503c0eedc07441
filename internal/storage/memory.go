// ABOUTME: In-memory Store implementation for tests.
// ABOUTME: Same JSON round-trip semantics as the durable backends.
package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps serialized values in a map. It exists for tests; data
// does not survive the process.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

// Put stores value under key as JSON.
func (s *MemoryStore) Put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = data
	return nil
}

// Get loads the value stored under key into out.
func (s *MemoryStore) Get(key string, out any) (bool, error) {
	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, &DecodeError{Key: key, Err: err}
	}
	return true, nil
}

// Remove deletes key.
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Keys returns every stored key.
func (s *MemoryStore) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys, nil
}

// Clear removes every key.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = map[string][]byte{}
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

// PutRaw stores pre-serialized bytes under key, bypassing JSON marshaling.
// Tests use it to plant corrupt values.
func (s *MemoryStore) PutRaw(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
}
