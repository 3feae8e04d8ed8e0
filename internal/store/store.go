// Package store holds the two key-value scopes the application persists
// through: a durable store that survives restarts and an in-memory store
// scoped to a browser session.
package store

import "sync"

// KV is a flat key-value store of opaque string blobs. Get reports absence
// with the second return value; Set and Remove may fail when the underlying
// medium refuses the write, and callers are expected to keep their in-memory
// state and surface the failure instead of crashing.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// MemKV is an in-memory KV, used for tests and as the building block of the
// session store.
type MemKV struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string]string)}
}

func (m *MemKV) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemKV) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
