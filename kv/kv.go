/*
Package kv defines the durable key-value storage port and an in-memory
implementation.

PURPOSE:
  The charge store's only persistence dependency is this two-method port.
  Keeping it this narrow means the core is testable against the in-memory
  fake and deployable against SQLite without either side knowing.

CONTRACT:
  Get(key) returns the stored string and whether the key exists.
  Set(key, value) overwrites best-effort durably. Both are synchronous.
  Durability is "survives process restarts of the same installation", not
  a transactional guarantee.

IMPLEMENTATIONS:
  - Memory (this file): map-backed, for tests and dev
  - kv/sqlite: durable single-table SQLite store
*/
package kv

import "sync"

// KV is the durable key-value storage port.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error
}

// =============================================================================
// MEMORY - Map-backed implementation (for testing/dev)
// =============================================================================

// Memory is an in-memory KV. The zero value is not usable; call NewMemory.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
