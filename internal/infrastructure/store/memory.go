// internal/infrastructure/store/memory.go
package store

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Store used in tests and when the service runs
// with STORE_DRIVER=memory. Expirations are honored lazily on read.
type Memory struct {
	mu      sync.RWMutex
	values  map[string]string
	expires map[string]time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		values:  make(map[string]string),
		expires: make(map[string]time.Time),
	}
}

// Get retrieves a value by key.
func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if deadline, ok := m.expires[key]; ok && time.Now().After(deadline) {
		return "", ErrNotFound
	}

	val, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

// Set stores a key-value pair with expiration.
func (m *Memory) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	if expiration > 0 {
		m.expires[key] = time.Now().Add(expiration)
	} else {
		delete(m.expires, key)
	}
	return nil
}

// Del deletes one or more keys.
func (m *Memory) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.values, key)
		delete(m.expires, key)
	}
	return nil
}

// Exists checks if key exists.
func (m *Memory) Exists(ctx context.Context, key string) (bool, error) {
	_, err := m.Get(ctx, key)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}
