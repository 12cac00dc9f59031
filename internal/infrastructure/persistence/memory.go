package persistence

import (
	"context"
	"fmt"
	"sync"

	"voyagebj-service/internal/domain/repository"
)

// MemoryMedium is an in-process key-value medium bounded by a total byte quota,
// the way a browser bounds localStorage. A quota of zero disables the bound.
type MemoryMedium struct {
	mu    sync.RWMutex
	data  map[string]string
	used  int64
	quota int64
}

// NewMemoryMedium creates an empty in-memory medium
func NewMemoryMedium(quota int64) *MemoryMedium {
	return &MemoryMedium{
		data:  make(map[string]string),
		quota: quota,
	}
}

// Get returns the value stored under key
func (m *MemoryMedium) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	return value, ok, nil
}

// Set stores value under key unless the quota would be exceeded
func (m *MemoryMedium) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	used := m.used + entrySize(key, value)
	if old, ok := m.data[key]; ok {
		used -= entrySize(key, old)
	}
	if m.quota > 0 && used > m.quota {
		return fmt.Errorf("setting %q needs %d of %d bytes: %w", key, used, m.quota, repository.ErrQuotaExceeded)
	}

	m.data[key] = value
	m.used = used
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (m *MemoryMedium) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.data[key]; ok {
		m.used -= entrySize(key, old)
		delete(m.data, key)
	}
	return nil
}

// Used returns the number of bytes currently stored
func (m *MemoryMedium) Used() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.used
}

func entrySize(key, value string) int64 {
	return int64(len(key) + len(value))
}
