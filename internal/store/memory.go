package store

import (
	"context"
	"sync"
)

// MemoryKV is an in-process KV used in tests and when running without
// Redis. Last writer wins, no expiry.
type MemoryKV struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{slots: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

func (m *MemoryKV) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}
