package medium

import (
	"context"
	"sync"

	"github.com/nuesadev/scholarengine/internal/common"
)

// MemoryMedium is an in-process Medium for tests and ephemeral runs.
type MemoryMedium struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{data: make(map[string][]byte)}
}

func (m *MemoryMedium) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, false, common.ErrorMediumClosed
	}
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	// copy so callers cannot mutate the stored blob
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (m *MemoryMedium) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return common.ErrorMediumClosed
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *MemoryMedium) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return common.ErrorMediumClosed
	}
	delete(m.data, key)
	return nil
}

func (m *MemoryMedium) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
