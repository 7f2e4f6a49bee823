package kv

import (
	"context"
	"sync"
)

// Memory is a process-local Store. FailReads and FailWrites make every Get
// or Set fail with that error.
type Memory struct {
	mu         sync.Mutex
	values     map[string]string
	FailReads  error
	FailWrites error
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return "", false, m.FailReads
	}
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Store.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.values[key] = value
	return nil
}

// Close implements Store.
func (m *Memory) Close() error {
	return nil
}
