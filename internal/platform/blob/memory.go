package blob

import (
	"context"
	"sync"
)

// Memory keeps blobs in process, contents are lost on exit
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-process store
func NewMemory() *Memory { return &Memory{data: map[string][]byte{}} }

// Driver names the backend
func (m *Memory) Driver() Driver { return DriverMemory }

// Get returns a copy of the stored bytes
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	if err := checkKey("blob.memory.get", key); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

// Put stores a copy of data
func (m *Memory) Put(_ context.Context, key string, data []byte) error {
	if err := checkKey("blob.memory.put", key); err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = append([]byte(nil), data...)
	m.mu.Unlock()
	return nil
}

// Delete drops key
func (m *Memory) Delete(_ context.Context, key string) error {
	if err := checkKey("blob.memory.delete", key); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// Ping always succeeds
func (m *Memory) Ping(context.Context) error { return nil }
