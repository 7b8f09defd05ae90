package mirror

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory is an in-process Mirror. It backs tests and serves as the fallback
// when Redis is unreachable at startup.
type Memory struct {
	mu     sync.RWMutex
	slices map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{slices: make(map[string][]byte)}
}

func (m *Memory) Load(ctx context.Context, slice string, dest any) bool {
	m.mu.RLock()
	raw, ok := m.slices[slice]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (m *Memory) Save(ctx context.Context, slice string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.slices[slice] = raw
	m.mu.Unlock()
	return nil
}

// SetRaw stores raw bytes for a slice without encoding. Tests use it to
// simulate corrupted persisted data.
func (m *Memory) SetRaw(slice string, raw []byte) {
	m.mu.Lock()
	m.slices[slice] = raw
	m.mu.Unlock()
}
