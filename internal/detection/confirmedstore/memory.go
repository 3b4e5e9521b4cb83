package confirmedstore

import (
	"context"
	"sync"
)

// Memory keeps the set in process memory. It intentionally favors clarity
// over performance and is the default when Redis is not configured.
type Memory struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{ids: make(map[string]struct{})}
}

func (m *Memory) Load(_ context.Context) (map[string]struct{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]struct{}, len(m.ids))
	for id := range m.ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (m *Memory) Save(_ context.Context, ids map[string]struct{}) error {
	snapshot := make(map[string]struct{}, len(ids))
	for id := range ids {
		snapshot[id] = struct{}{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids = snapshot
	return nil
}
