package securestore

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and throwaway sessions.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.set = token, true
	return nil
}

func (m *MemoryStore) Load(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", nil
	}
	return m.token, nil
}

func (m *MemoryStore) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.set = "", false
	return nil
}
