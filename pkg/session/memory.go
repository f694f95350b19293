package session

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	session *Session
}

// NewMemoryStore returns a Store that lives for the duration of the process.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (m *memoryStore) Get(_ context.Context) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return Session{}, ErrNotFound
	}
	return *m.session, nil
}

func (m *memoryStore) Put(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &s
	return nil
}

func (m *memoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}
