package cache

import (
	"context"
	"sync"
)

// MemoryCache is the single-process fallback used in development and tests.
type MemoryCache struct {
	mu       sync.RWMutex
	profiles map[uint]Profile
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{profiles: make(map[uint]Profile)}
}

func (m *MemoryCache) Get(_ context.Context, userID uint) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *MemoryCache) Set(_ context.Context, userID uint, p *Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[userID] = *p
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.profiles, userID)
	return nil
}
