package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store. It backs tests and deployments
// without Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	families map[string]map[string]memoryEntry
	ttl      time.Duration
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		families: make(map[string]map[string]memoryEntry),
		ttl:      ttl,
	}
}

func (s *MemoryStore) Get(_ context.Context, family, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.families[family][key]
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

func (s *MemoryStore) Set(_ context.Context, family, key string, value []byte) {
	entry := memoryEntry{value: value}
	if s.ttl > 0 {
		entry.expiresAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.families[family] == nil {
		s.families[family] = make(map[string]memoryEntry)
	}
	s.families[family][key] = entry
}

func (s *MemoryStore) Invalidate(_ context.Context, family string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.families, family)
}
