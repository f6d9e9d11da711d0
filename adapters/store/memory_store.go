package store

import (
	"context"
	"sync"

	"github.com/layer-3/questrun/core"
	"github.com/layer-3/questrun/ports"
)

// MemoryStore is an in-memory implementation of the CookieStore interface,
// used in tests and when persistence is disabled.
type MemoryStore struct {
	cookies []core.Cookie
	mu      sync.RWMutex
}

// NewMemoryStore creates a new in-memory cookie store
func NewMemoryStore() ports.CookieStore {
	return &MemoryStore{}
}

// Load returns the last saved cookie set.
func (s *MemoryStore) Load(ctx context.Context) ([]core.Cookie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Cookie, len(s.cookies))
	copy(out, s.cookies)
	return out, nil
}

// Save replaces the stored cookie set.
func (s *MemoryStore) Save(ctx context.Context, cookies []core.Cookie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cookies = make([]core.Cookie, len(cookies))
	copy(s.cookies, cookies)
	return nil
}
