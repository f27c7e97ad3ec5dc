package session

import (
	"context"
	"sync"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

// MemoryStore keeps the identity in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	identity *domain.Identity
}

var _ ports.IdentityStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (*domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil, nil
	}
	id := *s.identity
	return &id, nil
}

func (s *MemoryStore) Save(_ context.Context, identity domain.Identity) error {
	s.mu.Lock()
	s.identity = &identity
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()
	return nil
}
