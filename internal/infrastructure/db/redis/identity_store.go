package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

// IdentityStore persists one BFF session's identity.
// Key format: session:<sid>:user
type IdentityStore struct {
	client *redis.Client
	sid    string
	ttl    time.Duration
}

var _ ports.IdentityStore = (*IdentityStore)(nil)

// NewIdentityStore scopes a store to sid. A zero ttl keeps the key forever.
func NewIdentityStore(client *redis.Client, sid string, ttl time.Duration) *IdentityStore {
	return &IdentityStore{client: client, sid: sid, ttl: ttl}
}

func (s *IdentityStore) Load(ctx context.Context) (*domain.Identity, error) {
	b, err := s.client.Get(ctx, s.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("identity load: %w", err)
	}
	var id domain.Identity
	if err := json.Unmarshal(b, &id); err != nil {
		return nil, fmt.Errorf("identity load: %w", err)
	}
	return &id, nil
}

func (s *IdentityStore) Save(ctx context.Context, identity domain.Identity) error {
	b, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("identity save: %w", err)
	}
	if err := s.client.Set(ctx, s.key(), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("identity save: %w", err)
	}
	return nil
}

func (s *IdentityStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key()).Err(); err != nil {
		return fmt.Errorf("identity clear: %w", err)
	}
	return nil
}

func (s *IdentityStore) key() string {
	return fmt.Sprintf("session:%s:%s", s.sid, "user")
}
